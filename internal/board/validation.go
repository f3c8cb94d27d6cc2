package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRowCount = errors.New("row count must be between 4 and 6")
)

// ValidateRows checks that a requested board size is supported.
// The topology builder and solver assume this has been called; they do not
// re-validate.
func ValidateRows(rows int) error {
	if rows < MinRows || rows > MaxRows {
		return fmt.Errorf("%w: got %d", ErrInvalidRowCount, rows)
	}
	return nil
}
