package solver

import "time"

// Options configures solver behavior.
type Options struct {
	// TryAllHoles searches from every starting hole instead of only the
	// symmetry-distinct representatives.
	TryAllHoles bool

	// Memo records board states whose subtree has been fully explored
	// without a solution, and skips them when reached again. It never
	// changes which solution is found first, only how fast exhaustion
	// is proven.
	Memo bool

	// Timeout limits total search time. Zero means no deadline.
	Timeout time.Duration
}

// DefaultOptions returns standard solver options: representative starting
// holes only, no memoization, no deadline.
func DefaultOptions() *Options {
	return &Options{
		TryAllHoles: false,
		Memo:        false,
		Timeout:     0,
	}
}
