package cmd

import (
	"testing"

	"github.com/chrisdana/peg-game-solver/internal/config"
)

func TestParseRows(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		settings *config.Settings
		want     int
		wantErr  bool
	}{
		{"argument", []string{"5"}, nil, 5, false},
		{"argument wins over config", []string{"4"}, &config.Settings{Rows: 6}, 4, false},
		{"config fallback", nil, &config.Settings{Rows: 6}, 6, false},
		{"non-numeric", []string{"five"}, nil, 0, true},
		{"absent", nil, nil, 0, true},
		{"config without rows", nil, &config.Settings{}, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseRows(c.args, c.settings)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("rows = %d, want %d", got, c.want)
			}
		})
	}
}
