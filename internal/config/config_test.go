package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solve.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
rows: 6
all_holes: true
memo: true
timeout: 30s
board: true
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if s.Rows != 6 || !s.AllHoles || !s.Memo || !s.Board || s.Quiet {
		t.Errorf("unexpected settings: %+v", s)
	}

	d, err := s.ParseTimeout()
	if err != nil {
		t.Fatalf("ParseTimeout error: %v", err)
	}
	if d != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", d)
	}
}

func TestLoadEmptyTimeout(t *testing.T) {
	s, err := Load(writeFile(t, "rows: 5\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d, err := s.ParseTimeout(); err != nil || d != 0 {
		t.Errorf("ParseTimeout = (%v, %v), want (0, nil)", d, err)
	}
}

func TestLoadBadTimeout(t *testing.T) {
	if _, err := Load(writeFile(t, "timeout: soon\n")); err == nil {
		t.Error("Load accepted an unparseable timeout")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
