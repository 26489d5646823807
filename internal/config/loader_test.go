package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a scratch directory so a stray ./t2048.yaml cannot interfere.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := DefaultConfig()
	if cfg.Board.Size != want.Board.Size {
		t.Errorf("Board.Size = %d, want %d", cfg.Board.Size, want.Board.Size)
	}
	if cfg.Board.Spawn4 != want.Board.Spawn4 {
		t.Errorf("Board.Spawn4 = %g, want %g", cfg.Board.Spawn4, want.Board.Spawn4)
	}
	if cfg.Search.Depth != want.Search.Depth {
		t.Errorf("Search.Depth = %d, want %d", cfg.Search.Depth, want.Search.Depth)
	}
	if cfg.Search.Threads != want.Search.Threads {
		t.Errorf("Search.Threads = %d, want %d", cfg.Search.Threads, want.Search.Threads)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
board:
  size: 6
  spawn4: 0.25
search:
  depth: 400
  threads: 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, want 6", cfg.Board.Size)
	}
	if cfg.Board.Spawn4 != 0.25 {
		t.Errorf("Board.Spawn4 = %g, want 0.25", cfg.Board.Spawn4)
	}
	if cfg.Search.Depth != 400 {
		t.Errorf("Search.Depth = %d, want 400", cfg.Search.Depth)
	}
	if cfg.Search.Threads != 2 {
		t.Errorf("Search.Threads = %d, want 2", cfg.Search.Threads)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing explicit config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not a map]"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	data := `
board:
  size: 3
search:
  depth: 100
`
	if err := os.WriteFile(invalid, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "board.size") {
		t.Errorf("Load error = %v, want a board.size validation error", err)
	}
}

func TestLoadWorkingDirectoryFile(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	data := `
board:
  size: 5
  spawn4: 0.1
search:
  depth: 200
  threads: 1
`
	if err := os.WriteFile("t2048.yaml", []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5 from ./t2048.yaml", cfg.Board.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "size too small",
			mutate:  func(c *Config) { c.Board.Size = 3 },
			wantErr: "board.size",
		},
		{
			name:    "spawn4 above one",
			mutate:  func(c *Config) { c.Board.Spawn4 = 1.5 },
			wantErr: "board.spawn4",
		},
		{
			name:    "spawn4 negative",
			mutate:  func(c *Config) { c.Board.Spawn4 = -0.1 },
			wantErr: "board.spawn4",
		},
		{
			name:    "zero depth",
			mutate:  func(c *Config) { c.Search.Depth = 0 },
			wantErr: "search.depth",
		},
		{
			name:    "negative threads",
			mutate:  func(c *Config) { c.Search.Threads = -1 },
			wantErr: "search.threads",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
