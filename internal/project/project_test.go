package project

import (
	"path/filepath"
	"testing"
)

func TestNew_AbsoluteRoot(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	p, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Manifest", p.Manifest(), filepath.Join(dir, "pyproject.toml")},
		{"Lock", p.Lock(), filepath.Join(dir, "requirements.txt")},
		{"Env", p.Env(), filepath.Join(dir, "venv")},
		{"EnvPip", p.EnvPip(), filepath.Join(dir, "venv", "bin", "pip")},
		{"EnvPython", p.EnvPython(), filepath.Join(dir, "venv", "bin", "python")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNew_RelativeRoot(t *testing.T) {
	t.Parallel()
	p, err := New(".")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !filepath.IsAbs(p.Root) {
		t.Errorf("Root = %q, want absolute path", p.Root)
	}
}
