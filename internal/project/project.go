// Package project resolves the fixed file layout of a managed project root.
package project

import (
	"fmt"
	"path/filepath"
)

// Well-known names, relative to the project root.
const (
	ManifestName = "pyproject.toml"
	LockName     = "requirements.txt"
	EnvName      = "venv"
)

// Paths locates the manifest, lock file and isolated environment of one
// project. It is a value object; every component receives it at construction.
type Paths struct {
	Root string
}

// New returns the Paths rooted at dir, made absolute.
func New(dir string) (Paths, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Paths{}, fmt.Errorf("resolving project root %s: %w", dir, err)
	}
	return Paths{Root: abs}, nil
}

// Manifest is the absolute path of pyproject.toml.
func (p Paths) Manifest() string { return filepath.Join(p.Root, ManifestName) }

// Lock is the absolute path of requirements.txt.
func (p Paths) Lock() string { return filepath.Join(p.Root, LockName) }

// Env is the absolute path of the isolated environment root.
func (p Paths) Env() string { return filepath.Join(p.Root, EnvName) }

// EnvPip is the installer inside the isolated environment.
func (p Paths) EnvPip() string { return filepath.Join(p.Env(), "bin", "pip") }

// EnvPython is the interpreter inside the isolated environment.
func (p Paths) EnvPython() string { return filepath.Join(p.Env(), "bin", "python") }
