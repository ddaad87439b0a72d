package manifest

import (
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// Sentinel errors for manifest operations.
var (
	// ErrExists indicates init was asked to create a manifest that is already present.
	ErrExists = errors.New("pyproject already exists")
	// ErrPackageNotFound indicates no dependency specifier matched a removal target.
	ErrPackageNotFound = errors.New("package not found")
	// ErrNoProject indicates the document has no [project] table.
	ErrNoProject = errors.New("missing [project] table")
)

// ParseError reports a manifest that is missing or malformed.
type ParseError struct {
	Path string
	Err  error
}

// Error includes the line and column when the underlying decoder reports one.
func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "manifest"
	}
	var de *toml.DecodeError
	if errors.As(e.Err, &de) {
		row, col := de.Position()
		return fmt.Sprintf("parsing %s:%d:%d: %v", path, row, col, de)
	}
	return fmt.Sprintf("parsing %s: %v", path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
