package manifest

import (
	"errors"
	"fmt"
	"os"
)

// Load reads and parses the manifest at path. A missing or malformed file
// is reported as a *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// Save truncates path and writes the document to it.
func Save(path string, doc *Document) error {
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a manifest is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Init renders a new manifest and writes it to path. It returns ErrExists
// without touching the file when one is already there.
func Init(path string, p Params) (*Document, error) {
	if Exists(path) {
		return nil, ErrExists
	}
	text, err := Render(p)
	if err != nil {
		return nil, err
	}
	doc, err := Parse([]byte(text))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrExists
		}
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(doc.Bytes()); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", path, err)
	}
	return doc, nil
}
