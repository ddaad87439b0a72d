package arch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxLinesPerFile = 400

// TestFileLineCount verifies that no .go file in internal packages, tests
// included, exceeds maxLinesPerFile lines.
func TestFileLineCount(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		for _, path := range goFilesIn(t, filepath.Join(dir, pkg), true) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}
			if n := strings.Count(string(data), "\n"); n > maxLinesPerFile {
				t.Errorf("%s/%s has %d lines (limit: %d); consider decomposing",
					pkg, filepath.Base(path), n, maxLinesPerFile)
			}
		}
	}
}
