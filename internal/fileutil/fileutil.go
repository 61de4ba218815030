package fileutil

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Finder selects the files a run processes.
type Finder struct {
	Extensions []string
	// Exclude holds doublestar patterns matched against slash separated
	// paths relative to the walked root, and against base names.
	Exclude   []string
	Recursive bool
}

// Validate rejects malformed exclude patterns.
func (f Finder) Validate() error {
	for _, pattern := range f.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// HasValidExtension checks if a file has one of the valid extensions
func HasValidExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Excluded reports whether rel, a path relative to the walked root, matches
// one of the exclude patterns.
func (f Finder) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := rel[strings.LastIndexByte(rel, '/')+1:]
	for _, pattern := range f.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// FindFiles finds all files under root with a valid extension. Hidden
// directories and node_modules are skipped.
func (f Finder) FindFiles(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || name == "node_modules" {
				return filepath.SkipDir
			}
			// Skip subdirectories if not recursive
			if !f.Recursive || f.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if HasValidExtension(path, f.Extensions) && !f.Excluded(rel) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
