// Package crawler scans directories for source files and streams their
// contents. It owns the ignore-list semantics; what happens to a file's
// bytes is the caller's business.
package crawler

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are skipped wholesale during traversal.
var DefaultIgnoreDirs = []string{".git", "venv", ".venv", "__pycache__", "node_modules", "test", "tests"}

// Options configures a crawler.
type Options struct {
	// IgnoreDirs are directory names skipped entirely. Defaults to
	// DefaultIgnoreDirs when empty.
	IgnoreDirs []string
	// IgnoreFiles are file base names to skip.
	IgnoreFiles []string
	// Extensions are matched without the leading dot. Defaults to "py".
	Extensions []string
}

// Crawler scans a directory tree for matching source files.
type Crawler struct {
	ignoreDirs  []string
	ignoreFiles map[string]bool
	extensions  []string
}

// New creates a crawler. Zero-value options get the Python defaults.
func New(opts Options) *Crawler {
	if len(opts.IgnoreDirs) == 0 {
		opts.IgnoreDirs = DefaultIgnoreDirs
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{"py"}
	}
	ignoreFiles := make(map[string]bool, len(opts.IgnoreFiles))
	for _, f := range opts.IgnoreFiles {
		ignoreFiles[f] = true
	}
	return &Crawler{
		ignoreDirs:  opts.IgnoreDirs,
		ignoreFiles: ignoreFiles,
		extensions:  opts.Extensions,
	}
}

// ScanTree walks root and streams every matching file's contents through
// onFile. Unreadable entries go to onError and the walk continues; a single
// bad file never aborts the scan.
func (c *Crawler) ScanTree(root string, onFile func(path string, src []byte), onError func(path string, err error)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if onError != nil {
				onError(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			for _, ign := range c.ignoreDirs {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !c.Matches(d.Name()) || c.ignoreFiles[d.Name()] {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			if onError != nil {
				onError(path, err)
			}
			return nil
		}
		onFile(path, src)
		return nil
	})
}

// Matches reports whether a file name carries one of the crawler's
// extensions.
func (c *Crawler) Matches(name string) bool {
	for _, ext := range c.extensions {
		if strings.HasSuffix(name, "."+ext) {
			return true
		}
	}
	return false
}
