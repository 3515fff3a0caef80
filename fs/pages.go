// Package fs provides file-based access to downloaded pages and CSV output.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemeta"
)

// Ensure PageDir implements pagemeta.PageSource at compile time.
var _ pagemeta.PageSource = (*PageDir)(nil)

// PageDir implements pagemeta.PageSource over a directory of downloaded pages.
type PageDir struct {
	dir string
}

// NewPageDir creates a new PageDir reading from dir.
// The directory is not checked until ListPages is called.
func NewPageDir(dir string) *PageDir {
	return &PageDir{dir: dir}
}

// ListPages returns the regular files directly under the directory, sorted
// by name. Symlinks are followed. Hidden files and subdirectories are skipped.
func (p *PageDir) ListPages(ctx context.Context) ([]string, error) {
	info, err := os.Stat(p.dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, pagemeta.Errorf(pagemeta.EINPUTMISSING, "path to downloaded pages %q does not exist", p.dir)
	} else if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(p.dir, e.Name())
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		} else if !e.Type().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// OpenPage opens the page at path.
func (p *PageDir) OpenPage(ctx context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}
