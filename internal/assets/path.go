// Package assets locates bundled files both when running from a source
// checkout and from a packaged binary.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolver searches a fixed list of directories for asset files.
type Resolver struct {
	dirs []string
}

// NewResolver returns a resolver that searches dirs in order.
func NewResolver(dirs ...string) *Resolver {
	return &Resolver{dirs: dirs}
}

// Default searches next to the executable first, then the working
// directory, each with and without the sub directory.
func Default(sub string) *Resolver {
	var bases []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		bases = append(bases, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		bases = append(bases, wd)
	}

	dirs := make([]string, 0, 2*len(bases))
	for _, b := range bases {
		dirs = append(dirs, filepath.Join(b, sub), b)
	}
	return NewResolver(dirs...)
}

// Dirs returns the search order.
func (r *Resolver) Dirs() []string {
	return append([]string(nil), r.dirs...)
}

// Path returns the first existing regular file called name.
func (r *Resolver) Path(name string) (string, error) {
	for _, dir := range r.dirs {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err == nil && info.Mode().IsRegular() {
			return p, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("asset %q not found in %s: %w", name, strings.Join(r.dirs, ", "), fs.ErrNotExist)
}
