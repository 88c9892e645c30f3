// Package modinfo locates the Go module enclosing a directory and derives
// import paths for directories inside it.
package modinfo

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod exists above a directory.
var ErrNoModule = errors.New("no go.mod found")

// Module describes a Go module on disk.
type Module struct {
	// Path is the module path declared in go.mod.
	Path string
	// Dir is the absolute directory containing go.mod.
	Dir string
	// GoVersion is the go directive, if any.
	GoVersion string
}

// Find walks up from dir until it finds a go.mod. dir does not have to exist
// yet; missing trailing directories are skipped.
func Find(dir string) (*Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	for cur := abs; ; {
		gomod := filepath.Join(cur, "go.mod")

		data, err := os.ReadFile(gomod)
		if err == nil {
			return parse(gomod, cur, data)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", gomod, err)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("%s: %w", abs, ErrNoModule)
		}

		cur = parent
	}
}

func parse(gomod, dir string, data []byte) (*Module, error) {
	f, err := modfile.ParseLax(gomod, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", gomod, err)
	}

	if f.Module == nil || f.Module.Mod.Path == "" {
		return nil, fmt.Errorf("%s: missing module directive", gomod)
	}

	m := &Module{
		Path: f.Module.Mod.Path,
		Dir:  dir,
	}

	if f.Go != nil {
		m.GoVersion = f.Go.Version
	}

	return m, nil
}

// ImportPath returns the import path of dir, which must be inside the module.
func (m *Module) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	rel, err := filepath.Rel(m.Dir, abs)
	if err != nil {
		return "", fmt.Errorf("%s is not inside module %s: %w", dir, m.Path, err)
	}

	if rel == "." {
		return m.Path, nil
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside module %s", dir, m.Path)
	}

	return path.Join(m.Path, filepath.ToSlash(rel)), nil
}
