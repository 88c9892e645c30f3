package main

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"seqbuf-generator/internal/analyze"
	"seqbuf-generator/internal/diagnostic"
	"seqbuf-generator/internal/manifest"
	"seqbuf-generator/internal/modinfo"
)

// project is a loaded manifest together with what is known about the
// directory it generates into.
type project struct {
	manifest *manifest.File
	outDir   string
	// module is nil when outDir is outside any Go module.
	module *modinfo.Module
	// pkgPath is the import path of outDir, empty without a module.
	pkgPath string
	diags   *diagnostic.Diagnostics
}

// loadOptions select how much checking load does.
type loadOptions struct {
	manifestPath string
	outDir       string
	pkgName      string
	resolve      bool
}

// load reads and validates the manifest, settles the output package name
// and, if requested, resolves element types. Diagnostics are returned in
// the project; only I/O and parse failures are errors.
func (c *cli) load(opts loadOptions) (*project, error) {
	mf, err := manifest.LoadFile(opts.manifestPath)
	if err != nil {
		return nil, err
	}

	if opts.pkgName != "" {
		mf.Package = opts.pkgName
	}

	p := &project{
		manifest: mf,
		outDir:   opts.outDir,
		diags:    manifest.Validate(mf),
	}

	if p.diags.HasErrors() {
		return p, nil
	}

	mod, err := modinfo.Find(opts.outDir)
	switch {
	case errors.Is(err, modinfo.ErrNoModule):
		c.logger.Warn("output directory is not inside a Go module, element types will not be resolved",
			zap.String("dir", opts.outDir))
	case err != nil:
		return nil, err
	default:
		p.module = mod

		p.pkgPath, err = mod.ImportPath(opts.outDir)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("found module",
			zap.String("module", mod.Path),
			zap.String("package", p.pkgPath))
	}

	if opts.resolve && p.module != nil {
		a := analyze.NewAnalyzer(p.module.Dir)

		if mf.Package == "" {
			if self, err := a.OutputPackage(opts.outDir); err == nil && self != nil {
				mf.Package = self.Name
			}
		}

		p.diags.Merge(*a.Check(mf, opts.outDir))
	}

	if mf.Package == "" {
		name, err := dirPackageName(opts.outDir)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("package name derived from directory", zap.String("package", name))
		mf.Package = name
	}

	return p, nil
}

// report logs every diagnostic at a level matching its severity.
func (c *cli) report(d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		fields := []zap.Field{zap.String("code", diag.Code)}
		if diag.Instance != "" {
			fields = append(fields, zap.String("instance", diag.Instance))
		}

		if diag.Field != "" {
			fields = append(fields, zap.String("field", diag.Field))
		}

		switch diag.Severity {
		case diagnostic.DiagnosticError:
			c.logger.Error(diag.Message, fields...)
		case diagnostic.DiagnosticWarning:
			c.logger.Warn(diag.Message, fields...)
		default:
			c.logger.Debug(diag.Message, fields...)
		}
	}
}

// dirPackageName turns the output directory's base name into a package
// name: lower case, separators replaced by underscores.
func dirPackageName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '.' || r == ' ':
			return '_'
		default:
			return unicode.ToLower(r)
		}
	}, filepath.Base(abs))

	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("cannot derive a package name from %s, set --pkg or package in the manifest", dir)
	}

	return name, nil
}
