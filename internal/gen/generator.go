package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seqbuf-generator/internal/manifest"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package. When empty the
	// manifest's package is used.
	PackageName string
	// OutputDir is where the unformatted sidecar goes if formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// RuntimeImport overrides the manifest's runtime import path.
	RuntimeImport string
	// PackagePath is the import path of the output package. Element types
	// imported from it are emitted unqualified.
	PackagePath string
	// Parallelism bounds concurrent rendering. Zero means GOMAXPROCS.
	Parallelism int
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		OutputDir:        "./generated",
		GenerateComments: true,
		RuntimeImport:    manifest.DefaultRuntime,
	}
}

// ErrNoPackageName is returned when neither the config nor the manifest name
// the output package.
var ErrNoPackageName = errors.New("output package name is not set")

// Generator renders one Go source file per manifest instance.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "int_array.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders every instance of mf. Files come back in manifest order
// regardless of how rendering was scheduled.
func (g *Generator) Generate(ctx context.Context, mf *manifest.File) ([]GeneratedFile, error) {
	if mf == nil {
		return nil, errors.New("manifest is nil")
	}

	pkgName := g.config.PackageName
	if pkgName == "" {
		pkgName = mf.Package
	}

	if pkgName == "" {
		return nil, ErrNoPackageName
	}

	runtimeImport := g.config.RuntimeImport
	if runtimeImport == "" {
		runtimeImport = mf.Runtime
	}

	if runtimeImport == "" {
		runtimeImport = manifest.DefaultRuntime
	}

	limit := g.config.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	files := make([]GeneratedFile, len(mf.Instances))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, inst := range mf.Instances {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := g.buildTemplateData(pkgName, runtimeImport, inst)
			if err != nil {
				return fmt.Errorf("instance %s: %w", inst.Name, err)
			}

			file, err := g.render(data)
			if err != nil {
				return fmt.Errorf("instance %s: %w", inst.Name, err)
			}

			files[i] = *file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// render executes the array template and formats the result.
func (g *Generator) render(data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := arrayTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}
