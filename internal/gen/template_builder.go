package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"seqbuf-generator/internal/common"
	"seqbuf-generator/internal/manifest"
)

// runtimeName is the package name generated code uses for the runtime.
const runtimeName = "seqbuf"

// templateData holds all data needed for the array template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []importSpec
	TypeName         string
	Constructor      string
	Elem             string
	GenerateComments bool
}

// importSpec is a single import line.
type importSpec struct {
	Alias string
	Path  string
}

// buildTemplateData constructs the template data for one instance.
func (g *Generator) buildTemplateData(pkgName, runtimeImport string, inst manifest.Instance) (*templateData, error) {
	filename := inst.File
	if filename == "" {
		filename = inst.DefaultFile()
	}

	data := &templateData{
		PackageName:      pkgName,
		Filename:         filename,
		TypeName:         inst.TypeName(),
		Constructor:      inst.Constructor(),
		Elem:             inst.Type,
		GenerateComments: g.config.GenerateComments,
		Imports:          []importSpec{newImport(runtimeName, runtimeImport)},
	}

	if inst.Import == "" {
		return data, nil
	}

	expr, err := manifest.ParseTypeExpr(inst.Type)
	if err != nil {
		return nil, err
	}

	quals := manifest.Qualifiers(expr)

	switch {
	case len(quals) == 0:
		// Nothing references the import; emitting it would not compile.
		return data, nil
	case len(quals) > 1:
		return nil, fmt.Errorf("type %q references more than one package", inst.Type)
	}

	qual := quals[0]

	if inst.Import == g.config.PackagePath && g.config.PackagePath != "" {
		elem, err := unqualify(expr, qual)
		if err != nil {
			return nil, err
		}

		data.Elem = elem

		return data, nil
	}

	if qual == runtimeName && inst.Import != runtimeImport {
		return nil, fmt.Errorf("qualifier %q of type %q collides with the runtime import", qual, inst.Type)
	}

	if inst.Import != runtimeImport {
		data.Imports = append(data.Imports, newImport(qual, inst.Import))
	}

	return data, nil
}

// newImport only spells out the alias when it differs from the path's last
// element.
func newImport(name, path string) importSpec {
	spec := importSpec{Path: path}
	if common.PkgAlias(path) != name {
		spec.Alias = name
	}

	return spec
}

// unqualify drops qual from every selector in expr and prints the result.
func unqualify(expr ast.Expr, qual string) (string, error) {
	res := astutil.Apply(expr, nil, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok && id.Name == qual {
			c.Replace(ast.NewIdent(sel.Sel.Name))
		}

		return true
	})

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), res); err != nil {
		return "", fmt.Errorf("printing type expression: %w", err)
	}

	return buf.String(), nil
}
