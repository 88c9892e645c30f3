package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"

	"seqbuf-generator/internal/manifest"
	"seqbuf-generator/internal/match"
)

// hint returns a " (did you mean X?)" suffix for the first unknown type name
// in inst.Type, or "" when there is nothing close enough to suggest.
func (a *Analyzer) hint(inst manifest.Instance, self *PackageInfo) string {
	expr, err := manifest.ParseTypeExpr(inst.Type)
	if err != nil {
		return ""
	}

	var suggestion string

	ast.Inspect(expr, func(n ast.Node) bool {
		if suggestion != "" {
			return false
		}

		switch n := n.(type) {
		case *ast.StructType, *ast.InterfaceType, *ast.FuncType:
			// Field and method names are not type names.
			return false
		case *ast.SelectorExpr:
			suggestion = a.hintQualified(n, inst.Import)
			return false
		case *ast.Ident:
			suggestion = hintLocal(n.Name, self)
			return false
		}

		return true
	})

	if suggestion == "" {
		return ""
	}

	return fmt.Sprintf(" (did you mean %s?)", suggestion)
}

func (a *Analyzer) hintQualified(sel *ast.SelectorExpr, importPath string) string {
	qual, ok := sel.X.(*ast.Ident)
	if !ok || importPath == "" {
		return ""
	}

	imp, err := a.LoadPackage(importPath)
	if err != nil || imp.types == nil {
		return ""
	}

	scope := imp.types.Scope()
	if obj := scope.Lookup(sel.Sel.Name); obj != nil && obj.Exported() {
		return ""
	}

	best, ok := match.Closest(sel.Sel.Name, typeNames(scope, true), match.DefaultBudget(len(sel.Sel.Name)))
	if !ok {
		return ""
	}

	return qual.Name + "." + best
}

func hintLocal(name string, self *PackageInfo) string {
	if types.Universe.Lookup(name) != nil {
		return ""
	}

	candidates := typeNames(types.Universe, false)

	if self != nil && self.types != nil {
		if self.types.Scope().Lookup(name) != nil {
			return ""
		}

		candidates = append(candidates, typeNames(self.types.Scope(), false)...)
	}

	best, ok := match.Closest(name, candidates, match.DefaultBudget(len(name)))
	if !ok {
		return ""
	}

	return best
}

// typeNames lists the type names declared in scope, sorted.
func typeNames(scope *types.Scope, exportedOnly bool) []string {
	var names []string

	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || (exportedOnly && !obj.Exported()) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
