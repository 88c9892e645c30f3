package manifest

import (
	"fmt"
	"go/ast"
	"go/parser"
	"sort"
)

// ParseTypeExpr parses an element type expression.
func ParseTypeExpr(typ string) (ast.Expr, error) {
	expr, err := parser.ParseExpr(typ)
	if err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", typ, err)
	}

	if !isTypeExpr(expr) {
		return nil, fmt.Errorf("%q is not a type expression", typ)
	}

	return expr, nil
}

// Qualifiers returns the sorted, distinct package qualifiers referenced by
// expr ("geom" for "map[string]*geom.Point").
func Qualifiers(expr ast.Expr) []string {
	seen := map[string]struct{}{}

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok {
			seen[id.Name] = struct{}{}
		}

		return false
	})

	res := make([]string, 0, len(seen))
	for q := range seen {
		res = append(res, q)
	}

	sort.Strings(res)

	return res
}

// isTypeExpr rejects expressions that can never denote a type, like
// literals, calls or binary operations.
func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.ArrayType:
		return isTypeExpr(e.Elt)
	case *ast.MapType:
		return isTypeExpr(e.Key) && isTypeExpr(e.Value)
	case *ast.ChanType:
		return isTypeExpr(e.Value)
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(e.X) {
			return false
		}

		for _, idx := range e.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}

		return true
	case *ast.StructType, *ast.InterfaceType, *ast.FuncType:
		return true
	default:
		return false
	}
}
