// Package resolve holds the small rewrites that sit between parsing and the
// term builder: callee resolution and data-name collection.
package resolve

import "formulae/internal/ast"

// Calls returns a copy of expr in which every call whose callee is a plain
// variable (no level) becomes an ast.ResolvedCall. Other callees, such as
// the inner call of f(x)(y), stay unresolved; their own parts are still
// resolved. expr itself is left untouched and unchanged leaves are shared.
func Calls(expr ast.Expression) ast.Expression {
	switch n := expr.(type) {
	case *ast.Grouping:
		return &ast.Grouping{Token: n.Token, Inner: Calls(n.Inner)}
	case *ast.Unary:
		return &ast.Unary{Operator: n.Operator, Operand: Calls(n.Operand)}
	case *ast.Binary:
		return &ast.Binary{Left: Calls(n.Left), Operator: n.Operator, Right: Calls(n.Right)}
	case *ast.Call:
		args := resolveArgs(n.Args)
		if v, ok := n.Callee.(*ast.Variable); ok && v.Level == nil {
			return &ast.ResolvedCall{Token: n.Token, Name: v.Name.Lexeme, Args: args}
		}
		return &ast.Call{Token: n.Token, Callee: Calls(n.Callee), Args: args}
	case *ast.ResolvedCall:
		return &ast.ResolvedCall{Token: n.Token, Name: n.Name, Args: resolveArgs(n.Args)}
	default:
		// Literal, Variable and QuotedName are immutable leaves.
		return expr
	}
}

func resolveArgs(args []ast.Expression) []ast.Expression {
	out := make([]ast.Expression, len(args))
	for i, a := range args {
		out[i] = Calls(a)
	}
	return out
}

// Names lists the data names expr refers to, in first-seen order and
// without duplicates. Quoted names are listed without backquotes. Function
// names and level selectors are not data names.
func Names(expr ast.Expression) []string {
	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	var visit func(ast.Expression)
	visit = func(e ast.Expression) {
		ast.Inspect(e, func(n ast.Expression) bool {
			switch n := n.(type) {
			case *ast.Variable:
				add(n.Name.Lexeme)
			case *ast.QuotedName:
				add(n.Name())
			case *ast.Call:
				if _, ok := n.Callee.(*ast.Variable); !ok {
					visit(n.Callee)
				}
				for _, a := range n.Args {
					visit(a)
				}
				return false
			}
			return true
		})
	}
	visit(expr)
	return names
}
