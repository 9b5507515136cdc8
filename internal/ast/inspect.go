package ast

// Inspect traverses the tree rooted at node in depth-first, source order.
// It calls f(node) first; if f returns false the children are skipped.
// Variable levels are not visited: they are part of the Variable leaf.
func Inspect(node Expression, f func(Expression) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *Grouping:
		Inspect(n.Inner, f)
	case *Unary:
		Inspect(n.Operand, f)
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Call:
		Inspect(n.Callee, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *ResolvedCall:
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *Literal, *Variable, *QuotedName:
	}
}
