package nodes

// GroupingNode wraps an expression in parentheses for precedence control.
type GroupingNode struct {
	Combinable
	Expr Node
}

// NewGrouping creates a GroupingNode with properly initialised embedded structs.
func NewGrouping(expr Node) *GroupingNode {
	g := &GroupingNode{Expr: expr}
	g.self = g
	return g
}

func (n *GroupingNode) Serialize(s *Serializer) {
	parenIfAny(s, n.Expr)
}
