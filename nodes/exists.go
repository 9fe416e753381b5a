package nodes

// ExistsNode represents an EXISTS or NOT EXISTS subquery expression.
type ExistsNode struct {
	Subquery Node
	Negated  bool
	Combinable
}

func (n *ExistsNode) Serialize(s *Serializer) {
	if n.Negated {
		s.WriteSQL("NOT ")
	}
	s.WriteSQL("EXISTS ")
	parenNode{inner: n.Subquery}.Serialize(s)
}

// Exists creates an EXISTS(subquery) node.
func Exists(subquery Node) *ExistsNode {
	n := &ExistsNode{Subquery: subquery}
	n.self = n
	return n
}

// NotExists creates a NOT EXISTS(subquery) node.
func NotExists(subquery Node) *ExistsNode {
	n := &ExistsNode{Subquery: subquery, Negated: true}
	n.self = n
	return n
}
