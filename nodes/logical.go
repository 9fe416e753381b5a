package nodes

// AndNode represents a logical AND between two expressions. A side that
// renders nothing is dropped and the other side stands alone.
type AndNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *AndNode) Serialize(s *Serializer) {
	(&joinedNode{items: []Node{n.Left, n.Right}, sep: " AND "}).Serialize(s)
}

// OrNode represents a logical OR between two expressions.
type OrNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *OrNode) Serialize(s *Serializer) {
	(&joinedNode{items: []Node{n.Left, n.Right}, sep: " OR "}).Serialize(s)
}

// NotNode represents a logical NOT of an expression.
type NotNode struct {
	Combinable
	Expr Node
}

func (n *NotNode) Serialize(s *Serializer) {
	s.Statement().Raw("NOT").Operand(funcNode(func(s *Serializer) { parenIfAny(s, n.Expr) })).Finish()
}

// And combines conditions with AND. It returns nil for no conditions.
func And(conds ...Node) Node {
	return chainAnd(conds)
}

// Or combines conditions with OR inside parentheses. It returns nil for no
// conditions.
func Or(conds ...Node) Node {
	if g := groupOr(conds); g != nil {
		return g
	}
	return nil
}
