package nodes

// OrderDirection represents ASC or DESC ordering.
type OrderDirection int

const (
	Asc OrderDirection = iota
	Desc
)

// NullsDirection controls NULLS FIRST/LAST positioning.
type NullsDirection int

const (
	NullsDefault NullsDirection = iota
	NullsFirst
	NullsLast
)

// OrderingNode represents an ORDER BY expression with a direction.
type OrderingNode struct {
	Expr      Node
	Direction OrderDirection
	Nulls     NullsDirection
}

// NewOrdering creates an OrderingNode.
func NewOrdering(expr Node, dir OrderDirection) *OrderingNode {
	return &OrderingNode{Expr: expr, Direction: dir}
}

// NullsFirst returns a copy ordered with NULLS FIRST.
func (n *OrderingNode) NullsFirst() *OrderingNode {
	c := *n
	c.Nulls = NullsFirst
	return &c
}

// NullsLast returns a copy ordered with NULLS LAST.
func (n *OrderingNode) NullsLast() *OrderingNode {
	c := *n
	c.Nulls = NullsLast
	return &c
}

func (n *OrderingNode) Serialize(s *Serializer) {
	st := s.Statement().Operand(n.Expr)
	if n.Direction == Desc {
		st.Raw("DESC")
	} else {
		st.Raw("ASC")
	}
	switch n.Nulls {
	case NullsFirst:
		st.Raw("NULLS FIRST")
	case NullsLast:
		st.Raw("NULLS LAST")
	}
	st.Finish()
}
