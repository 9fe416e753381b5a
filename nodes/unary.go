package nodes

// UnaryOp represents a unary postfix operator.
type UnaryOp int

const (
	OpIsNull UnaryOp = iota
	OpIsNotNull
)

// UnaryNode represents a unary predicate: Expr IS NULL / IS NOT NULL.
type UnaryNode struct {
	Combinable
	Expr Node
	Op   UnaryOp
}

// NewUnaryNode creates a UnaryNode with properly initialised embedded structs.
func NewUnaryNode(expr Node, op UnaryOp) *UnaryNode {
	n := &UnaryNode{Expr: expr, Op: op}
	n.self = n
	return n
}

func (n *UnaryNode) Serialize(s *Serializer) {
	st := s.Statement().Operand(n.Expr)
	if n.Op == OpIsNotNull {
		st.Raw("IS NOT NULL")
	} else {
		st.Raw("IS NULL")
	}
	st.Finish()
}
