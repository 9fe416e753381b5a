package nodes

// CastedNode represents a bound value that knows its SQL type. It renders
// CAST(? AS type), or a bare placeholder when TypeName is empty.
type CastedNode struct {
	Predications
	Arithmetics
	Combinable
	Value    any
	TypeName string
}

// NewCasted creates a CastedNode with properly initialised embedded structs.
func NewCasted(value any, typeName string) *CastedNode {
	n := &CastedNode{Value: value, TypeName: typeName}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

func (n *CastedNode) Serialize(s *Serializer) {
	if n.TypeName == "" {
		NewBindParam(n.Value).Serialize(s)
		return
	}
	Cast(NewBindParam(n.Value), n.TypeName).Serialize(s)
}

// CastNode represents CAST(expr AS type).
type CastNode struct {
	Predications
	Arithmetics
	Combinable
	Expr     Node
	TypeName string
}

// Cast creates a CAST(expr AS typeName) expression. The type name is
// validated when rendered.
func Cast(expr Node, typeName string) *CastNode {
	n := &CastNode{Expr: expr, TypeName: typeName}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

func (n *CastNode) Serialize(s *Serializer) {
	validateSQLTypeName(n.TypeName)
	s.WriteSQL("CAST(")
	n.Expr.Serialize(s)
	s.WriteSQL(" AS " + n.TypeName + ")")
}
