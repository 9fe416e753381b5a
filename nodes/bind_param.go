package nodes

// BindParamNode represents a value sent out-of-band. It renders as the
// dialect's placeholder for its position. A nil Value is bound like any
// other value.
type BindParamNode struct {
	Predications
	Combinable
	Value any
}

func (n *BindParamNode) Serialize(s *Serializer) {
	s.WriteBind(n.Value)
}

// NewBindParam creates a BindParamNode.
func NewBindParam(value any) *BindParamNode {
	n := &BindParamNode{Value: value}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}
