package nodes

// InNode represents an IN or NOT IN set predicate. An empty value list
// renders a constant predicate, since "IN ()" is not valid SQL.
type InNode struct {
	Combinable
	Expr   Node
	Vals   []Node
	Negate bool
}

func (n *InNode) Serialize(s *Serializer) {
	if len(n.Vals) == 0 {
		// x IN () is false for every row; x NOT IN () is true.
		if n.Negate {
			s.WriteSQL("1 = 1")
		} else {
			s.WriteSQL("1 = 0")
		}
		return
	}
	keyword := "IN"
	if n.Negate {
		keyword = "NOT IN"
	}
	s.Statement().Operand(n.Expr).Raw(keyword).Expr(parenList(n.Vals)).Finish()
}

// BetweenNode represents a BETWEEN or NOT BETWEEN range predicate.
type BetweenNode struct {
	Combinable
	Expr   Node
	Low    Node
	High   Node
	Negate bool
}

func (n *BetweenNode) Serialize(s *Serializer) {
	keyword := "BETWEEN"
	if n.Negate {
		keyword = "NOT BETWEEN"
	}
	s.Statement().Operand(n.Expr).Raw(keyword).Infix(n.Low, "AND", n.High).Finish()
}
