package nodes

import (
	"log/slog"

	"github.com/bawdo/sqlcraft/dialect"
)

// SetOpType represents the type of set operation.
type SetOpType int

const (
	Union SetOpType = iota
	UnionAll
	Intersect
	IntersectAll
	Except
	ExceptAll
)

// String returns the SQL keyword for this set operation type.
func (t SetOpType) String() string {
	switch t {
	case UnionAll:
		return "UNION ALL"
	case Intersect:
		return "INTERSECT"
	case IntersectAll:
		return "INTERSECT ALL"
	case Except:
		return "EXCEPT"
	case ExceptAll:
		return "EXCEPT ALL"
	default:
		return "UNION"
	}
}

// feature maps the operation to the dialect capability it needs.
func (t SetOpType) feature() dialect.UnionFeatures {
	switch t {
	case UnionAll:
		return dialect.UnionAll
	case Intersect:
		return dialect.Intersect
	case IntersectAll:
		return dialect.IntersectAll
	case Except:
		return dialect.Except
	case ExceptAll:
		return dialect.ExceptAll
	default:
		return dialect.Union
	}
}

// distinctable reports whether the operation accepts an explicit DISTINCT.
func (t SetOpType) distinctable() bool {
	return t == Union || t == Intersect || t == Except
}

// UnionPart is one joiner plus the select it introduces.
type UnionPart struct {
	Op       SetOpType
	Select   Node
	Distinct bool // spell out DISTINCT where the dialect allows it
}

// UnionNode combines an initial select with an ordered list of further
// selects. With no parts it renders exactly as the initial select.
//
// A joiner the dialect does not support is logged and its keyword left
// out; the database then rejects the statement.
type UnionNode struct {
	Initial Node
	Parts   []UnionPart
	Orders  []Node
	Limit   Node
	Offset  Node
}

// NewUnion starts a UnionNode from its initial select.
func NewUnion(initial Node) *UnionNode {
	return &UnionNode{Initial: initial}
}

// Add appends op followed by sel and returns n for chaining.
func (n *UnionNode) Add(op SetOpType, sel Node) *UnionNode {
	n.Parts = append(n.Parts, UnionPart{Op: op, Select: sel})
	return n
}

func (n *UnionNode) Serialize(s *Serializer) {
	if len(n.Parts) == 0 && len(n.Orders) == 0 && n.Limit == nil && n.Offset == nil {
		n.Initial.Serialize(s)
		return
	}
	features := s.Dialect().Union()
	operand := func(sel Node) Node {
		if features.Has(dialect.UnionParenthesized) {
			return parenNode{inner: sel}
		}
		return sel
	}

	st := s.Statement().Expr(operand(n.Initial))
	for _, p := range n.Parts {
		if !features.Has(p.Op.feature()) {
			s.Warn("union", slog.String("operation", p.Op.String()))
		} else {
			st.Raw(p.Op.String())
			if p.Distinct && p.Op.distinctable() && features.Has(dialect.UnionExplicitDistinct) {
				st.Raw("DISTINCT")
			}
		}
		st.Expr(operand(p.Select))
	}
	st.Clause("ORDER BY", commaList(n.Orders))
	st.Clause("LIMIT", n.Limit)
	st.Clause("OFFSET", n.Offset)
	st.Finish()
}
