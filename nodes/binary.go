package nodes

import "github.com/bawdo/sqlcraft/dialect"

// ComparisonOp represents a binary comparison operator.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpLike
	OpNotLike
	OpRegexp
	OpNotRegexp
	OpDistinctFrom
	OpNotDistinctFrom
	OpCaseSensitiveEq
	OpCaseInsensitiveEq
	OpContains
	OpOverlaps
)

// Operator SQL strings for ComparisonOp values. Regexp and case-folding
// operators are dialect-dependent and resolved at render time.
var comparisonOpSQL = [...]string{
	OpEq:                "=",
	OpNotEq:             "!=",
	OpGt:                ">",
	OpGtEq:              ">=",
	OpLt:                "<",
	OpLtEq:              "<=",
	OpLike:              "LIKE",
	OpNotLike:           "NOT LIKE",
	OpDistinctFrom:      "IS DISTINCT FROM",
	OpNotDistinctFrom:   "IS NOT DISTINCT FROM",
	OpCaseSensitiveEq:   "=",
	OpCaseInsensitiveEq: "=",
	OpContains:          "@>",
	OpOverlaps:          "&&",
}

// ComparisonNode represents a binary comparison: Left Op Right.
type ComparisonNode struct {
	Combinable
	Left  Node
	Right Node
	Op    ComparisonOp
}

// NewComparisonNode creates a ComparisonNode with properly initialised embedded structs.
func NewComparisonNode(left, right Node, op ComparisonOp) *ComparisonNode {
	n := &ComparisonNode{Left: left, Right: right, Op: op}
	n.self = n
	return n
}

func (n *ComparisonNode) Serialize(s *Serializer) {
	d := s.Dialect()
	if isNullBind(n.Right) && (n.Op == OpEq || n.Op == OpNotEq) {
		// "x = NULL" matches nothing; compare against NULL the SQL way.
		op := OpIsNull
		if n.Op == OpNotEq {
			op = OpIsNotNull
		}
		NewUnaryNode(n.Left, op).Serialize(s)
		return
	}
	switch n.Op {
	case OpRegexp, OpNotRegexp:
		s.Statement().Infix(n.Left, d.RegexpOperator(n.Op == OpNotRegexp), n.Right).Finish()
	case OpCaseSensitiveEq:
		switch d.CaseFolding() {
		case dialect.CaseFoldBinary:
			s.Statement().Infix(n.Left, "= BINARY", n.Right).Finish()
		case dialect.CaseFoldCollate:
			s.Statement().Infix(n.Left, "=", n.Right).Raw("COLLATE BINARY").Finish()
		default:
			s.Statement().Infix(n.Left, "=", n.Right).Finish()
		}
	case OpCaseInsensitiveEq:
		if d.CaseFolding() == dialect.CaseFoldCollate {
			s.Statement().Infix(n.Left, "=", n.Right).Raw("COLLATE NOCASE").Finish()
			return
		}
		s.Statement().Infix(Lower(n.Left), "=", Lower(n.Right)).Finish()
	default:
		s.Statement().Infix(n.Left, comparisonOpSQL[n.Op], n.Right).Finish()
	}
}

func isNullBind(n Node) bool {
	b, ok := n.(*BindParamNode)
	return ok && b.Value == nil
}
