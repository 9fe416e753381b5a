package nodes

// JoinType represents the type of SQL JOIN.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
	CrossJoin
	StringJoin // raw SQL join fragment
)

// SQL keywords for JoinType values.
var joinTypeSQL = [...]string{
	InnerJoin:      "INNER JOIN",
	LeftOuterJoin:  "LEFT OUTER JOIN",
	RightOuterJoin: "RIGHT OUTER JOIN",
	FullOuterJoin:  "FULL OUTER JOIN",
	CrossJoin:      "CROSS JOIN",
	StringJoin:     "",
}

// String returns the display name for this join type.
func (t JoinType) String() string {
	if t == StringJoin {
		return "STRING JOIN"
	}
	if t < 0 || int(t) >= len(joinTypeSQL) {
		return "JOIN"
	}
	return joinTypeSQL[t]
}

// JoinNode represents a SQL JOIN clause.
type JoinNode struct {
	Left    Node     // source table
	Right   Node     // target table or subquery
	Type    JoinType // join type
	On      Node     // join condition (nil for CROSS JOIN)
	Lateral bool     // LATERAL modifier (PostgreSQL)
}

func (n *JoinNode) Serialize(s *Serializer) {
	// StringJoin: raw SQL fragment, output directly.
	if n.Type == StringJoin {
		n.Right.Serialize(s)
		return
	}
	right := n.Right
	if _, ok := right.(*SelectCore); ok {
		right = parenNode{inner: right}
	}
	s.Statement().
		Raw(joinTypeSQL[n.Type]).
		RawIf(n.Lateral, "LATERAL").
		Expr(right).
		Clause("ON", n.On).
		Finish()
}
