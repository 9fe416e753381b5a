package nodes

import (
	"log/slog"
	"strings"

	"github.com/bawdo/sqlcraft/dialect"
)

// LockWait controls how a locking SELECT treats rows locked by others.
type LockWait int

const (
	LockWaitDefault LockWait = iota
	SkipLocked
	NoWait
)

// LockingClause requests a row-level lock on the selected rows. The clause
// text comes from the dialect; dialects without one drop the clause.
type LockingClause struct {
	Strength dialect.LockStrength
	Wait     LockWait
	Of       []*Table // FOR UPDATE OF t1, t2
}

// ForUpdate returns an exclusive LockingClause.
func ForUpdate() *LockingClause {
	return &LockingClause{Strength: dialect.LockExclusive}
}

// ForShare returns a shared LockingClause.
func ForShare() *LockingClause {
	return &LockingClause{Strength: dialect.LockShared}
}

func (n *LockingClause) Serialize(s *Serializer) {
	text := s.Dialect().LockClause(n.Strength)
	if text == "" {
		s.Logger().Debug("locking clause dropped", slog.String("dialect", s.Dialect().Name()))
		return
	}
	st := s.Statement().Raw(text)
	if len(n.Of) > 0 {
		of := make([]Node, len(n.Of))
		for i, t := range n.Of {
			of[i] = t
		}
		st.Clause("OF", commaList(of))
	}
	switch n.Wait {
	case SkipLocked:
		st.Raw("SKIP LOCKED")
	case NoWait:
		st.Raw("NOWAIT")
	}
	st.Finish()
}

// GroupByNode renders GROUP BY e1, e2, or nothing when Exprs is empty.
type GroupByNode struct {
	Exprs []Node
}

func (n *GroupByNode) Serialize(s *Serializer) {
	s.Statement().Clause("GROUP BY", commaList(n.Exprs)).Finish()
}

// HavingNode renders HAVING c1 AND c2, or nothing when Conds is empty.
type HavingNode struct {
	Conds []Node
}

func (n *HavingNode) Serialize(s *Serializer) {
	s.Statement().Clause("HAVING", andList(n.Conds)).Finish()
}

// SelectCore represents the data container for a SELECT clause.
// The fluent API for building queries lives in the managers package.
type SelectCore struct {
	From        Node
	Projections []Node
	Wheres      []Node
	Joins       []*JoinNode
	Groups      []Node              // GROUP BY expressions
	Havings     []Node              // HAVING conditions
	Windows     []*WindowDefinition // WINDOW definitions
	Orders      []Node              // OrderingNode values
	Limit       Node                // nil or a literal/bind
	Offset      Node                // nil or a literal/bind
	Distinct    bool
	DistinctOn  []Node         // DISTINCT ON columns (PostgreSQL)
	Lock        *LockingClause // FOR UPDATE/SHARE
	Comment     string         // query comment /* ... */
	Hints       []string       // optimizer hints /*+ ... */
	CTEs        []*CTENode     // WITH clause
}

func (n *SelectCore) Serialize(s *Serializer) {
	st := s.Statement()
	st.OptionalExpr(withClause(n.CTEs))
	if n.Comment != "" {
		st.Raw("/* " + sanitizeComment(n.Comment) + " */")
	}
	st.Raw("SELECT")
	if len(n.Hints) > 0 {
		hints := make([]string, len(n.Hints))
		for i, h := range n.Hints {
			hints[i] = sanitizeComment(h)
		}
		st.Raw("/*+ " + strings.Join(hints, " ") + " */")
	}
	if len(n.DistinctOn) > 0 {
		st.Raw("DISTINCT ON").Expr(parenList(n.DistinctOn))
	} else if n.Distinct {
		st.Raw("DISTINCT")
	}
	if len(n.Projections) == 0 {
		st.Raw("*")
	} else {
		st.Expr(commaList(n.Projections))
	}
	st.Clause("FROM", n.From)
	for _, j := range n.Joins {
		st.Expr(j)
	}
	st.Clause("WHERE", andList(n.Wheres))
	st.Expr(&GroupByNode{Exprs: n.Groups})
	st.Expr(&HavingNode{Conds: n.Havings})
	st.Clause("WINDOW", windowClause(n.Windows))
	st.Clause("ORDER BY", commaList(n.Orders))
	st.Clause("LIMIT", n.Limit)
	st.Clause("OFFSET", n.Offset)
	if n.Lock != nil {
		st.Expr(n.Lock)
	}
	st.Finish()
}

// sanitizeComment keeps text from closing a /* */ comment early.
func sanitizeComment(text string) string {
	return strings.ReplaceAll(text, "*/", "* /")
}
