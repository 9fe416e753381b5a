package nodes

import "github.com/bawdo/sqlcraft/dialect"

// OnConflictAction specifies what happens when an INSERT hits a
// uniqueness violation.
type OnConflictAction int

const (
	DoNothing OnConflictAction = iota
	DoUpdate
)

// OnConflictNode is the conflict strategy of an INSERT. It renders per the
// dialect's upsert syntax:
//
//	on_conflict       ON CONFLICT ("id") DO NOTHING | DO UPDATE SET ... [WHERE ...]
//	on_duplicate_key  ON DUPLICATE KEY UPDATE ... (DO NOTHING becomes INSERT IGNORE)
//	unsupported       nothing, with a warning
type OnConflictNode struct {
	Columns     []Node            // conflict target columns, required for DoUpdate unless Constraint is set
	Constraint  string            // ON CONFLICT ON CONSTRAINT name (instead of Columns)
	Action      OnConflictAction  // DoNothing or DoUpdate
	Assignments []*AssignmentNode // SET for DO UPDATE
	Wheres      []Node            // WHERE for DO UPDATE
}

// InsertModifier returns the keyword the owning INSERT places right after
// INSERT, or "". Only ignore-on-conflict under ON DUPLICATE KEY dialects
// produces one (IGNORE).
func (n *OnConflictNode) InsertModifier(d *dialect.Dialect) string {
	if n.Action == DoNothing && d.Upsert() == dialect.UpsertOnDuplicateKey {
		return "IGNORE"
	}
	return ""
}

func (n *OnConflictNode) Serialize(s *Serializer) {
	if n.Action == DoUpdate {
		if len(n.Assignments) == 0 {
			panic("sqlcraft: conflict DO UPDATE requires at least one assignment")
		}
		if len(n.Columns) == 0 && n.Constraint == "" {
			panic("sqlcraft: conflict DO UPDATE requires a conflict target (columns or constraint)")
		}
	}
	switch s.Dialect().Upsert() {
	case dialect.UpsertOnConflict:
		n.serializeOnConflict(s)
	case dialect.UpsertOnDuplicateKey:
		if n.Action == DoNothing {
			return
		}
		if len(n.Wheres) > 0 {
			s.Warn("upsert_where")
		}
		s.Statement().Clause("ON DUPLICATE KEY UPDATE", assignmentList(n.Assignments)).Finish()
	default:
		s.Warn("upsert")
	}
}

func (n *OnConflictNode) serializeOnConflict(s *Serializer) {
	st := s.Statement().Raw("ON CONFLICT")
	if n.Constraint != "" {
		st.Raw("ON CONSTRAINT").Expr(NewIdentifier(s.Dialect().ConstraintName(n.Constraint)))
	} else {
		cols := make([]Node, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = columnName(c)
		}
		st.OptionalExpr(parenList(cols))
	}
	if n.Action == DoNothing {
		st.Raw("DO NOTHING").Finish()
		return
	}
	st.Clause("DO UPDATE SET", assignmentList(n.Assignments))
	st.Clause("WHERE", andList(n.Wheres))
	st.Finish()
}

// ExcludedNode references the value the conflicting INSERT tried to write
// to Column: EXCLUDED."col" or VALUES(`col`), following the upsert syntax.
type ExcludedNode struct {
	Column string
}

// Excluded creates an ExcludedNode for col.
func Excluded(col string) *ExcludedNode {
	return &ExcludedNode{Column: col}
}

func (n *ExcludedNode) Serialize(s *Serializer) {
	if s.Dialect().Upsert() == dialect.UpsertOnDuplicateKey {
		s.WriteSQL("VALUES(")
		s.WriteIdent(n.Column)
		s.WriteSQL(")")
		return
	}
	s.WriteSQL("EXCLUDED.")
	s.WriteIdent(n.Column)
}

// UpdateExcluded builds col = EXCLUDED.col assignments, the usual
// "overwrite with the incoming row" upsert.
func UpdateExcluded(cols ...string) []*AssignmentNode {
	out := make([]*AssignmentNode, len(cols))
	for i, c := range cols {
		out[i] = &AssignmentNode{Left: Column(c), Right: Excluded(c)}
	}
	return out
}
