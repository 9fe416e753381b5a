package nodes

// CreateIndex represents CREATE [UNIQUE] INDEX [IF NOT EXISTS] "name"
// ON t (cols) [WHERE ...]. Columns may be attributes (rendered
// unqualified), orderings or arbitrary expressions.
type CreateIndex struct {
	Name        string
	Table       *Table
	Columns     []Node
	Unique      bool
	IfNotExists bool
	Wheres      []Node // partial index predicate
}

func (n *CreateIndex) Serialize(s *Serializer) {
	if len(n.Columns) == 0 {
		panic("sqlcraft: index " + n.Name + " has no columns")
	}
	cols := make([]Node, len(n.Columns))
	for i, c := range n.Columns {
		cols[i] = indexColumn(c)
	}
	st := s.Statement().
		Raw("CREATE").RawIf(n.Unique, "UNIQUE").Raw("INDEX").
		Raw(ifExistsSQL(s, n.IfNotExists, "IF NOT EXISTS")).
		Expr(NewIdentifier(n.Name)).
		Raw("ON").Expr(n.Table).
		Expr(parenList(cols))
	if len(n.Wheres) > 0 {
		if s.Dialect().SupportsPartialIndexes() {
			st.Clause("WHERE", andList(n.Wheres))
		} else {
			s.Warn("partial_index")
		}
	}
	st.Finish()
}

// indexColumn strips qualifiers, including from the target of an ordering.
func indexColumn(n Node) Node {
	if o, ok := n.(*OrderingNode); ok {
		c := *o
		c.Expr = columnName(o.Expr)
		return &c
	}
	return columnName(n)
}

// DropIndex represents DROP INDEX [IF EXISTS] "name" [ON t]. Dialects that
// scope indexes to tables require Table; others ignore it.
type DropIndex struct {
	Name     string
	Table    *Table
	IfExists bool
	Behavior DropBehavior
}

func (n *DropIndex) Serialize(s *Serializer) {
	st := s.Statement().
		Raw("DROP INDEX").
		Raw(ifExistsSQL(s, n.IfExists, "IF EXISTS")).
		Expr(NewIdentifier(n.Name))
	if s.Dialect().DropIndexRequiresTable() {
		if n.Table == nil {
			panic("sqlcraft: DROP INDEX " + n.Name + " requires a table for dialect " + s.Dialect().Name())
		}
		st.Raw("ON").Expr(n.Table)
	}
	st.Raw(dropBehaviorSQL(s, n.Behavior)).Finish()
}
