package nodes

// AssignmentNode represents a column = value pair in SET clauses.
// Attribute targets render unqualified, since SET lists never take a
// table prefix.
type AssignmentNode struct {
	Left  Node // column (Attribute)
	Right Node // value
}

// Assign creates an AssignmentNode; a raw val is bound.
func Assign(col Node, val any) *AssignmentNode {
	return &AssignmentNode{Left: col, Right: Bind(val)}
}

func (n *AssignmentNode) Serialize(s *Serializer) {
	s.Statement().Infix(columnName(n.Left), "=", n.Right).Finish()
}

// columnName strips the table qualifier from attribute references.
func columnName(n Node) Node {
	if a, ok := n.(*Attribute); ok {
		return a.Unqualified()
	}
	return n
}

func assignmentList(assigns []*AssignmentNode) Node {
	items := make([]Node, len(assigns))
	for i, a := range assigns {
		items[i] = a
	}
	return commaList(items)
}

// ReturningNode renders RETURNING e1, e2. Dialects without RETURNING
// drop the clause with a warning.
type ReturningNode struct {
	Exprs []Node
}

func (n *ReturningNode) Serialize(s *Serializer) {
	if len(n.Exprs) == 0 {
		return
	}
	if !s.Dialect().SupportsReturning() {
		s.Warn("returning")
		return
	}
	s.Statement().Clause("RETURNING", commaList(n.Exprs)).Finish()
}

func returning(exprs []Node) Node {
	if len(exprs) == 0 {
		return nil
	}
	return &ReturningNode{Exprs: exprs}
}

// InsertStatement represents INSERT INTO ... VALUES / SELECT / DEFAULT VALUES.
type InsertStatement struct {
	CTEs       []*CTENode
	Into       Node            // *Table
	Columns    []Node          // column list
	Values     [][]Node        // rows of values (multi-row)
	Select     Node            // for INSERT FROM SELECT (mutually exclusive with Values)
	Returning  []Node          // RETURNING columns
	OnConflict *OnConflictNode // conflict strategy
}

func (n *InsertStatement) Serialize(s *Serializer) {
	if n.Select != nil && len(n.Values) > 0 {
		panic("sqlcraft: INSERT has both VALUES and SELECT")
	}
	st := s.Statement()
	st.OptionalExpr(withClause(n.CTEs))
	st.Raw("INSERT")
	if n.OnConflict != nil {
		st.Raw(n.OnConflict.InsertModifier(s.Dialect()))
	}
	st.Raw("INTO").Expr(n.Into)

	cols := make([]Node, len(n.Columns))
	for i, c := range n.Columns {
		cols[i] = columnName(c)
	}
	st.OptionalExpr(parenList(cols))

	switch {
	case n.Select != nil:
		st.Expr(n.Select)
	case len(n.Values) > 0:
		rows := make([]Node, len(n.Values))
		for i, row := range n.Values {
			if len(cols) > 0 && len(row) != len(cols) {
				panic("sqlcraft: INSERT row width does not match column count")
			}
			rows[i] = parenNode{inner: commaList(row)}
		}
		st.Raw("VALUES").Expr(commaList(rows))
	case len(cols) == 0:
		st.Raw("DEFAULT VALUES")
	default:
		panic("sqlcraft: INSERT has columns but no rows")
	}

	if n.OnConflict != nil {
		st.Expr(n.OnConflict)
	}
	st.OptionalExpr(returning(n.Returning))
	st.Finish()
}

// UpdateStatement represents UPDATE ... SET ... WHERE.
type UpdateStatement struct {
	CTEs        []*CTENode
	Table       Node
	Assignments []*AssignmentNode
	Wheres      []Node
	Returning   []Node
}

func (n *UpdateStatement) Serialize(s *Serializer) {
	if len(n.Assignments) == 0 {
		panic("sqlcraft: UPDATE has no assignments")
	}
	s.Statement().
		OptionalExpr(withClause(n.CTEs)).
		Raw("UPDATE").Expr(n.Table).
		Clause("SET", assignmentList(n.Assignments)).
		Clause("WHERE", andList(n.Wheres)).
		OptionalExpr(returning(n.Returning)).
		Finish()
}

// DeleteStatement represents DELETE FROM ... WHERE. Without conditions
// every row is deleted.
type DeleteStatement struct {
	CTEs      []*CTENode
	From      Node
	Wheres    []Node
	Returning []Node
}

func (n *DeleteStatement) Serialize(s *Serializer) {
	s.Statement().
		OptionalExpr(withClause(n.CTEs)).
		Raw("DELETE FROM").Expr(n.From).
		Clause("WHERE", andList(n.Wheres)).
		OptionalExpr(returning(n.Returning)).
		Finish()
}
