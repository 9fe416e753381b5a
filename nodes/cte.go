package nodes

// CTENode represents one Common Table Expression: name [(cols)] AS (query).
type CTENode struct {
	Name      string
	Query     Node
	Recursive bool
	Columns   []string // optional column list
}

func (n *CTENode) Serialize(s *Serializer) {
	s.Statement().
		Expr(NewIdentifier(n.Name)).
		OptionalExpr(parenList(identList(n.Columns))).
		Raw("AS").
		Expr(parenNode{inner: n.Query}).
		Finish()
}

// WithClause is the CTE group that prefixes a statement. It renders
// WITH RECURSIVE when any member is recursive, and nothing when empty.
type WithClause struct {
	CTEs []*CTENode
}

func (n *WithClause) Serialize(s *Serializer) {
	if len(n.CTEs) == 0 {
		return
	}
	items := make([]Node, len(n.CTEs))
	recursive := false
	for i, cte := range n.CTEs {
		items[i] = cte
		recursive = recursive || cte.Recursive
	}
	st := s.Statement().Raw("WITH").RawIf(recursive, "RECURSIVE")
	st.Expr(commaList(items)).Finish()
}

func withClause(ctes []*CTENode) Node {
	if len(ctes) == 0 {
		return nil
	}
	return &WithClause{CTEs: ctes}
}
