package nodes

// Statement collects the parts of one node's SQL and writes them joined by
// single spaces. Parts that render nothing leave no trace, so optional
// clauses never produce doubled spaces or dangling keywords. If an operand
// part renders nothing the whole statement is dropped, binds included.
//
//	st := s.Statement()
//	st.Raw("DELETE FROM").Expr(n.From)
//	st.Clause("WHERE", andList(n.Wheres))
//	st.Finish()
type Statement struct {
	s     *Serializer
	parts []stmtPart
}

type stmtPart struct {
	raw      string
	node     Node
	required bool
}

// Raw appends a fixed SQL fragment. Empty text is ignored.
func (st *Statement) Raw(text string) *Statement {
	if text != "" {
		st.parts = append(st.parts, stmtPart{raw: text})
	}
	return st
}

// Expr appends n, rendered when Finish is called.
func (st *Statement) Expr(n Node) *Statement {
	if n == nil {
		panic("sqlcraft: statement part is nil")
	}
	st.parts = append(st.parts, stmtPart{node: n})
	return st
}

// Operand appends n as a part the statement cannot do without.
func (st *Statement) Operand(n Node) *Statement {
	if n == nil {
		panic("sqlcraft: statement operand is nil")
	}
	st.parts = append(st.parts, stmtPart{node: n, required: true})
	return st
}

// OptionalExpr appends n if it is non-nil.
func (st *Statement) OptionalExpr(n Node) *Statement {
	if n != nil {
		st.parts = append(st.parts, stmtPart{node: n})
	}
	return st
}

// Clause appends "keyword n" when n is non-nil. If n renders nothing the
// keyword is dropped with it.
func (st *Statement) Clause(keyword string, n Node) *Statement {
	if n == nil {
		return st
	}
	return st.OptionalExpr(funcNode(func(s *Serializer) {
		mark := s.mark()
		s.WriteSQL(keyword)
		s.WriteSQL(" ")
		body := s.mark()
		n.Serialize(s)
		if !s.wroteSince(body) {
			s.truncate(mark)
		}
	}))
}

// Infix appends "left op right". Both sides are operands.
func (st *Statement) Infix(left Node, op string, right Node) *Statement {
	return st.Operand(left).Raw(op).Operand(right)
}

// RawIf appends text when cond holds.
func (st *Statement) RawIf(cond bool, text string) *Statement {
	if cond {
		st.Raw(text)
	}
	return st
}

// Finish renders every part into the serializer, separated by one space.
func (st *Statement) Finish() {
	s := st.s
	start := s.mark()
	wrote := false
	defer func() { st.parts = nil }()
	for _, p := range st.parts {
		mark := s.mark()
		if wrote {
			s.WriteSQL(" ")
		}
		body := s.mark()
		if p.node != nil {
			p.node.Serialize(s)
		} else {
			s.WriteSQL(p.raw)
		}
		if !s.wroteSince(body) {
			if p.required {
				s.truncate(start)
				return
			}
			s.truncate(mark)
			continue
		}
		wrote = true
	}
}
