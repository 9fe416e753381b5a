// Package nodes defines the expression tree used to represent SQL
// statements, and the serializer that renders a tree into SQL text plus
// an ordered list of bind values for one dialect.
package nodes

// Node is the interface that all tree nodes implement. A node renders
// itself by appending text and binds to s; it never returns an error.
// Unsupported dialect features degrade (and log), construction bugs panic.
type Node interface {
	Serialize(s *Serializer)
}

// Bind wraps a raw Go value into a BindParamNode. If val already
// implements Node, it is returned as-is.
func Bind(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	return NewBindParam(val)
}

// joinedNode renders its items separated by sep. Items that emit nothing
// are skipped together with their separator.
type joinedNode struct {
	items []Node
	sep   string
}

func (n *joinedNode) Serialize(s *Serializer) {
	first := true
	for _, item := range n.items {
		if item == nil {
			continue
		}
		mark := s.mark()
		if !first {
			s.WriteSQL(n.sep)
		}
		body := s.mark()
		item.Serialize(s)
		if !s.wroteSince(body) {
			s.truncate(mark)
			continue
		}
		first = false
	}
}

// commaList returns items joined by ", ", or nil when items is empty so
// that Statement.Clause omits the clause entirely.
func commaList(items []Node) Node {
	if len(items) == 0 {
		return nil
	}
	return &joinedNode{items: items, sep: ", "}
}

// andList returns items joined by " AND ", or nil when items is empty.
func andList(items []Node) Node {
	if len(items) == 0 {
		return nil
	}
	return &joinedNode{items: items, sep: " AND "}
}

// parenNode wraps its child in parentheses.
type parenNode struct{ inner Node }

func (n parenNode) Serialize(s *Serializer) {
	s.WriteSQL("(")
	n.inner.Serialize(s)
	s.WriteSQL(")")
}

// parenIfAny writes (inner), or nothing at all when inner renders nothing.
func parenIfAny(s *Serializer, inner Node) {
	m := s.mark()
	s.WriteSQL("(")
	body := s.mark()
	s.Write(inner)
	if !s.wroteSince(body) {
		s.truncate(m)
		return
	}
	s.WriteSQL(")")
}

// parenList renders (a, b, c), or nil when items is empty.
func parenList(items []Node) Node {
	if len(items) == 0 {
		return nil
	}
	return parenNode{inner: commaList(items)}
}

// identList quotes each name with the dialect's identifier quote.
func identList(names []string) []Node {
	out := make([]Node, len(names))
	for i, name := range names {
		out[i] = NewIdentifier(name)
	}
	return out
}

// rawNode renders a fixed SQL fragment.
type rawNode string

func (n rawNode) Serialize(s *Serializer) { s.WriteSQL(string(n)) }

// funcNode renders rendered-by-closure SQL. It lets a node hand a small
// piece of its own rendering to Statement without declaring a type.
type funcNode func(s *Serializer)

func (f funcNode) Serialize(s *Serializer) { f(s) }
