package nodes

// JSONSubpathNode is nested access into a JSON column. Dialects without a
// subpath hook render nothing for it, and the enclosing statement drops
// the slot without leaving a gap.
type JSONSubpathNode struct {
	Predications
	Combinable
	Column *Attribute
	Path   []string
}

// NewJSONSubpath creates a JSONSubpathNode with properly initialised embedded structs.
func NewJSONSubpath(column *Attribute, path ...string) *JSONSubpathNode {
	n := &JSONSubpathNode{Column: column, Path: path}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

func (n *JSONSubpathNode) Serialize(s *Serializer) {
	if len(n.Path) == 0 {
		panic("sqlcraft: JSON subpath on " + n.Column.Name + " is empty")
	}
	col := NewSerializer(s.Dialect(), s.Logger())
	n.Column.Serialize(col)
	out, ok := s.Dialect().JSONSubpath(col.SQL(), n.Path)
	if !ok {
		s.Warn("json_subpath", "column", n.Column.Name)
		return
	}
	s.WriteSQL(out)
}
