package nodes

// Attribute represents a column reference bound to a table or table alias.
// A nil Relation renders the bare column name.
type Attribute struct {
	Predications
	Arithmetics
	Combinable
	Name     string
	Relation Node   // *Table, *TableAlias or nil
	TypeName string // SQL type for coercion (e.g. "integer", "text")
}

// NewAttribute creates an Attribute with Predications and Combinable
// properly initialized to reference the new Attribute as self.
func NewAttribute(relation Node, name string) *Attribute {
	a := &Attribute{Name: name, Relation: relation}
	a.Predications.self = a
	a.Arithmetics.self = a
	a.Combinable.self = a
	return a
}

// Column creates an unqualified column reference.
func Column(name string) *Attribute {
	return NewAttribute(nil, name)
}

func (a *Attribute) Serialize(s *Serializer) {
	writeQualifier(s, a.Relation)
	s.WriteIdent(a.Name)
}

// Typed returns a copy of the Attribute with TypeName set.
// The copy has its own Predications/Arithmetics/Combinable self pointers.
func (a *Attribute) Typed(typeName string) *Attribute {
	c := &Attribute{Name: a.Name, Relation: a.Relation, TypeName: typeName}
	c.Predications.self = c
	c.Arithmetics.self = c
	c.Combinable.self = c
	return c
}

// Coerce wraps val using the attribute's type. If TypeName is set,
// returns a CastedNode; otherwise returns a bind parameter.
func (a *Attribute) Coerce(val any) Node {
	if a.TypeName != "" {
		return NewCasted(val, a.TypeName)
	}
	return Bind(val)
}

// Path returns nested JSON access into this column.
func (a *Attribute) Path(path ...string) *JSONSubpathNode {
	return NewJSONSubpath(a, path...)
}

// Unqualified returns the same column without its table qualifier, for
// contexts such as INSERT column lists and conflict targets.
func (a *Attribute) Unqualified() *Attribute {
	if a.Relation == nil {
		return a
	}
	return NewAttribute(nil, a.Name)
}

// Identifier is a bare quoted name: a column in a DDL statement, an index,
// a type or a constraint.
type Identifier struct {
	Name string
}

// NewIdentifier creates an Identifier.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

func (n *Identifier) Serialize(s *Serializer) { s.WriteIdent(n.Name) }
