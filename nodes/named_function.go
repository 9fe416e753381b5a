package nodes

import "fmt"

// NamedFunctionNode represents a named SQL function call like COALESCE, LOWER, CAST, etc.
type NamedFunctionNode struct {
	Predications
	Arithmetics
	Combinable
	Name     string
	Args     []Node
	Distinct bool
}

// NewNamedFunction creates a NamedFunctionNode with properly initialised embedded structs.
func NewNamedFunction(name string, args ...Node) *NamedFunctionNode {
	n := &NamedFunctionNode{Name: name, Args: args}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

func (n *NamedFunctionNode) Serialize(s *Serializer) {
	validateSQLFunctionName(n.Name)
	s.WriteSQL(n.Name)
	s.WriteSQL("(")
	if n.Distinct {
		s.WriteSQL("DISTINCT ")
	}
	s.Write(commaList(n.Args))
	s.WriteSQL(")")
}

// Coalesce creates a COALESCE(args...) function call.
func Coalesce(args ...Node) *NamedFunctionNode {
	return NewNamedFunction("COALESCE", args...)
}

// Lower creates a LOWER(expr) function call.
func Lower(expr Node) *NamedFunctionNode {
	return NewNamedFunction("LOWER", expr)
}

// Upper creates an UPPER(expr) function call.
func Upper(expr Node) *NamedFunctionNode {
	return NewNamedFunction("UPPER", expr)
}

// Substring creates a SUBSTRING(expr, start, len) function call.
func Substring(expr, start, length Node) *NamedFunctionNode {
	return NewNamedFunction("SUBSTRING", expr, start, length)
}

// Over wraps the named function with an inline window definition.
func (n *NamedFunctionNode) Over(def *WindowDefinition) *OverNode {
	o := NewOverNode(n)
	o.Window = def
	return o
}

// OverName wraps the named function with a named window reference.
func (n *NamedFunctionNode) OverName(name string) *OverNode {
	o := NewOverNode(n)
	o.WindowName = name
	return o
}

// validateSQLTypeName panics if the type name contains characters outside
// the set of letters, digits, spaces, parentheses, commas and underscores.
// This prevents SQL injection through crafted type names.
func validateSQLTypeName(name string) {
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != ' ' && c != '(' &&
			c != ')' && c != ',' && c != '_' {
			panic(fmt.Sprintf("sqlcraft: invalid SQL type name character %q in %q", string(c), name))
		}
	}
}

// validateSQLFunctionName panics if the function name contains characters
// outside the set of letters, digits, underscores and dots.
func validateSQLFunctionName(name string) {
	if name == "" {
		panic("sqlcraft: empty SQL function name")
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != '_' && c != '.' {
			panic(fmt.Sprintf("sqlcraft: invalid SQL function name character %q in %q", string(c), name))
		}
	}
}
