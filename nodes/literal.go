package nodes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiteralNode renders a Go value inline as a SQL literal, escaped for the
// dialect. Use it for trusted constants (DEFAULT values, LIMIT counts,
// CHECK expressions); use Bind for caller-supplied data.
//
// Supported values: nil, string, bool, all integer and float kinds,
// decimal.Decimal, uuid.UUID and time.Time. Anything else panics.
type LiteralNode struct {
	Predications
	Combinable
	Value any
}

// Literal creates an inline LiteralNode. If val already implements Node,
// it is returned as-is.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	lit := &LiteralNode{Value: val}
	lit.Predications.self = lit
	lit.Combinable.self = lit
	return lit
}

func (n *LiteralNode) Serialize(s *Serializer) {
	s.WriteSQL(inlineSQL(s, n.Value))
}

func inlineSQL(s *Serializer, val any) string {
	d := s.Dialect()
	switch v := val.(type) {
	case nil:
		return "NULL"
	case string:
		return d.QuoteString(v)
	case bool:
		return d.BoolLiteral(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case decimal.Decimal:
		return v.String()
	case uuid.UUID:
		return d.QuoteString(v.String())
	case time.Time:
		return d.QuoteString(v.Format("2006-01-02 15:04:05.999999999Z07:00"))
	default:
		panic(fmt.Sprintf("sqlcraft: unsupported literal type %T", v))
	}
}

// StarNode represents a SQL star (*) or qualified star (table.*).
type StarNode struct {
	Table *Table // nil for unqualified *
}

func (n *StarNode) Serialize(s *Serializer) {
	if n.Table != nil {
		n.Table.Serialize(s)
		s.WriteSQL(".")
	}
	s.WriteSQL("*")
}

// Star returns an unqualified StarNode representing SQL *.
func Star() *StarNode {
	return &StarNode{}
}

// SqlLiteral represents a raw SQL fragment injected verbatim into the query.
//
// SECURITY: The Raw field is rendered directly into SQL output without escaping
// or parameterization. Never pass user-controlled input to NewSqlLiteral or
// NewBoundSqlLiteral's raw parameter. Use parameterized queries (Bind)
// for user-provided values.
type SqlLiteral struct {
	Predications
	Combinable
	Raw   string
	Binds []any // one per ? mark in Raw
}

func NewSqlLiteral(raw string) *SqlLiteral {
	n := &SqlLiteral{Raw: raw}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

// NewBoundSqlLiteral creates a SqlLiteral with bind parameters. Each ? in
// raw is replaced by the dialect's placeholder for the matching bind, so
// numbering stays correct wherever the fragment lands in the tree.
//
// SECURITY: Only the binds are parameterized. The raw string is injected
// verbatim into SQL output and must not contain user-controlled input.
func NewBoundSqlLiteral(raw string, binds ...any) *SqlLiteral {
	n := NewSqlLiteral(raw)
	n.Binds = binds
	return n
}

func (n *SqlLiteral) Serialize(s *Serializer) {
	if len(n.Binds) == 0 {
		s.WriteSQL(n.Raw)
		return
	}
	if marks := strings.Count(n.Raw, "?"); marks != len(n.Binds) {
		panic(fmt.Sprintf("sqlcraft: SQL literal %q has %d bind marks but %d binds", n.Raw, marks, len(n.Binds)))
	}
	rest := n.Raw
	for _, b := range n.Binds {
		i := strings.IndexByte(rest, '?')
		s.WriteSQL(rest[:i])
		s.WriteBind(b)
		rest = rest[i+1:]
	}
	s.WriteSQL(rest)
}

// DefaultNode renders the DEFAULT keyword, for use as an INSERT value or
// an UPDATE assignment.
type DefaultNode struct{}

// Default returns a DefaultNode.
func Default() DefaultNode { return DefaultNode{} }

func (DefaultNode) Serialize(s *Serializer) { s.WriteSQL("DEFAULT") }
