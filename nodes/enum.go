package nodes

import (
	"log/slog"

	"github.com/bawdo/sqlcraft/dialect"
)

// CreateEnumType represents CREATE TYPE "name" AS ENUM ('a', 'b'). Only
// dialects with named enum types render it; inline-enum dialects carry the
// labels in the column type and render nothing here.
type CreateEnumType struct {
	Name   string
	Values []string
}

func (n *CreateEnumType) Serialize(s *Serializer) {
	if len(n.Values) == 0 {
		panic("sqlcraft: enum type " + n.Name + " has no values")
	}
	d := s.Dialect()
	switch d.Enum() {
	case dialect.EnumNamedType:
	case dialect.EnumInline:
		s.Logger().Debug("enum type declared inline", slog.String("dialect", d.Name()), slog.String("type", n.Name))
		return
	default:
		s.Warn("enum", slog.String("type", n.Name))
		return
	}
	s.WriteSQL("CREATE TYPE ")
	s.WriteIdent(n.Name)
	s.WriteSQL(" AS ENUM (")
	s.WriteSQL(quoteAll(d, n.Values))
	s.WriteSQL(")")
}

// DropEnumType represents DROP TYPE [IF EXISTS] "name". It renders nothing
// for dialects without named enum types.
type DropEnumType struct {
	Name     string
	IfExists bool
	Behavior DropBehavior
}

func (n *DropEnumType) Serialize(s *Serializer) {
	if s.Dialect().Enum() != dialect.EnumNamedType {
		return
	}
	s.Statement().
		Raw("DROP TYPE").
		Raw(ifExistsSQL(s, n.IfExists, "IF EXISTS")).
		Expr(NewIdentifier(n.Name)).
		Raw(dropBehaviorSQL(s, n.Behavior)).
		Finish()
}
