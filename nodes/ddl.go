package nodes

import (
	"log/slog"
	"strings"

	"github.com/bawdo/sqlcraft/dialect"
)

// DropBehavior is the CASCADE / RESTRICT suffix of DROP statements.
type DropBehavior int

const (
	DropDefault DropBehavior = iota
	DropCascade
	DropRestrict
)

// dropBehaviorSQL returns the suffix for b, or "" when b is the default or
// the dialect has no drop behaviors.
func dropBehaviorSQL(s *Serializer, b DropBehavior) string {
	if b == DropDefault {
		return ""
	}
	if !s.Dialect().SupportsDropBehavior() {
		s.Warn("drop_behavior")
		return ""
	}
	if b == DropCascade {
		return "CASCADE"
	}
	return "RESTRICT"
}

// ifExistsSQL returns text when want is set and the dialect supports
// IF [NOT] EXISTS.
func ifExistsSQL(s *Serializer, want bool, text string) string {
	if !want {
		return ""
	}
	if !s.Dialect().SupportsIfExists() {
		s.Warn("if_exists")
		return ""
	}
	return text
}

// EnumTypeRef names an enum column type and its labels. Dialects with
// named enum types use Name; inline dialects spell out Values.
type EnumTypeRef struct {
	Name   string
	Values []string
}

// DataTypeNode is a column type: a scalar kind, an enum, or raw text.
type DataTypeNode struct {
	Scalar dialect.DataType
	Enum   *EnumTypeRef
	Raw    string
}

// Type creates a scalar column type.
func Type(kind dialect.TypeKind) *DataTypeNode {
	return &DataTypeNode{Scalar: dialect.DataType{Kind: kind}}
}

// Varchar creates a VARCHAR(length) column type.
func Varchar(length int) *DataTypeNode {
	return &DataTypeNode{Scalar: dialect.DataType{Kind: dialect.TypeVarchar, Length: length}}
}

// Decimal creates a DECIMAL(precision, scale) column type.
func Decimal(precision, scale int) *DataTypeNode {
	return &DataTypeNode{Scalar: dialect.DataType{Kind: dialect.TypeDecimal, Precision: precision, Scale: scale}}
}

// EnumType creates an enum column type.
func EnumType(name string, values ...string) *DataTypeNode {
	return &DataTypeNode{Enum: &EnumTypeRef{Name: name, Values: values}}
}

// RawType creates a column type rendered verbatim. The name is validated
// against the characters allowed in type names.
func RawType(name string) *DataTypeNode {
	return &DataTypeNode{Raw: name}
}

func (n *DataTypeNode) Serialize(s *Serializer) {
	d := s.Dialect()
	switch {
	case n.Raw != "":
		validateSQLTypeName(n.Raw)
		s.WriteSQL(n.Raw)
	case n.Enum != nil:
		switch d.Enum() {
		case dialect.EnumInline:
			if len(n.Enum.Values) == 0 {
				panic("sqlcraft: inline enum " + n.Enum.Name + " has no values")
			}
			s.WriteSQL("ENUM(")
			s.WriteSQL(quoteAll(d, n.Enum.Values))
			s.WriteSQL(")")
		case dialect.EnumNamedType:
			if n.Enum.Name == "" {
				panic("sqlcraft: named enum type has no name")
			}
			s.WriteIdent(n.Enum.Name)
		default:
			s.Warn("enum", slog.String("type", n.Enum.Name))
			s.WriteSQL(d.TypeName(dialect.DataType{Kind: dialect.TypeText}))
		}
	default:
		s.WriteSQL(d.TypeName(n.Scalar))
	}
}

func quoteAll(d *dialect.Dialect, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = d.QuoteString(v)
	}
	return strings.Join(quoted, ", ")
}

// ReferentialAction is the ON DELETE / ON UPDATE action of a foreign key.
type ReferentialAction int

const (
	ActionDefault ReferentialAction = iota // clause omitted
	ActionNoAction
	ActionRestrict
	ActionCascade
	ActionSetNull
	ActionSetDefault
)

var referentialActionSQL = [...]string{
	ActionDefault:    "",
	ActionNoAction:   "NO ACTION",
	ActionRestrict:   "RESTRICT",
	ActionCascade:    "CASCADE",
	ActionSetNull:    "SET NULL",
	ActionSetDefault: "SET DEFAULT",
}

// ForeignKeyRef is the REFERENCES part of a foreign key.
type ForeignKeyRef struct {
	Table    *Table
	Columns  []string
	OnDelete ReferentialAction
	OnUpdate ReferentialAction
}

// References creates a ForeignKeyRef to table(cols).
func References(table *Table, cols ...string) *ForeignKeyRef {
	return &ForeignKeyRef{Table: table, Columns: cols}
}

func (n *ForeignKeyRef) Serialize(s *Serializer) {
	if n.Table == nil {
		panic("sqlcraft: foreign key has no referenced table")
	}
	st := s.Statement().Raw("REFERENCES").Expr(n.Table)
	st.OptionalExpr(parenList(identList(n.Columns)))
	if n.OnDelete != ActionDefault {
		st.Raw("ON DELETE " + referentialActionSQL[n.OnDelete])
	}
	if n.OnUpdate != ActionDefault {
		st.Raw("ON UPDATE " + referentialActionSQL[n.OnUpdate])
	}
	st.Finish()
}

// ColumnConstraintKind identifies a column constraint.
type ColumnConstraintKind int

const (
	ColNotNull ColumnConstraintKind = iota
	ColNull
	ColDefault
	ColPrimaryKey
	ColAutoIncrement
	ColUnique
	ColCheck
	ColReferences
	ColCollate
)

// ColumnConstraint is one constraint in a column definition.
type ColumnConstraint struct {
	Kind       ColumnConstraintKind
	Expr       Node           // DEFAULT value or CHECK condition
	References *ForeignKeyRef // for ColReferences
	Collation  string         // for ColCollate
}

// NotNull returns a NOT NULL constraint.
func NotNull() *ColumnConstraint { return &ColumnConstraint{Kind: ColNotNull} }

// Nullable returns an explicit NULL constraint.
func Nullable() *ColumnConstraint { return &ColumnConstraint{Kind: ColNull} }

// PrimaryKey returns a column PRIMARY KEY constraint.
func PrimaryKey() *ColumnConstraint { return &ColumnConstraint{Kind: ColPrimaryKey} }

// AutoIncrement returns the dialect's auto-increment clause.
func AutoIncrement() *ColumnConstraint { return &ColumnConstraint{Kind: ColAutoIncrement} }

// UniqueColumn returns a column UNIQUE constraint.
func UniqueColumn() *ColumnConstraint { return &ColumnConstraint{Kind: ColUnique} }

// DefaultValue returns DEFAULT val. Raw values are inlined as literals,
// since DDL cannot take bind parameters.
func DefaultValue(val any) *ColumnConstraint {
	return &ColumnConstraint{Kind: ColDefault, Expr: Literal(val)}
}

// CheckColumn returns CHECK (cond). Values in cond must be inline
// literals; a bind inside the condition panics at render time.
func CheckColumn(cond Node) *ColumnConstraint {
	return &ColumnConstraint{Kind: ColCheck, Expr: cond}
}

// ReferencesColumn returns an inline REFERENCES constraint.
func ReferencesColumn(ref *ForeignKeyRef) *ColumnConstraint {
	return &ColumnConstraint{Kind: ColReferences, References: ref}
}

// Collate returns COLLATE name.
func Collate(name string) *ColumnConstraint {
	return &ColumnConstraint{Kind: ColCollate, Collation: name}
}

func (n *ColumnConstraint) Serialize(s *Serializer) {
	switch n.Kind {
	case ColNotNull:
		s.WriteSQL("NOT NULL")
	case ColNull:
		s.WriteSQL("NULL")
	case ColDefault:
		s.Statement().Clause("DEFAULT", n.Expr).Finish()
	case ColPrimaryKey:
		s.WriteSQL("PRIMARY KEY")
	case ColAutoIncrement:
		clause, ok := s.Dialect().AutoIncrement()
		if !ok {
			s.Warn("auto_increment")
			return
		}
		s.WriteSQL(clause)
	case ColUnique:
		s.WriteSQL("UNIQUE")
	case ColCheck:
		s.WriteSQL("CHECK ")
		checkBody(n.Expr).Serialize(s)
	case ColReferences:
		n.References.Serialize(s)
	case ColCollate:
		validateSQLFunctionName(n.Collation)
		s.WriteSQL("COLLATE " + n.Collation)
	}
}

// ColumnDef is one column of a CREATE TABLE or ALTER TABLE ADD COLUMN.
type ColumnDef struct {
	Name        string
	Type        *DataTypeNode
	Constraints []*ColumnConstraint
}

// NewColumnDef creates a ColumnDef.
func NewColumnDef(name string, typ *DataTypeNode, constraints ...*ColumnConstraint) *ColumnDef {
	return &ColumnDef{Name: name, Type: typ, Constraints: constraints}
}

func (n *ColumnDef) Serialize(s *Serializer) {
	if n.Type == nil {
		panic("sqlcraft: column " + n.Name + " has no type")
	}
	st := s.Statement().Expr(NewIdentifier(n.Name)).Expr(n.Type)
	for _, c := range n.Constraints {
		st.Expr(c)
	}
	st.Finish()
}

// TableConstraintKind identifies a table-level constraint.
type TableConstraintKind int

const (
	PrimaryKeyConstraint TableConstraintKind = iota
	UniqueConstraint
	CheckConstraint
	ForeignKeyConstraint
)

// TableConstraint is a named or anonymous table-level constraint. Names
// pass through the dialect's constraint-name normalizer.
type TableConstraint struct {
	Name       string
	Kind       TableConstraintKind
	Columns    []string
	Check      Node
	References *ForeignKeyRef
}

// PrimaryKeyOn creates PRIMARY KEY (cols).
func PrimaryKeyOn(cols ...string) *TableConstraint {
	return &TableConstraint{Kind: PrimaryKeyConstraint, Columns: cols}
}

// UniqueOn creates UNIQUE (cols).
func UniqueOn(cols ...string) *TableConstraint {
	return &TableConstraint{Kind: UniqueConstraint, Columns: cols}
}

// CheckOn creates CHECK (cond). As with CheckColumn, cond must not
// contain binds.
func CheckOn(cond Node) *TableConstraint {
	return &TableConstraint{Kind: CheckConstraint, Check: cond}
}

// ForeignKey creates FOREIGN KEY (cols) REFERENCES ....
func ForeignKey(cols []string, ref *ForeignKeyRef) *TableConstraint {
	return &TableConstraint{Kind: ForeignKeyConstraint, Columns: cols, References: ref}
}

// Named returns a copy of the constraint with a name.
func (n *TableConstraint) Named(name string) *TableConstraint {
	c := *n
	c.Name = name
	return &c
}

func (n *TableConstraint) Serialize(s *Serializer) {
	st := s.Statement()
	if n.Name != "" {
		st.Raw("CONSTRAINT").Expr(NewIdentifier(s.Dialect().ConstraintName(n.Name)))
	}
	cols := parenList(identList(n.Columns))
	switch n.Kind {
	case PrimaryKeyConstraint, UniqueConstraint, ForeignKeyConstraint:
		if cols == nil {
			panic("sqlcraft: table constraint " + n.Name + " has no columns")
		}
	}
	switch n.Kind {
	case PrimaryKeyConstraint:
		st.Raw("PRIMARY KEY").Expr(cols)
	case UniqueConstraint:
		st.Raw("UNIQUE").Expr(cols)
	case CheckConstraint:
		if n.Check == nil {
			panic("sqlcraft: CHECK constraint " + n.Name + " has no condition")
		}
		st.Raw("CHECK").Expr(checkBody(n.Check))
	case ForeignKeyConstraint:
		if n.References == nil {
			panic("sqlcraft: foreign key " + n.Name + " has no REFERENCES")
		}
		st.Raw("FOREIGN KEY").Expr(cols).Expr(n.References)
	}
	st.Finish()
}

// CreateTable represents CREATE [TEMPORARY] TABLE [IF NOT EXISTS].
type CreateTable struct {
	Table       *Table
	Temporary   bool
	IfNotExists bool
	Columns     []*ColumnDef
	Constraints []*TableConstraint
}

func (n *CreateTable) Serialize(s *Serializer) {
	if len(n.Columns) == 0 {
		panic("sqlcraft: CREATE TABLE " + n.Table.Name + " has no columns")
	}
	items := make([]Node, 0, len(n.Columns)+len(n.Constraints))
	for _, c := range n.Columns {
		items = append(items, c)
	}
	for _, c := range n.Constraints {
		items = append(items, c)
	}
	s.Statement().
		Raw("CREATE").RawIf(n.Temporary, "TEMPORARY").Raw("TABLE").
		Raw(ifExistsSQL(s, n.IfNotExists, "IF NOT EXISTS")).
		Expr(n.Table).
		Expr(parenList(items)).
		Finish()
}

// DropTable represents DROP TABLE [IF EXISTS] t [CASCADE|RESTRICT].
type DropTable struct {
	Table    *Table
	IfExists bool
	Behavior DropBehavior
}

func (n *DropTable) Serialize(s *Serializer) {
	s.Statement().
		Raw("DROP TABLE").
		Raw(ifExistsSQL(s, n.IfExists, "IF EXISTS")).
		Expr(n.Table).
		Raw(dropBehaviorSQL(s, n.Behavior)).
		Finish()
}

// checkBody renders (cond) and panics if cond recorded a bind: DDL is
// executed without parameters, so a placeholder there can never be filled.
func checkBody(cond Node) Node {
	return funcNode(func(s *Serializer) {
		before := len(s.Binds())
		parenNode{inner: cond}.Serialize(s)
		if len(s.Binds()) > before {
			panic("sqlcraft: CHECK condition contains a bind parameter; use Literal for constant values")
		}
	})
}
