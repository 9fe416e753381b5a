package nodes

import (
	"log/slog"

	"github.com/bawdo/sqlcraft/dialect"
)

// AddColumn is ALTER TABLE ... ADD COLUMN <definition>.
type AddColumn struct {
	Column *ColumnDef
}

func (n *AddColumn) Serialize(s *Serializer) {
	s.Statement().Raw("ADD COLUMN").Expr(n.Column).Finish()
}

// ModifyColumn changes a column's type. Dialects that alter in place
// render ALTER COLUMN "c" TYPE t and ignore the column constraints;
// MODIFY dialects restate the full definition.
type ModifyColumn struct {
	Column *ColumnDef
}

func (n *ModifyColumn) Serialize(s *Serializer) {
	change := s.Dialect().AlterTable().ColumnType
	st := s.Statement().Raw(change.Keyword())
	switch change {
	case dialect.ColumnTypeAlter:
		st.Expr(NewIdentifier(n.Column.Name)).Raw("TYPE").Expr(n.Column.Type)
	case dialect.ColumnTypeModify:
		st.Expr(n.Column)
	}
	st.Finish()
}

// DropColumn is DROP COLUMN [IF EXISTS] "c".
type DropColumn struct {
	Name     string
	IfExists bool
}

func (n *DropColumn) Serialize(s *Serializer) {
	s.Statement().
		Raw("DROP COLUMN").
		Raw(ifExistsSQL(s, n.IfExists, "IF EXISTS")).
		Expr(NewIdentifier(n.Name)).
		Finish()
}

// RenameColumn is RENAME COLUMN "from" TO "to".
type RenameColumn struct {
	From, To string
}

func (n *RenameColumn) Serialize(s *Serializer) {
	s.Statement().
		Raw("RENAME COLUMN").Expr(NewIdentifier(n.From)).
		Raw("TO").Expr(NewIdentifier(n.To)).
		Finish()
}

// AddConstraint is ADD <table constraint>.
type AddConstraint struct {
	Constraint *TableConstraint
}

func (n *AddConstraint) Serialize(s *Serializer) {
	s.Statement().Raw("ADD").Expr(n.Constraint).Finish()
}

// DropConstraint is DROP CONSTRAINT [IF EXISTS] "name".
type DropConstraint struct {
	Name     string
	IfExists bool
}

func (n *DropConstraint) Serialize(s *Serializer) {
	s.Statement().
		Raw("DROP CONSTRAINT").
		Raw(ifExistsSQL(s, n.IfExists, "IF EXISTS")).
		Expr(NewIdentifier(s.Dialect().ConstraintName(n.Name))).
		Finish()
}

// RenameTable is RENAME TO "name".
type RenameTable struct {
	To string
}

func (n *RenameTable) Serialize(s *Serializer) {
	s.Statement().Raw("RENAME TO").Expr(NewIdentifier(n.To)).Finish()
}

// AlterTable represents ALTER TABLE t op, op, ...
//
// Type changes the dialect cannot express are dropped with a warning. When
// every operation is dropped the statement renders nothing. Several
// operations on a dialect without batching still render comma-joined, with
// a warning; run them one per statement instead.
type AlterTable struct {
	Table *Table
	Ops   []Node
}

// NewAlterTable creates an AlterTable for table.
func NewAlterTable(table *Table, ops ...Node) *AlterTable {
	return &AlterTable{Table: table, Ops: ops}
}

func (n *AlterTable) Serialize(s *Serializer) {
	syntax := s.Dialect().AlterTable()
	kept := make([]Node, 0, len(n.Ops))
	for _, op := range n.Ops {
		if m, ok := op.(*ModifyColumn); ok && syntax.ColumnType == dialect.ColumnTypeUnsupported {
			s.Warn("alter_column_type", slog.String("column", m.Column.Name))
			continue
		}
		kept = append(kept, op)
	}
	if len(kept) == 0 {
		return
	}
	if len(kept) > 1 && !syntax.Batch {
		s.Warn("alter_table_batch", slog.Int("operations", len(kept)))
	}
	s.Statement().
		Raw("ALTER TABLE").Expr(n.Table).
		Expr(commaList(kept)).
		Finish()
}
