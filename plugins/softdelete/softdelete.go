// Package softdelete provides a Transformer that injects "column IS NULL"
// conditions so soft-deleted rows stay invisible.
//
// By default it appends WHERE "deleted_at" IS NULL for every table
// referenced in the FROM and JOIN clauses of a SELECT. The column, the set
// of tables, and whether UPDATE and DELETE are filtered too are options.
//
//	sd := softdelete.New()
//	query := managers.NewSelectManager(users).Use(sd)
//	// SELECT * FROM "users" WHERE "users"."deleted_at" IS NULL
//
// Different tables may use different columns:
//
//	sd := softdelete.New(
//	    softdelete.WithTableColumn("users", "deleted_at"),
//	    softdelete.WithTableColumn("posts", "removed_at"),
//	)
//
// In the REPL:
//
//	sqlcraft> softdelete
//	sqlcraft> softdelete removed_at
//	sqlcraft> softdelete off
package softdelete

import (
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

// SoftDelete appends IS NULL conditions for a soft-delete column on every
// referenced table (or a configured subset).
type SoftDelete struct {
	plugins.BaseTransformer
	Column  string
	Columns map[string]string // per-table column overrides (table name → column name)
	tables  map[string]bool   // nil means apply to all tables
	writes  bool
}

// Option configures a SoftDelete transformer.
type Option func(*SoftDelete)

// WithColumn sets the soft-delete column name. Default is "deleted_at".
func WithColumn(name string) Option {
	return func(sd *SoftDelete) { sd.Column = name }
}

// WithTables restricts the plugin to only the named tables.
func WithTables(names ...string) Option {
	return func(sd *SoftDelete) {
		sd.tables = make(map[string]bool, len(names))
		for _, n := range names {
			sd.tables[n] = true
		}
	}
}

// WithTableColumn sets a per-table column override. The table is
// automatically added to the whitelist, restricting the plugin's scope.
func WithTableColumn(table, column string) Option {
	return func(sd *SoftDelete) {
		if sd.Columns == nil {
			sd.Columns = make(map[string]string)
		}
		sd.Columns[table] = column
		if sd.tables == nil {
			sd.tables = make(map[string]bool)
		}
		sd.tables[table] = true
	}
}

// FilterWrites also guards UPDATE and DELETE, so already deleted rows are
// neither modified nor purged.
func FilterWrites() Option {
	return func(sd *SoftDelete) { sd.writes = true }
}

// New creates a SoftDelete transformer with the given options.
func New(opts ...Option) *SoftDelete {
	sd := &SoftDelete{Column: "deleted_at"}
	for _, o := range opts {
		o(sd)
	}
	return sd
}

// TransformSelect appends "column IS NULL" to the WHERE clause for each
// matching table referenced in the query (FROM and JOINs).
func (sd *SoftDelete) TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error) {
	for _, ref := range plugins.CollectTables(core) {
		if cond := sd.condition(ref); cond != nil {
			core.Wheres = append(core.Wheres, cond)
		}
	}
	return core, nil
}

// TransformUpdate guards the target table when FilterWrites is set.
func (sd *SoftDelete) TransformUpdate(stmt *nodes.UpdateStatement) (*nodes.UpdateStatement, error) {
	if ref, ok := plugins.TargetTable(stmt.Table); ok && sd.writes {
		if cond := sd.condition(ref); cond != nil {
			stmt.Wheres = append(stmt.Wheres, cond)
		}
	}
	return stmt, nil
}

// TransformDelete guards the target table when FilterWrites is set.
func (sd *SoftDelete) TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	if ref, ok := plugins.TargetTable(stmt.From); ok && sd.writes {
		if cond := sd.condition(ref); cond != nil {
			stmt.Wheres = append(stmt.Wheres, cond)
		}
	}
	return stmt, nil
}

func (sd *SoftDelete) condition(ref plugins.TableRef) nodes.Node {
	if sd.tables != nil && !sd.tables[ref.Name] {
		return nil
	}
	return nodes.NewAttribute(ref.Relation, sd.columnFor(ref.Name)).IsNull()
}

// columnFor returns the column name to use for the given table.
func (sd *SoftDelete) columnFor(tableName string) string {
	if col, ok := sd.Columns[tableName]; ok {
		return col
	}
	return sd.Column
}
