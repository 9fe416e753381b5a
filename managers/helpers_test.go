package managers

import (
	"errors"
	"testing"

	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/dialect"
	"github.com/bawdo/sqlcraft/internal/testutil"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

var (
	pgDB     = database.New(dialect.Postgres())
	mysqlDB  = database.New(dialect.MySQL())
	sqliteDB = database.New(dialect.SQLite())
)

// renderer is satisfied by every manager.
type renderer interface {
	ToSQL(db *database.DB) (string, []any, error)
}

func assertToSQL(t *testing.T, db *database.DB, m renderer, expected string, binds ...any) {
	t.Helper()
	sql, args, err := m.ToSQL(db)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, expected)
	testutil.AssertBinds(t, args, binds)
}

var errRejected = errors.New("rejected")

// rejecter fails every transformation.
type rejecter struct{ plugins.BaseTransformer }

func (rejecter) TransformSelect(*nodes.SelectCore) (*nodes.SelectCore, error) {
	return nil, errRejected
}
func (rejecter) TransformInsert(*nodes.InsertStatement) (*nodes.InsertStatement, error) {
	return nil, errRejected
}
func (rejecter) TransformUpdate(*nodes.UpdateStatement) (*nodes.UpdateStatement, error) {
	return nil, errRejected
}
func (rejecter) TransformDelete(*nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	return nil, errRejected
}

// tenantScope appends tenant_id = ? to writes and reads of its table.
type tenantScope struct {
	plugins.BaseTransformer
	table *nodes.Table
	id    int
}

func (ts tenantScope) cond() nodes.Node { return ts.table.Col("tenant_id").Eq(ts.id) }

func (ts tenantScope) TransformSelect(c *nodes.SelectCore) (*nodes.SelectCore, error) {
	c.Wheres = append(c.Wheres, ts.cond())
	return c, nil
}
func (ts tenantScope) TransformInsert(s *nodes.InsertStatement) (*nodes.InsertStatement, error) {
	s.Columns = append(s.Columns, ts.table.Col("tenant_id"))
	for i := range s.Values {
		s.Values[i] = append(s.Values[i], nodes.Bind(ts.id))
	}
	return s, nil
}
func (ts tenantScope) TransformUpdate(s *nodes.UpdateStatement) (*nodes.UpdateStatement, error) {
	s.Wheres = append(s.Wheres, ts.cond())
	return s, nil
}
func (ts tenantScope) TransformDelete(s *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	s.Wheres = append(s.Wheres, ts.cond())
	return s, nil
}
