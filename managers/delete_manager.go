package managers

import (
	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

// DeleteManager provides a fluent API for building DELETE statements.
type DeleteManager struct {
	treeManager
	Statement *nodes.DeleteStatement
}

// NewDeleteManager creates a new DeleteManager targeting the given table.
func NewDeleteManager(from nodes.Node) *DeleteManager {
	return &DeleteManager{
		Statement: &nodes.DeleteStatement{From: from},
	}
}

// Where appends conditions to the WHERE clause.
func (m *DeleteManager) Where(conditions ...nodes.Node) *DeleteManager {
	m.Statement.Wheres = append(m.Statement.Wheres, conditions...)
	return m
}

// With adds a Common Table Expression ahead of DELETE.
func (m *DeleteManager) With(name string, query nodes.Node, columns ...string) *DeleteManager {
	m.Statement.CTEs = append(m.Statement.CTEs, &nodes.CTENode{Name: name, Query: query, Columns: columns})
	return m
}

// Returning sets the RETURNING clause columns.
func (m *DeleteManager) Returning(cols ...nodes.Node) *DeleteManager {
	m.Statement.Returning = cols
	return m
}

// Use registers a transformer plugin.
func (m *DeleteManager) Use(t plugins.Transformer) *DeleteManager {
	m.addTransformer(t)
	return m
}

// Build runs the transformer pipeline over a copy of the statement.
func (m *DeleteManager) Build() (*nodes.DeleteStatement, error) {
	return m.transformers.Delete(m.cloneStatement())
}

// ToSQL applies transformers and renders the statement with db.
func (m *DeleteManager) ToSQL(db *database.DB) (string, []any, error) {
	return render(db, func() (nodes.Node, error) { return m.Build() })
}

func (m *DeleteManager) cloneStatement() *nodes.DeleteStatement {
	stmt := *m.Statement
	stmt.CTEs = cloneCTEs(m.Statement.CTEs)
	stmt.Wheres = cloneNodes(m.Statement.Wheres)
	stmt.Returning = cloneNodes(m.Statement.Returning)
	return &stmt
}
