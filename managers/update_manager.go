package managers

import (
	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

// UpdateManager provides a fluent API for building UPDATE statements.
type UpdateManager struct {
	treeManager
	Statement *nodes.UpdateStatement
}

// NewUpdateManager creates a new UpdateManager targeting the given table.
func NewUpdateManager(table nodes.Node) *UpdateManager {
	return &UpdateManager{
		Statement: &nodes.UpdateStatement{Table: table},
	}
}

// Set adds a column assignment to the SET clause.
// val can be a raw Go value (bound) or a Node.
func (m *UpdateManager) Set(col nodes.Node, val any) *UpdateManager {
	m.Statement.Assignments = append(m.Statement.Assignments, nodes.Assign(col, val))
	return m
}

// Where appends conditions to the WHERE clause.
func (m *UpdateManager) Where(conditions ...nodes.Node) *UpdateManager {
	m.Statement.Wheres = append(m.Statement.Wheres, conditions...)
	return m
}

// With adds a Common Table Expression ahead of UPDATE.
func (m *UpdateManager) With(name string, query nodes.Node, columns ...string) *UpdateManager {
	m.Statement.CTEs = append(m.Statement.CTEs, &nodes.CTENode{Name: name, Query: query, Columns: columns})
	return m
}

// Returning sets the RETURNING clause columns.
func (m *UpdateManager) Returning(cols ...nodes.Node) *UpdateManager {
	m.Statement.Returning = cols
	return m
}

// Use registers a transformer plugin.
func (m *UpdateManager) Use(t plugins.Transformer) *UpdateManager {
	m.addTransformer(t)
	return m
}

// Build runs the transformer pipeline over a copy of the statement.
func (m *UpdateManager) Build() (*nodes.UpdateStatement, error) {
	return m.transformers.Update(m.cloneStatement())
}

// ToSQL applies transformers and renders the statement with db.
func (m *UpdateManager) ToSQL(db *database.DB) (string, []any, error) {
	return render(db, func() (nodes.Node, error) { return m.Build() })
}

func (m *UpdateManager) cloneStatement() *nodes.UpdateStatement {
	stmt := *m.Statement
	stmt.CTEs = cloneCTEs(m.Statement.CTEs)
	stmt.Assignments = append([]*nodes.AssignmentNode(nil), m.Statement.Assignments...)
	stmt.Wheres = cloneNodes(m.Statement.Wheres)
	stmt.Returning = cloneNodes(m.Statement.Returning)
	return &stmt
}
