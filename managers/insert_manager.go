package managers

import (
	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

// InsertManager provides a fluent API for building INSERT statements.
type InsertManager struct {
	treeManager
	Statement *nodes.InsertStatement
}

// NewInsertManager creates a new InsertManager targeting the given table.
func NewInsertManager(into nodes.Node) *InsertManager {
	return &InsertManager{
		Statement: &nodes.InsertStatement{Into: into},
	}
}

// Columns sets the column list for the INSERT statement.
func (m *InsertManager) Columns(cols ...nodes.Node) *InsertManager {
	m.Statement.Columns = cols
	return m
}

// Values appends a row of values to the INSERT statement.
// Each call to Values adds one row. Raw Go values are bound; Nodes
// (nodes.Default(), expressions) pass through.
func (m *InsertManager) Values(vals ...any) *InsertManager {
	row := make([]nodes.Node, len(vals))
	for i, v := range vals {
		row[i] = nodes.Bind(v)
	}
	m.Statement.Values = append(m.Statement.Values, row)
	return m
}

// FromSelect sets a SELECT as the source of rows. Setting it together
// with Values is a contract violation reported at render time.
func (m *InsertManager) FromSelect(sel *SelectManager) *InsertManager {
	m.Statement.Select = sel.Core
	return m
}

// With adds a Common Table Expression ahead of INSERT.
func (m *InsertManager) With(name string, query nodes.Node, columns ...string) *InsertManager {
	m.Statement.CTEs = append(m.Statement.CTEs, &nodes.CTENode{Name: name, Query: query, Columns: columns})
	return m
}

// Returning sets the RETURNING clause columns.
func (m *InsertManager) Returning(cols ...nodes.Node) *InsertManager {
	m.Statement.Returning = cols
	return m
}

// OnConflict begins a conflict strategy targeting the given columns.
// Returns an OnConflictContext for specifying the action.
func (m *InsertManager) OnConflict(cols ...nodes.Node) *OnConflictContext {
	oc := &nodes.OnConflictNode{Columns: cols}
	m.Statement.OnConflict = oc
	return &OnConflictContext{manager: m, node: oc}
}

// OnConstraint begins a conflict strategy targeting a named constraint.
func (m *InsertManager) OnConstraint(name string) *OnConflictContext {
	oc := &nodes.OnConflictNode{Constraint: name}
	m.Statement.OnConflict = oc
	return &OnConflictContext{manager: m, node: oc}
}

// Use registers a transformer plugin.
func (m *InsertManager) Use(t plugins.Transformer) *InsertManager {
	m.addTransformer(t)
	return m
}

// Build runs the transformer pipeline over a copy of the statement.
func (m *InsertManager) Build() (*nodes.InsertStatement, error) {
	return m.transformers.Insert(m.cloneStatement())
}

// ToSQL applies transformers and renders the statement with db.
func (m *InsertManager) ToSQL(db *database.DB) (string, []any, error) {
	return render(db, func() (nodes.Node, error) { return m.Build() })
}

func (m *InsertManager) cloneStatement() *nodes.InsertStatement {
	stmt := *m.Statement
	stmt.CTEs = cloneCTEs(m.Statement.CTEs)
	stmt.Columns = cloneNodes(m.Statement.Columns)
	if m.Statement.Values != nil {
		stmt.Values = make([][]nodes.Node, len(m.Statement.Values))
		for i, row := range m.Statement.Values {
			stmt.Values[i] = cloneNodes(row)
		}
	}
	stmt.Returning = cloneNodes(m.Statement.Returning)
	return &stmt
}

// OnConflictContext guides conflict clause construction.
type OnConflictContext struct {
	manager *InsertManager
	node    *nodes.OnConflictNode
}

// DoNothing ignores conflicting rows and returns the InsertManager.
func (c *OnConflictContext) DoNothing() *InsertManager {
	c.node.Action = nodes.DoNothing
	return c.manager
}

// DoUpdate updates the conflicting row with the given assignments.
// Returns an OnConflictUpdateContext for an optional WHERE clause.
func (c *OnConflictContext) DoUpdate(assignments ...*nodes.AssignmentNode) *OnConflictUpdateContext {
	c.node.Action = nodes.DoUpdate
	c.node.Assignments = assignments
	return &OnConflictUpdateContext{manager: c.manager, node: c.node}
}

// OnConflictUpdateContext allows adding a WHERE to DO UPDATE.
type OnConflictUpdateContext struct {
	manager *InsertManager
	node    *nodes.OnConflictNode
}

// Where adds conditions to the DO UPDATE clause.
func (c *OnConflictUpdateContext) Where(conditions ...nodes.Node) *InsertManager {
	c.node.Wheres = conditions
	return c.manager
}

// Done returns the InsertManager without adding a condition.
func (c *OnConflictUpdateContext) Done() *InsertManager {
	return c.manager
}
