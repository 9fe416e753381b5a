package managers

import (
	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

// SelectManager provides a fluent API for building SELECT queries.
// It wraps a SelectCore and applies transformer plugins before rendering.
type SelectManager struct {
	treeManager
	Core *nodes.SelectCore
}

// NewSelectManager creates a new SelectManager with the given table as FROM.
// If from is nil, the FROM clause is left unset.
func NewSelectManager(from nodes.Node) *SelectManager {
	return &SelectManager{
		Core: &nodes.SelectCore{From: from},
	}
}

// Select sets the projection list, replacing any existing projections.
func (m *SelectManager) Select(projections ...nodes.Node) *SelectManager {
	m.Core.Projections = projections
	return m
}

// Project is an alias for Select.
func (m *SelectManager) Project(projections ...nodes.Node) *SelectManager {
	return m.Select(projections...)
}

// Distinct enables or disables the DISTINCT modifier on the SELECT clause.
func (m *SelectManager) Distinct(on ...bool) *SelectManager {
	m.Core.Distinct = len(on) == 0 || on[0]
	return m
}

// DistinctOn sets the DISTINCT ON columns (PostgreSQL).
func (m *SelectManager) DistinctOn(cols ...nodes.Node) *SelectManager {
	m.Core.DistinctOn = cols
	return m
}

// Where appends one or more conditions to the WHERE clause.
// Multiple calls are combined with AND.
func (m *SelectManager) Where(conditions ...nodes.Node) *SelectManager {
	m.Core.Wheres = append(m.Core.Wheres, conditions...)
	return m
}

// From sets or changes the FROM source.
func (m *SelectManager) From(table nodes.Node) *SelectManager {
	m.Core.From = table
	return m
}

func (m *SelectManager) addJoin(table nodes.Node, jt nodes.JoinType, lateral bool) *nodes.JoinNode {
	join := &nodes.JoinNode{
		Left:    m.Core.From,
		Right:   table,
		Type:    jt,
		Lateral: lateral,
	}
	m.Core.Joins = append(m.Core.Joins, join)
	return join
}

// Join adds a join to the query and returns a JoinContext for specifying
// the ON condition. The default join type is InnerJoin.
func (m *SelectManager) Join(table nodes.Node, joinTypes ...nodes.JoinType) *JoinContext {
	jt := nodes.InnerJoin
	if len(joinTypes) > 0 {
		jt = joinTypes[0]
	}
	return &JoinContext{manager: m, join: m.addJoin(table, jt, false)}
}

// OuterJoin is a convenience for Join with LeftOuterJoin type.
func (m *SelectManager) OuterJoin(table nodes.Node) *JoinContext {
	return m.Join(table, nodes.LeftOuterJoin)
}

// LateralJoin adds a LATERAL join (PostgreSQL). Default join type is InnerJoin.
func (m *SelectManager) LateralJoin(table nodes.Node, joinTypes ...nodes.JoinType) *JoinContext {
	jt := nodes.InnerJoin
	if len(joinTypes) > 0 {
		jt = joinTypes[0]
	}
	return &JoinContext{manager: m, join: m.addJoin(table, jt, true)}
}

// StringJoin adds a raw SQL join fragment.
//
// SECURITY: The raw string is injected verbatim into SQL output.
// Never pass user-controlled input to this method.
func (m *SelectManager) StringJoin(raw string) *SelectManager {
	m.addJoin(nodes.NewSqlLiteral(raw), nodes.StringJoin, false)
	return m
}

// CrossJoin adds a cross join (no ON clause).
func (m *SelectManager) CrossJoin(table nodes.Node) *SelectManager {
	m.addJoin(table, nodes.CrossJoin, false)
	return m
}

// Group appends one or more expressions to the GROUP BY clause.
func (m *SelectManager) Group(columns ...nodes.Node) *SelectManager {
	m.Core.Groups = append(m.Core.Groups, columns...)
	return m
}

// Having appends one or more conditions to the HAVING clause.
func (m *SelectManager) Having(conditions ...nodes.Node) *SelectManager {
	m.Core.Havings = append(m.Core.Havings, conditions...)
	return m
}

// Window appends one or more named window definitions to the WINDOW clause.
func (m *SelectManager) Window(defs ...*nodes.WindowDefinition) *SelectManager {
	m.Core.Windows = append(m.Core.Windows, defs...)
	return m
}

// Order appends to the ORDER BY clause. Pass OrderingNode values
// (e.g., table.Col("name").Desc()).
func (m *SelectManager) Order(orderings ...nodes.Node) *SelectManager {
	m.Core.Orders = append(m.Core.Orders, orderings...)
	return m
}

// Limit sets the LIMIT value. The count is bound, not inlined.
func (m *SelectManager) Limit(n int) *SelectManager {
	m.Core.Limit = nodes.Bind(n)
	return m
}

// Offset sets the OFFSET value.
func (m *SelectManager) Offset(n int) *SelectManager {
	m.Core.Offset = nodes.Bind(n)
	return m
}

// Take is an alias for Limit.
func (m *SelectManager) Take(n int) *SelectManager {
	return m.Limit(n)
}

// ForUpdate requests an exclusive row lock, optionally restricted to the
// given tables.
func (m *SelectManager) ForUpdate(of ...*nodes.Table) *SelectManager {
	lock := nodes.ForUpdate()
	lock.Of = of
	m.Core.Lock = lock
	return m
}

// ForShare requests a shared row lock.
func (m *SelectManager) ForShare(of ...*nodes.Table) *SelectManager {
	lock := nodes.ForShare()
	lock.Of = of
	m.Core.Lock = lock
	return m
}

// SkipLocked adds SKIP LOCKED to the current lock. Without a lock it does
// nothing.
func (m *SelectManager) SkipLocked() *SelectManager {
	if m.Core.Lock != nil {
		m.Core.Lock.Wait = nodes.SkipLocked
	}
	return m
}

// NoWait adds NOWAIT to the current lock. Without a lock it does nothing.
func (m *SelectManager) NoWait() *SelectManager {
	if m.Core.Lock != nil {
		m.Core.Lock.Wait = nodes.NoWait
	}
	return m
}

// Comment sets a query comment (rendered as /* ... */).
// Any occurrence of */ in the text is sanitized to prevent comment breakout.
func (m *SelectManager) Comment(text string) *SelectManager {
	m.Core.Comment = text
	return m
}

// Hint adds an optimizer hint (rendered as /*+ ... */ after SELECT).
func (m *SelectManager) Hint(hint string) *SelectManager {
	m.Core.Hints = append(m.Core.Hints, hint)
	return m
}

// With adds a Common Table Expression.
func (m *SelectManager) With(name string, query nodes.Node, columns ...string) *SelectManager {
	m.Core.CTEs = append(m.Core.CTEs, &nodes.CTENode{Name: name, Query: query, Columns: columns})
	return m
}

// WithRecursive adds a recursive Common Table Expression; the whole
// group then renders as WITH RECURSIVE.
func (m *SelectManager) WithRecursive(name string, query nodes.Node, columns ...string) *SelectManager {
	m.Core.CTEs = append(m.Core.CTEs, &nodes.CTENode{Name: name, Query: query, Columns: columns, Recursive: true})
	return m
}

func (m *SelectManager) setOp(op nodes.SetOpType, other *SelectManager) *nodes.UnionNode {
	return nodes.NewUnion(m.Core).Add(op, other.Core)
}

// Union combines this query with another using UNION. Further parts can
// be chained on the returned node.
func (m *SelectManager) Union(other *SelectManager) *nodes.UnionNode {
	return m.setOp(nodes.Union, other)
}

// UnionAll combines this query with another using UNION ALL.
func (m *SelectManager) UnionAll(other *SelectManager) *nodes.UnionNode {
	return m.setOp(nodes.UnionAll, other)
}

// Intersect combines this query with another using INTERSECT.
func (m *SelectManager) Intersect(other *SelectManager) *nodes.UnionNode {
	return m.setOp(nodes.Intersect, other)
}

// IntersectAll combines this query with another using INTERSECT ALL.
func (m *SelectManager) IntersectAll(other *SelectManager) *nodes.UnionNode {
	return m.setOp(nodes.IntersectAll, other)
}

// Except combines this query with another using EXCEPT.
func (m *SelectManager) Except(other *SelectManager) *nodes.UnionNode {
	return m.setOp(nodes.Except, other)
}

// ExceptAll combines this query with another using EXCEPT ALL.
func (m *SelectManager) ExceptAll(other *SelectManager) *nodes.UnionNode {
	return m.setOp(nodes.ExceptAll, other)
}

// Use registers a transformer plugin to be applied before rendering.
func (m *SelectManager) Use(t plugins.Transformer) *SelectManager {
	m.addTransformer(t)
	return m
}

// Build runs the transformer pipeline over a copy of the core and returns
// the result. The manager's own core is left untouched.
func (m *SelectManager) Build() (*nodes.SelectCore, error) {
	return m.transformers.Select(m.CloneCore())
}

// ToSQL applies all registered transformers and renders the query with
// db. It returns the SQL text and the bind values in placeholder order.
func (m *SelectManager) ToSQL(db *database.DB) (string, []any, error) {
	return render(db, func() (nodes.Node, error) { return m.Build() })
}

// Serialize lets a SelectManager stand in as a subquery. It renders the
// core as is; transformers only run from ToSQL.
func (m *SelectManager) Serialize(s *nodes.Serializer) {
	m.Core.Serialize(s)
}

// As wraps the query's SelectCore in a TableAlias, enabling it to be
// used as a named subquery in FROM or JOIN clauses.
func (m *SelectManager) As(name string) *nodes.TableAlias {
	return &nodes.TableAlias{Relation: m.Core, AliasName: name}
}

// CloneCore returns a shallow copy of the SelectCore so transformers
// don't modify the original.
func (m *SelectManager) CloneCore() *nodes.SelectCore {
	c := *m.Core
	c.Projections = cloneNodes(m.Core.Projections)
	c.Wheres = cloneNodes(m.Core.Wheres)
	c.Joins = append([]*nodes.JoinNode(nil), m.Core.Joins...)
	c.Groups = cloneNodes(m.Core.Groups)
	c.Havings = cloneNodes(m.Core.Havings)
	c.Windows = append([]*nodes.WindowDefinition(nil), m.Core.Windows...)
	c.Orders = cloneNodes(m.Core.Orders)
	c.DistinctOn = cloneNodes(m.Core.DistinctOn)
	c.Hints = append([]string(nil), m.Core.Hints...)
	c.CTEs = cloneCTEs(m.Core.CTEs)
	if m.Core.Lock != nil {
		lock := *m.Core.Lock
		c.Lock = &lock
	}
	return &c
}
