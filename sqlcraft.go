// Package sqlcraft renders SQL expression trees to text and ordered bind
// values for PostgreSQL, MySQL and SQLite.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/sqlcraft/managers (query builders)
//   - github.com/bawdo/sqlcraft/nodes (expression tree and serializer)
//   - github.com/bawdo/sqlcraft/dialect (dialect descriptors)
//   - github.com/bawdo/sqlcraft/database (rendering façade)
//   - github.com/bawdo/sqlcraft/plugins (query transformers)
package sqlcraft

import (
	"log/slog"

	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/dialect"
	"github.com/bawdo/sqlcraft/managers"
	"github.com/bawdo/sqlcraft/nodes"
)

// --- Manager Types ---

// SelectManager provides a fluent API for building SELECT queries.
type SelectManager = managers.SelectManager

// InsertManager provides a fluent API for building INSERT queries.
type InsertManager = managers.InsertManager

// UpdateManager provides a fluent API for building UPDATE queries.
type UpdateManager = managers.UpdateManager

// DeleteManager provides a fluent API for building DELETE queries.
type DeleteManager = managers.DeleteManager

// --- Manager Constructors ---

// NewSelect creates a new SelectManager with the given table as FROM.
func NewSelect(from nodes.Node) *managers.SelectManager {
	return managers.NewSelectManager(from)
}

// NewInsert creates a new InsertManager for inserting into the given table.
func NewInsert(into nodes.Node) *managers.InsertManager {
	return managers.NewInsertManager(into)
}

// NewUpdate creates a new UpdateManager for updating the given table.
func NewUpdate(table nodes.Node) *managers.UpdateManager {
	return managers.NewUpdateManager(table)
}

// NewDelete creates a new DeleteManager for deleting from the given table.
func NewDelete(from nodes.Node) *managers.DeleteManager {
	return managers.NewDeleteManager(from)
}

// --- Database ---

// DB renders statements for one dialect.
type DB = database.DB

// Open returns a DB for d. A nil logger discards warnings.
func Open(d *dialect.Dialect, logger *slog.Logger) *database.DB {
	return database.New(d, database.WithLogger(logger))
}

// Postgres returns the PostgreSQL dialect.
func Postgres() *dialect.Dialect { return dialect.Postgres() }

// MySQL returns the MySQL dialect.
func MySQL() *dialect.Dialect { return dialect.MySQL() }

// SQLite returns the SQLite dialect.
func SQLite() *dialect.Dialect { return dialect.SQLite() }

// --- Core Node Types ---

// Table represents a SQL table reference.
type Table = nodes.Table

// Attribute represents a column reference (e.g., table.column).
type Attribute = nodes.Attribute

// Node is the interface every tree node implements.
type Node = nodes.Node

// --- Common Node Constructors ---

// NewTable creates a new table reference.
func NewTable(name string) *nodes.Table {
	return nodes.NewTable(name)
}

// Literal creates an inline SQL literal (numbers, strings, booleans).
func Literal(value any) nodes.Node {
	return nodes.Literal(value)
}

// Bind creates a bind placeholder ($1, ?) for value.
func Bind(value any) nodes.Node {
	return nodes.Bind(value)
}

// Star creates an unqualified star (*) for SELECT *.
func Star() *nodes.StarNode {
	return nodes.Star()
}

// --- Aggregate Functions ---

// Count creates a COUNT(expr) aggregate; nil gives COUNT(*).
func Count(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Count(expr)
}

// Sum creates a SUM(expr) aggregate.
func Sum(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Sum(expr)
}

// Avg creates an AVG(expr) aggregate.
func Avg(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Avg(expr)
}

// Min creates a MIN(expr) aggregate.
func Min(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Min(expr)
}

// Max creates a MAX(expr) aggregate.
func Max(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Max(expr)
}

// CountDistinct creates a COUNT(DISTINCT expr) aggregate.
func CountDistinct(expr nodes.Node) *nodes.AggregateNode {
	return nodes.CountDistinct(expr)
}
