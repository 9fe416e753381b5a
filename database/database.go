// Package database is the façade the builder layer renders through. A DB
// pairs a dialect with the logger that receives degradation warnings.
package database

import (
	"log/slog"

	"github.com/bawdo/sqlcraft/dialect"
	"github.com/bawdo/sqlcraft/nodes"
)

// DB renders node trees for one dialect. It holds no connection and is
// safe for concurrent use; every render gets its own serializer.
type DB struct {
	dialect *dialect.Dialect
	logger  *slog.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger for unsupported-feature warnings. A nil
// logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(db *DB) {
		if l != nil {
			db.logger = l
		}
	}
}

// New creates a DB for d.
func New(d *dialect.Dialect, opts ...Option) *DB {
	if d == nil {
		panic("sqlcraft: database requires a dialect")
	}
	db := &DB{dialect: d, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Dialect returns the dialect statements are rendered for.
func (db *DB) Dialect() *dialect.Dialect { return db.dialect }

// Logger returns the warning logger.
func (db *DB) Logger() *slog.Logger { return db.logger }

// Serialize renders root and returns the SQL text with its bind values in
// placeholder order.
func (db *DB) Serialize(root nodes.Node) (string, []any) {
	return nodes.Render(db.dialect, db.logger, root)
}

// Query is a rendered statement ready for database/sql.
type Query struct {
	SQL  string
	Args []any
}

// Render is Serialize packed into a Query.
func (db *DB) Render(root nodes.Node) Query {
	sql, args := db.Serialize(root)
	return Query{SQL: sql, Args: args}
}

// Empty reports whether the statement rendered to nothing, as a DDL node
// does when the dialect has no use for it.
func (q Query) Empty() bool { return q.SQL == "" }
