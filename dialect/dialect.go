// Package dialect describes the SQL syntax supported by one target database.
//
// A Dialect is a read-only value built once with New (or one of the presets)
// and shared by every render. Every capability has a documented default, so
// a dialect assembled from a handful of options still renders baseline SQL:
//
//	d := dialect.New("cockroach",
//	    dialect.WithPlaceholder(dialect.DollarPlaceholder),
//	    dialect.WithReturning(),
//	    dialect.WithUpsert(dialect.UpsertOnConflict),
//	)
//
// Use (*Dialect).With to derive a variant without touching the original.
package dialect

import (
	"strconv"

	"github.com/bawdo/sqlcraft/internal/quoting"
)

// Dialect is the capability descriptor for one target database.
// The zero value is not usable; construct with New.
type Dialect struct {
	name string

	identQuote  byte
	quoteIdent  func(string) string
	stringQuote byte
	backslash   bool

	placeholder func(int) string
	boolLiteral func(bool) string

	autoIncrement string

	ifExists     bool
	dropBehavior bool
	returning    bool
	enum         EnumSyntax
	upsert       UpsertSyntax
	alterTable   AlterTableSyntax
	union        UnionFeatures

	createTrigger TriggerFeatures
	dropTrigger   TriggerFeatures
	triggerCheck  func(TriggerShape) error

	lockShared    string
	lockExclusive string

	regexpMatch    string
	regexpNotMatch string
	caseFolding    CaseFolding

	partialIndex     bool
	dropIndexOnTable bool

	dataType       func(DataType) (string, bool)
	constraintName func(string) string
	jsonSubpath    func(column string, path []string) (string, bool)
}

// Option configures a Dialect at construction time.
type Option func(*Dialect)

// New creates a Dialect with the defaults below, then applies opts in order.
//
//	identifier quote     "
//	string quote         '
//	placeholder          ?
//	booleans             TRUE / FALSE
//	IF [NOT] EXISTS      supported
//	auto-increment       unsupported
//	enum                 unsupported (columns render as TEXT)
//	CASCADE/RESTRICT     unsupported
//	RETURNING            unsupported
//	upsert               unsupported
//	ALTER TABLE          no type changes, no batching
//	set operations       UNION, UNION ALL
//	triggers             no optional clauses
//	row locking          none (clause dropped)
//	regexp               ~ / !~
//	JSON subpaths        unsupported
//	constraint names     unchanged
func New(name string, opts ...Option) *Dialect {
	d := &Dialect{
		name:           name,
		identQuote:     '"',
		stringQuote:    '\'',
		ifExists:       true,
		union:          Union | UnionAll,
		regexpMatch:    "~",
		regexpNotMatch: "!~",
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// With returns a copy of d with opts applied. d itself is left untouched.
func (d *Dialect) With(opts ...Option) *Dialect {
	c := *d
	for _, o := range opts {
		o(&c)
	}
	return &c
}

// --- Options ---

// WithName renames the dialect (useful after With).
func WithName(name string) Option {
	return func(d *Dialect) { d.name = name }
}

// WithIdentifierQuote sets the identifier quote character. Embedded quote
// characters are doubled.
func WithIdentifierQuote(q byte) Option {
	return func(d *Dialect) {
		d.identQuote = q
		d.quoteIdent = nil
	}
}

// WithIdentifierQuoter replaces identifier quoting entirely. q is the
// character reported by IdentifierQuote.
func WithIdentifierQuoter(q byte, fn func(string) string) Option {
	return func(d *Dialect) {
		d.identQuote = q
		d.quoteIdent = fn
	}
}

// WithStringQuote sets the string literal quote character.
func WithStringQuote(q byte) Option {
	return func(d *Dialect) { d.stringQuote = q }
}

// WithBackslashEscapes doubles backslashes inside string literals.
func WithBackslashEscapes() Option {
	return func(d *Dialect) { d.backslash = true }
}

// WithPlaceholder sets the 1-based position to placeholder mapping.
func WithPlaceholder(fn func(int) string) Option {
	return func(d *Dialect) { d.placeholder = fn }
}

// WithBoolLiteral overrides how inline booleans are spelled.
func WithBoolLiteral(fn func(bool) string) Option {
	return func(d *Dialect) { d.boolLiteral = fn }
}

// WithAutoIncrement enables auto-increment columns using clause.
func WithAutoIncrement(clause string) Option {
	return func(d *Dialect) { d.autoIncrement = clause }
}

// WithIfExists toggles IF [NOT] EXISTS support.
func WithIfExists(on bool) Option {
	return func(d *Dialect) { d.ifExists = on }
}

// WithDropBehavior enables CASCADE / RESTRICT on DROP statements.
func WithDropBehavior() Option {
	return func(d *Dialect) { d.dropBehavior = true }
}

// WithReturning enables RETURNING on INSERT, UPDATE and DELETE.
func WithReturning() Option {
	return func(d *Dialect) { d.returning = true }
}

// WithEnum selects the enum syntax.
func WithEnum(s EnumSyntax) Option {
	return func(d *Dialect) { d.enum = s }
}

// WithUpsert selects the conflict-resolution syntax.
func WithUpsert(s UpsertSyntax) Option {
	return func(d *Dialect) { d.upsert = s }
}

// WithAlterTable sets the ALTER TABLE capabilities.
func WithAlterTable(s AlterTableSyntax) Option {
	return func(d *Dialect) { d.alterTable = s }
}

// WithUnion replaces the supported set-operation features.
func WithUnion(f UnionFeatures) Option {
	return func(d *Dialect) { d.union = f }
}

// WithCreateTrigger replaces the CREATE TRIGGER capability set.
func WithCreateTrigger(f TriggerFeatures) Option {
	return func(d *Dialect) { d.createTrigger = f }
}

// WithDropTrigger replaces the DROP TRIGGER capability set.
func WithDropTrigger(f TriggerFeatures) Option {
	return func(d *Dialect) { d.dropTrigger = f }
}

// WithTriggerCheck installs dialect-specific CREATE TRIGGER rules. A non-nil
// error from fn marks the trigger definition as invalid for this dialect.
func WithTriggerCheck(fn func(TriggerShape) error) Option {
	return func(d *Dialect) { d.triggerCheck = fn }
}

// WithLocking sets the row-locking clause text for shared and exclusive
// locks. An empty string drops that clause.
func WithLocking(shared, exclusive string) Option {
	return func(d *Dialect) {
		d.lockShared = shared
		d.lockExclusive = exclusive
	}
}

// WithRegexpOperators sets the match / no-match regexp operators.
func WithRegexpOperators(match, notMatch string) Option {
	return func(d *Dialect) {
		d.regexpMatch = match
		d.regexpNotMatch = notMatch
	}
}

// WithCaseFolding selects how case-(in)sensitive equality is spelled.
func WithCaseFolding(c CaseFolding) Option {
	return func(d *Dialect) { d.caseFolding = c }
}

// WithPartialIndexes enables CREATE INDEX ... WHERE.
func WithPartialIndexes() Option {
	return func(d *Dialect) { d.partialIndex = true }
}

// WithDropIndexOnTable makes DROP INDEX name ON table mandatory.
func WithDropIndexOnTable() Option {
	return func(d *Dialect) { d.dropIndexOnTable = true }
}

// WithDataTypes installs an override for scalar type spelling. Returning
// false falls back to DataType.DefaultSQL.
func WithDataTypes(fn func(DataType) (string, bool)) Option {
	return func(d *Dialect) { d.dataType = fn }
}

// WithConstraintNames installs a constraint name normalizer.
func WithConstraintNames(fn func(string) string) Option {
	return func(d *Dialect) { d.constraintName = fn }
}

// WithJSONSubpath installs the nested JSON access renderer. The column is
// passed already quoted; path is never empty.
func WithJSONSubpath(fn func(column string, path []string) (string, bool)) Option {
	return func(d *Dialect) { d.jsonSubpath = fn }
}

// --- Placeholder styles ---

// QuestionPlaceholder renders every bind as "?".
func QuestionPlaceholder(int) string { return "?" }

// DollarPlaceholder renders binds as $1, $2, ...
func DollarPlaceholder(i int) string { return "$" + strconv.Itoa(i) }

// NumberedQuestionPlaceholder renders binds as ?1, ?2, ... (SQLite).
func NumberedQuestionPlaceholder(i int) string { return "?" + strconv.Itoa(i) }

// --- Queries ---

// Name returns the dialect name used in logs.
func (d *Dialect) Name() string { return d.name }

// IdentifierQuote returns the identifier quote character.
func (d *Dialect) IdentifierQuote() byte { return d.identQuote }

// QuoteIdent quotes a table, column, index, type or constraint name.
func (d *Dialect) QuoteIdent(name string) string {
	if d.quoteIdent != nil {
		return d.quoteIdent(name)
	}
	return quoting.Quote(name, d.identQuote)
}

// StringQuote returns the string literal quote character.
func (d *Dialect) StringQuote() byte { return d.stringQuote }

// QuoteString renders s as an inline string literal.
func (d *Dialect) QuoteString(s string) string {
	return quoting.StringLiteral(s, d.stringQuote, d.backslash)
}

// Placeholder returns the placeholder token for the 1-based bind position.
func (d *Dialect) Placeholder(position int) string {
	if d.placeholder == nil {
		return QuestionPlaceholder(position)
	}
	return d.placeholder(position)
}

// BoolLiteral spells an inline boolean.
func (d *Dialect) BoolLiteral(b bool) string {
	if d.boolLiteral != nil {
		return d.boolLiteral(b)
	}
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// AutoIncrement returns the auto-increment clause and whether it is supported.
func (d *Dialect) AutoIncrement() (string, bool) {
	return d.autoIncrement, d.autoIncrement != ""
}

// SupportsIfExists reports IF [NOT] EXISTS support on DDL.
func (d *Dialect) SupportsIfExists() bool { return d.ifExists }

// SupportsDropBehavior reports CASCADE / RESTRICT support on DROP.
func (d *Dialect) SupportsDropBehavior() bool { return d.dropBehavior }

// SupportsReturning reports RETURNING support.
func (d *Dialect) SupportsReturning() bool { return d.returning }

// Enum returns the enum syntax.
func (d *Dialect) Enum() EnumSyntax { return d.enum }

// Upsert returns the conflict-resolution syntax.
func (d *Dialect) Upsert() UpsertSyntax { return d.upsert }

// AlterTable returns the ALTER TABLE capabilities.
func (d *Dialect) AlterTable() AlterTableSyntax { return d.alterTable }

// Union returns the supported set-operation features.
func (d *Dialect) Union() UnionFeatures { return d.union }

// CreateTrigger returns the CREATE TRIGGER capability set.
func (d *Dialect) CreateTrigger() TriggerFeatures { return d.createTrigger }

// DropTrigger returns the DROP TRIGGER capability set.
func (d *Dialect) DropTrigger() TriggerFeatures { return d.dropTrigger }

// CheckTrigger runs the dialect's trigger rules, if any.
func (d *Dialect) CheckTrigger(s TriggerShape) error {
	if d.triggerCheck == nil {
		return nil
	}
	return d.triggerCheck(s)
}

// LockClause returns the locking clause text for strength, or "" when the
// dialect has no such clause.
func (d *Dialect) LockClause(strength LockStrength) string {
	if strength == LockExclusive {
		return d.lockExclusive
	}
	return d.lockShared
}

// RegexpOperator returns the regexp match operator, negated or not.
func (d *Dialect) RegexpOperator(negated bool) string {
	if negated {
		return d.regexpNotMatch
	}
	return d.regexpMatch
}

// CaseFolding returns the case-(in)sensitive equality strategy.
func (d *Dialect) CaseFolding() CaseFolding { return d.caseFolding }

// SupportsPartialIndexes reports CREATE INDEX ... WHERE support.
func (d *Dialect) SupportsPartialIndexes() bool { return d.partialIndex }

// DropIndexRequiresTable reports whether DROP INDEX needs ON table.
func (d *Dialect) DropIndexRequiresTable() bool { return d.dropIndexOnTable }

// TypeName spells a scalar column type.
func (d *Dialect) TypeName(t DataType) string {
	if d.dataType != nil {
		if s, ok := d.dataType(t); ok {
			return s
		}
	}
	return t.DefaultSQL()
}

// ConstraintName normalizes a constraint name before quoting.
func (d *Dialect) ConstraintName(name string) string {
	if d.constraintName == nil {
		return name
	}
	return d.constraintName(name)
}

// JSONSubpath renders nested JSON access on an already quoted column.
// It reports false when the dialect has no subpath syntax.
func (d *Dialect) JSONSubpath(column string, path []string) (string, bool) {
	if d.jsonSubpath == nil {
		return "", false
	}
	return d.jsonSubpath(column, path)
}
