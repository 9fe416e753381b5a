package dialect

import "strings"

// EnumSyntax describes how a dialect spells enumerated column types.
type EnumSyntax int

const (
	// EnumUnsupported renders enum columns as TEXT and omits CREATE TYPE.
	EnumUnsupported EnumSyntax = iota
	// EnumInline lists labels in the column type: ENUM('a', 'b') (MySQL).
	EnumInline
	// EnumNamedType uses a standalone CREATE TYPE ... AS ENUM (PostgreSQL).
	EnumNamedType
)

// String returns the display name for this enum syntax.
func (s EnumSyntax) String() string {
	switch s {
	case EnumInline:
		return "inline"
	case EnumNamedType:
		return "named"
	default:
		return "unsupported"
	}
}

// UpsertSyntax describes how a dialect resolves INSERT conflicts.
type UpsertSyntax int

const (
	// UpsertUnsupported drops conflict clauses entirely.
	UpsertUnsupported UpsertSyntax = iota
	// UpsertOnConflict is the standard ON CONFLICT (...) DO ... form.
	UpsertOnConflict
	// UpsertOnDuplicateKey is MySQL's ON DUPLICATE KEY UPDATE / INSERT IGNORE.
	UpsertOnDuplicateKey
)

// String returns the display name for this upsert syntax.
func (s UpsertSyntax) String() string {
	switch s {
	case UpsertOnConflict:
		return "on_conflict"
	case UpsertOnDuplicateKey:
		return "on_duplicate_key"
	default:
		return "unsupported"
	}
}

// ColumnTypeChange describes how ALTER TABLE changes a column's type.
type ColumnTypeChange int

const (
	// ColumnTypeUnsupported means the column type cannot be altered in place.
	ColumnTypeUnsupported ColumnTypeChange = iota
	// ColumnTypeAlter renders ALTER COLUMN "c" TYPE t (PostgreSQL).
	ColumnTypeAlter
	// ColumnTypeModify renders MODIFY COLUMN <full definition> (MySQL).
	ColumnTypeModify
)

// Keyword returns the clause keyword that introduces a type change.
func (c ColumnTypeChange) Keyword() string {
	switch c {
	case ColumnTypeAlter:
		return "ALTER COLUMN"
	case ColumnTypeModify:
		return "MODIFY COLUMN"
	default:
		return ""
	}
}

// AlterTableSyntax describes the ALTER TABLE capabilities of a dialect.
// The zero value supports neither type changes nor batching.
type AlterTableSyntax struct {
	ColumnType ColumnTypeChange
	// Batch permits several comma-separated alterations in one statement.
	Batch bool
}

// LockStrength selects the row-locking clause requested by a SELECT.
type LockStrength int

const (
	LockShared LockStrength = iota
	LockExclusive
)

// CaseFolding selects how case-sensitive and case-insensitive equality
// are spelled.
type CaseFolding int

const (
	// CaseFoldLower compares LOWER(a) = LOWER(b) for insensitive matches.
	CaseFoldLower CaseFolding = iota
	// CaseFoldBinary uses = BINARY for sensitive matches (MySQL).
	CaseFoldBinary
	// CaseFoldCollate appends COLLATE BINARY / COLLATE NOCASE (SQLite).
	CaseFoldCollate
)

// TriggerFeatures is a set of trigger syntax capabilities. A single flag is
// itself a one-element set, so Has accepts either.
type TriggerFeatures uint16

const (
	// TriggerRequiresForEachRow always emits FOR EACH ROW.
	TriggerRequiresForEachRow TriggerFeatures = 1 << iota
	// TriggerInlineBody allows BEGIN ... END bodies instead of a procedure call.
	TriggerInlineBody
	// TriggerCondition allows a WHEN condition.
	TriggerCondition
	// TriggerConditionParens requires the WHEN condition to be parenthesised.
	TriggerConditionParens
	// TriggerDefiner allows DEFINER = user.
	TriggerDefiner
	// TriggerForEachChoice allows choosing FOR EACH ROW or FOR EACH STATEMENT.
	TriggerForEachChoice
	// TriggerOrdering allows FOLLOWS / PRECEDES other_trigger.
	TriggerOrdering
	// TriggerColumnFilter allows UPDATE OF col, ...
	TriggerColumnFilter
	// TriggerConstraint allows CONSTRAINT TRIGGER with FROM and deferral.
	TriggerConstraint
	// TriggerIfNotExists allows CREATE TRIGGER IF NOT EXISTS.
	TriggerIfNotExists
	// TriggerDropTableName requires DROP TRIGGER name ON table.
	TriggerDropTableName
	// TriggerDropCascade allows DROP TRIGGER ... CASCADE | RESTRICT.
	TriggerDropCascade
)

var triggerFeatureNames = []struct {
	flag TriggerFeatures
	name string
}{
	{TriggerRequiresForEachRow, "requires_for_each_row"},
	{TriggerInlineBody, "inline_body"},
	{TriggerCondition, "condition"},
	{TriggerConditionParens, "condition_parens"},
	{TriggerDefiner, "definer"},
	{TriggerForEachChoice, "for_each_choice"},
	{TriggerOrdering, "ordering"},
	{TriggerColumnFilter, "column_filter"},
	{TriggerConstraint, "constraint"},
	{TriggerIfNotExists, "if_not_exists"},
	{TriggerDropTableName, "drop_table_name"},
	{TriggerDropCascade, "drop_cascade"},
}

// Has reports whether every flag in f is present in s.
func (s TriggerFeatures) Has(f TriggerFeatures) bool {
	return s&f == f
}

// With returns a copy of s with the given flags added.
func (s TriggerFeatures) With(fs ...TriggerFeatures) TriggerFeatures {
	for _, f := range fs {
		s |= f
	}
	return s
}

// Without returns a copy of s with the given flags removed.
func (s TriggerFeatures) Without(fs ...TriggerFeatures) TriggerFeatures {
	for _, f := range fs {
		s &^= f
	}
	return s
}

// String lists the set's flag names separated by "|".
func (s TriggerFeatures) String() string {
	var names []string
	for _, f := range triggerFeatureNames {
		if s.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseTriggerFeature maps a flag name (as printed by String) to its value.
func ParseTriggerFeature(name string) (TriggerFeatures, bool) {
	for _, f := range triggerFeatureNames {
		if f.name == name {
			return f.flag, true
		}
	}
	return 0, false
}

// UnionFeatures is a set of compound-query capabilities.
type UnionFeatures uint16

const (
	Union UnionFeatures = 1 << iota
	UnionAll
	Intersect
	IntersectAll
	Except
	ExceptAll
	// UnionExplicitDistinct allows spelling UNION DISTINCT etc.
	UnionExplicitDistinct
	// UnionParenthesized wraps every member query in parentheses.
	UnionParenthesized
)

var unionFeatureNames = []struct {
	flag UnionFeatures
	name string
}{
	{Union, "union"},
	{UnionAll, "union_all"},
	{Intersect, "intersect"},
	{IntersectAll, "intersect_all"},
	{Except, "except"},
	{ExceptAll, "except_all"},
	{UnionExplicitDistinct, "explicit_distinct"},
	{UnionParenthesized, "parenthesized"},
}

// Has reports whether every flag in f is present in s.
func (s UnionFeatures) Has(f UnionFeatures) bool {
	return s&f == f
}

// With returns a copy of s with the given flags added.
func (s UnionFeatures) With(fs ...UnionFeatures) UnionFeatures {
	for _, f := range fs {
		s |= f
	}
	return s
}

// Without returns a copy of s with the given flags removed.
func (s UnionFeatures) Without(fs ...UnionFeatures) UnionFeatures {
	for _, f := range fs {
		s &^= f
	}
	return s
}

// String lists the set's flag names separated by "|".
func (s UnionFeatures) String() string {
	var names []string
	for _, f := range unionFeatureNames {
		if s.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseUnionFeature maps a flag name (as printed by String) to its value.
func ParseUnionFeature(name string) (UnionFeatures, bool) {
	for _, f := range unionFeatureNames {
		if f.name == name {
			return f.flag, true
		}
	}
	return 0, false
}
