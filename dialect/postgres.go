package dialect

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

// postgresMaxIdentifier is NAMEDATALEN - 1.
const postgresMaxIdentifier = 63

// Postgres returns the PostgreSQL dialect.
// Identifiers are quoted with double quotes and binds use $1, $2, ...
func Postgres(opts ...Option) *Dialect {
	base := []Option{
		WithIdentifierQuoter('"', func(s string) string { return pgx.Identifier{s}.Sanitize() }),
		WithPlaceholder(DollarPlaceholder),
		WithAutoIncrement("GENERATED BY DEFAULT AS IDENTITY"),
		WithDropBehavior(),
		WithReturning(),
		WithEnum(EnumNamedType),
		WithUpsert(UpsertOnConflict),
		WithAlterTable(AlterTableSyntax{ColumnType: ColumnTypeAlter, Batch: true}),
		WithUnion(Union | UnionAll | Intersect | IntersectAll | Except | ExceptAll | UnionExplicitDistinct),
		WithCreateTrigger(TriggerCondition | TriggerConditionParens | TriggerForEachChoice |
			TriggerColumnFilter | TriggerConstraint),
		WithDropTrigger(TriggerDropTableName | TriggerDropCascade),
		WithTriggerCheck(checkPostgresTrigger),
		WithLocking("FOR SHARE", "FOR UPDATE"),
		WithPartialIndexes(),
		WithDataTypes(postgresType),
		WithConstraintNames(func(s string) string { return truncateBytes(s, postgresMaxIdentifier) }),
		WithJSONSubpath(postgresJSONSubpath),
	}
	return New("postgres", append(base, opts...)...)
}

func postgresType(t DataType) (string, bool) {
	switch t.Kind {
	case TypeBlob:
		return "BYTEA", true
	case TypeTimestampTZ:
		return "TIMESTAMPTZ", true
	case TypeJSON:
		return "JSONB", true
	}
	return "", false
}

// postgresJSONSubpath renders col #> '{"a","b"}'.
func postgresJSONSubpath(column string, path []string) (string, bool) {
	elems := make([]string, len(path))
	for i, p := range path {
		p = strings.ReplaceAll(p, `\`, `\\`)
		elems[i] = `"` + strings.ReplaceAll(p, `"`, `\"`) + `"`
	}
	lit := "{" + strings.Join(elems, ",") + "}"
	return column + " #> '" + strings.ReplaceAll(lit, "'", "''") + "'", true
}

var (
	errConstraintTiming    = errors.New("constraint triggers must be AFTER triggers")
	errConstraintScope     = errors.New("constraint triggers must be FOR EACH ROW")
	errTruncateScope       = errors.New("TRUNCATE triggers must be FOR EACH STATEMENT")
	errInsteadOfCondition  = errors.New("INSTEAD OF triggers cannot have a WHEN condition")
	errInsteadOfColumns    = errors.New("INSTEAD OF triggers cannot filter on columns")
	errReferencedNotStrict = errors.New("FROM referenced table is only allowed on constraint triggers")
)

func checkPostgresTrigger(s TriggerShape) error {
	if s.Constraint {
		if s.Timing != TriggerAfter {
			return errConstraintTiming
		}
		if s.Scope != ScopeRow {
			return errConstraintScope
		}
	}
	if s.HasReferencedTable && !s.Constraint {
		return errReferencedNotStrict
	}
	if s.HasEvent(TriggerTruncate) && s.Scope == ScopeRow {
		return errTruncateScope
	}
	if s.Timing == TriggerInsteadOf {
		if s.HasCondition {
			return errInsteadOfCondition
		}
		if s.HasColumnFilter {
			return errInsteadOfColumns
		}
	}
	return nil
}
