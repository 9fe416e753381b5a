package dialect

import "github.com/bawdo/sqlcraft/internal/quoting"

// SQLite returns the SQLite 3.35+ dialect.
// Identifiers are quoted with double quotes and every bind is "?".
func SQLite(opts ...Option) *Dialect {
	base := []Option{
		WithIdentifierQuoter('"', quoting.DoubleQuote),
		WithPlaceholder(QuestionPlaceholder),
		WithBoolLiteral(func(b bool) string {
			if b {
				return "1"
			}
			return "0"
		}),
		WithAutoIncrement("AUTOINCREMENT"),
		WithReturning(),
		WithUpsert(UpsertOnConflict),
		WithUnion(Union | UnionAll | Intersect | Except),
		WithCreateTrigger(TriggerRequiresForEachRow | TriggerInlineBody | TriggerCondition |
			TriggerColumnFilter | TriggerIfNotExists),
		WithDropTrigger(0),
		WithRegexpOperators("REGEXP", "NOT REGEXP"),
		WithCaseFolding(CaseFoldCollate),
		WithPartialIndexes(),
		WithDataTypes(sqliteType),
		WithJSONSubpath(func(column string, path []string) (string, bool) {
			return "json_extract(" + column + ", " + quoting.StringLiteral(jsonPath(path), '\'', false) + ")", true
		}),
	}
	return New("sqlite", append(base, opts...)...)
}

func sqliteType(t DataType) (string, bool) {
	switch t.Kind {
	case TypeUUID, TypeJSON:
		return "TEXT", true
	case TypeDecimal:
		return "NUMERIC", true
	}
	return "", false
}
