package dialect

import "github.com/bawdo/sqlcraft/internal/quoting"

// mysqlMaxIdentifier is the MySQL identifier limit in characters.
const mysqlMaxIdentifier = 64

// MySQL returns the MySQL 8 dialect.
// Identifiers are quoted with backticks and every bind is "?".
func MySQL(opts ...Option) *Dialect {
	base := []Option{
		WithIdentifierQuoter('`', quoting.Backtick),
		WithBackslashEscapes(),
		WithPlaceholder(QuestionPlaceholder),
		WithAutoIncrement("AUTO_INCREMENT"),
		WithEnum(EnumInline),
		WithUpsert(UpsertOnDuplicateKey),
		WithAlterTable(AlterTableSyntax{ColumnType: ColumnTypeModify, Batch: true}),
		WithUnion(Union | UnionAll | Intersect | IntersectAll | Except | ExceptAll | UnionExplicitDistinct),
		WithCreateTrigger(TriggerRequiresForEachRow | TriggerInlineBody | TriggerDefiner |
			TriggerOrdering | TriggerIfNotExists),
		WithDropTrigger(0),
		WithLocking("FOR SHARE", "FOR UPDATE"),
		WithRegexpOperators("REGEXP", "NOT REGEXP"),
		WithCaseFolding(CaseFoldBinary),
		WithDropIndexOnTable(),
		WithDataTypes(mysqlType),
		WithConstraintNames(func(s string) string { return truncateRunes(s, mysqlMaxIdentifier) }),
		WithJSONSubpath(func(column string, path []string) (string, bool) {
			return "JSON_EXTRACT(" + column + ", " + quoting.StringLiteral(jsonPath(path), '\'', true) + ")", true
		}),
	}
	return New("mysql", append(base, opts...)...)
}

func mysqlType(t DataType) (string, bool) {
	switch t.Kind {
	case TypeDouble:
		return "DOUBLE", true
	case TypeTimestampTZ:
		return "TIMESTAMP", true
	case TypeUUID:
		return "CHAR(36)", true
	}
	return "", false
}
