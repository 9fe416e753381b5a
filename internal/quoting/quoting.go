// Package quoting provides shared identifier and literal quoting utilities.
package quoting

import "strings"

// Quote wraps s in the quote character q, doubling any embedded q.
func Quote(s string, q byte) string {
	qs := string(q)
	return qs + strings.ReplaceAll(s, qs, qs+qs) + qs
}

// DoubleQuote quotes a SQL identifier using double quotes (PostgreSQL, SQLite, ANSI SQL).
// Internal double quotes are escaped by doubling them.
func DoubleQuote(s string) string {
	return Quote(s, '"')
}

// Backtick quotes a SQL identifier using backticks (MySQL).
// Internal backticks are escaped by doubling them.
func Backtick(s string) string {
	return Quote(s, '`')
}

// StringLiteral quotes s as a SQL string literal using q as the quote
// character. When backslash is true, backslashes are doubled as well (MySQL
// treats them as escape characters inside literals).
//
// SECURITY: inline literals are meant for DDL (defaults, enum labels, check
// constraints). Values supplied by users belong in bound parameters.
func StringLiteral(s string, q byte, backslash bool) string {
	if backslash {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return Quote(s, q)
}
