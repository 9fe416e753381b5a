package dialect

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// jsonPath builds a $."key"[0] style path for JSON_EXTRACT-like functions.
// Segments made only of digits are array indexes.
func jsonPath(path []string) string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, p := range path {
		if _, err := strconv.Atoi(p); err == nil && p != "" && p[0] != '-' {
			sb.WriteString("[" + p + "]")
			continue
		}
		sb.WriteString(`."` + strings.ReplaceAll(p, `"`, `\"`) + `"`)
	}
	return sb.String()
}
