package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bawdo/sqlcraft/nodes"
)

// tokenize splits input into tokens, respecting single-quoted strings
// and recognising multi-char operators (!=, <>, >=, <=) and punctuation.
func tokenize(input string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]

		if inQuote {
			cur.WriteByte(ch)
			if ch == '\'' {
				if i+1 < len(input) && input[i+1] == '\'' {
					cur.WriteByte('\'')
					i++
				} else {
					inQuote = false
					flush()
				}
			}
			continue
		}

		switch {
		case ch == '\'':
			flush()
			cur.WriteByte(ch)
			inQuote = true
		case ch == '(' || ch == ')' || ch == ',':
			flush()
			tokens = append(tokens, string(ch))
		case (ch == '!' || ch == '<' || ch == '>') && i+1 < len(input) && input[i+1] == '=':
			flush()
			tokens = append(tokens, input[i:i+2])
			i++
		case ch == '<' && i+1 < len(input) && input[i+1] == '>':
			flush()
			tokens = append(tokens, "<>")
			i++
		case ch == '=' || ch == '>' || ch == '<':
			flush()
			tokens = append(tokens, string(ch))
		case ch == ' ' || ch == '\t':
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// parseValue converts a token string to a Go value for binding.
func parseValue(token string) (any, error) {
	switch strings.ToLower(token) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if len(token) >= 2 && strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") {
		return strings.ReplaceAll(token[1:len(token)-1], "''", "'"), nil
	}
	if i, err := strconv.Atoi(token); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("cannot parse value: %s", token)
}

// isIdentifier reports whether token looks like a column reference.
func isIdentifier(token string) bool {
	if token == "" {
		return false
	}
	for i, r := range token {
		switch {
		case r == '_' || r == '.' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// comparisonOp maps a comparison operator token to a nodes.ComparisonOp.
func comparisonOp(token string) (nodes.ComparisonOp, bool) {
	switch strings.ToLower(token) {
	case "=":
		return nodes.OpEq, true
	case "!=", "<>":
		return nodes.OpNotEq, true
	case ">":
		return nodes.OpGt, true
	case ">=":
		return nodes.OpGtEq, true
	case "<":
		return nodes.OpLt, true
	case "<=":
		return nodes.OpLtEq, true
	case "like":
		return nodes.OpLike, true
	case "regexp":
		return nodes.OpRegexp, true
	default:
		return 0, false
	}
}

// parseOperand reads the right-hand side of a comparison: a literal value
// (bound) or a column reference.
func (s *Session) parseOperand(token string) (nodes.Node, error) {
	val, err := parseValue(token)
	if err == nil {
		return nodes.Bind(val), nil
	}
	if isIdentifier(token) && strings.ToLower(token) != "null" {
		return s.resolveColumn(token), nil
	}
	return nil, err
}

// parseCondition parses "col op value", "col is [not] null",
// "col [not] in (v, ...)" and "col between a and b".
func (s *Session) parseCondition(input string) (nodes.Node, error) {
	tokens := tokenize(input)
	if len(tokens) < 2 {
		return nil, errors.New("usage: where <col> <op> <value>")
	}
	if !isIdentifier(tokens[0]) {
		return nil, fmt.Errorf("expected a column, got %q", tokens[0])
	}
	col := s.resolveColumn(tokens[0])
	rest := tokens[1:]

	switch strings.ToLower(rest[0]) {
	case "is":
		switch {
		case len(rest) == 2 && strings.EqualFold(rest[1], "null"):
			return col.IsNull(), nil
		case len(rest) == 3 && strings.EqualFold(rest[1], "not") && strings.EqualFold(rest[2], "null"):
			return col.IsNotNull(), nil
		}
		return nil, errors.New("expected NULL or NOT NULL after IS")
	case "in":
		return parseInCondition(col, rest[1:], false)
	case "between":
		return parseBetweenCondition(col, rest[1:])
	case "not":
		if len(rest) < 2 {
			return nil, errors.New("expected IN or LIKE after NOT")
		}
		switch strings.ToLower(rest[1]) {
		case "in":
			return parseInCondition(col, rest[2:], true)
		case "like":
			if len(rest) != 3 {
				return nil, errors.New("expected a single value after NOT LIKE")
			}
			val, err := parseValue(rest[2])
			if err != nil {
				return nil, err
			}
			return col.NotLike(val), nil
		}
		return nil, fmt.Errorf("expected IN or LIKE after NOT, got %s", rest[1])
	}

	op, ok := comparisonOp(rest[0])
	if !ok {
		return nil, fmt.Errorf("unknown operator: %s", rest[0])
	}
	if len(rest) != 2 {
		return nil, errors.New("expected a single value after the operator")
	}
	right, err := s.parseOperand(rest[1])
	if err != nil {
		return nil, err
	}
	return nodes.NewComparisonNode(col, right, op), nil
}

func parseInCondition(col *nodes.Attribute, tokens []string, negate bool) (nodes.Node, error) {
	var vals []any
	for _, t := range tokens {
		if t == "(" || t == ")" || t == "," {
			continue
		}
		val, err := parseValue(t)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if len(vals) == 0 {
		return nil, errors.New("IN requires at least one value")
	}
	if negate {
		return col.NotIn(vals...), nil
	}
	return col.In(vals...), nil
}

func parseBetweenCondition(col *nodes.Attribute, tokens []string) (nodes.Node, error) {
	if len(tokens) != 3 || !strings.EqualFold(tokens[1], "and") {
		return nil, errors.New("expected: BETWEEN <low> AND <high>")
	}
	low, err := parseValue(tokens[0])
	if err != nil {
		return nil, err
	}
	high, err := parseValue(tokens[2])
	if err != nil {
		return nil, err
	}
	return col.Between(low, high), nil
}

// assignment is one col=value pair from insert/update arguments.
type assignment struct {
	column string
	value  any
}

// parseAssignments parses "a=1 b='x y' c=null".
func parseAssignments(input string) ([]assignment, error) {
	tokens := tokenize(input)
	if len(tokens) == 0 || len(tokens)%3 != 0 {
		return nil, errors.New("expected <col>=<value> pairs")
	}
	out := make([]assignment, 0, len(tokens)/3)
	for i := 0; i < len(tokens); i += 3 {
		col, eq, raw := tokens[i], tokens[i+1], tokens[i+2]
		if eq != "=" || !isIdentifier(col) {
			return nil, fmt.Errorf("expected <col>=<value>, got %s%s%s", col, eq, raw)
		}
		val, err := parseValue(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{column: col, value: val})
	}
	return out, nil
}
