package nodes

// Predications provides comparison methods to types that embed it.
// The self field must be set to the embedding node so that comparisons
// reference the correct left-hand side. Raw Go values passed to these
// methods are bound; Nodes are used as-is.
type Predications struct {
	self Node
}

func (p Predications) compare(op ComparisonOp, val any) *ComparisonNode {
	return NewComparisonNode(p.self, Bind(val), op)
}

// Eq creates an equality comparison: self = val.
func (p Predications) Eq(val any) *ComparisonNode { return p.compare(OpEq, val) }

// NotEq creates an inequality comparison: self <> val.
func (p Predications) NotEq(val any) *ComparisonNode { return p.compare(OpNotEq, val) }

// Gt creates a greater-than comparison: self > val.
func (p Predications) Gt(val any) *ComparisonNode { return p.compare(OpGt, val) }

// GtEq creates a greater-than-or-equal comparison: self >= val.
func (p Predications) GtEq(val any) *ComparisonNode { return p.compare(OpGtEq, val) }

// Lt creates a less-than comparison: self < val.
func (p Predications) Lt(val any) *ComparisonNode { return p.compare(OpLt, val) }

// LtEq creates a less-than-or-equal comparison: self <= val.
func (p Predications) LtEq(val any) *ComparisonNode { return p.compare(OpLtEq, val) }

// Like creates a LIKE comparison: self LIKE val.
func (p Predications) Like(val any) *ComparisonNode { return p.compare(OpLike, val) }

// NotLike creates a NOT LIKE comparison: self NOT LIKE val.
func (p Predications) NotLike(val any) *ComparisonNode { return p.compare(OpNotLike, val) }

// MatchesRegexp creates a regexp match using the dialect's operator.
func (p Predications) MatchesRegexp(val any) *ComparisonNode { return p.compare(OpRegexp, val) }

// DoesNotMatchRegexp creates a negated regexp match.
func (p Predications) DoesNotMatchRegexp(val any) *ComparisonNode {
	return p.compare(OpNotRegexp, val)
}

// IsDistinctFrom creates an IS DISTINCT FROM comparison.
func (p Predications) IsDistinctFrom(val any) *ComparisonNode {
	return p.compare(OpDistinctFrom, val)
}

// IsNotDistinctFrom creates an IS NOT DISTINCT FROM comparison.
func (p Predications) IsNotDistinctFrom(val any) *ComparisonNode {
	return p.compare(OpNotDistinctFrom, val)
}

// CaseSensitiveEq creates an equality that ignores collation folding.
func (p Predications) CaseSensitiveEq(val any) *ComparisonNode {
	return p.compare(OpCaseSensitiveEq, val)
}

// CaseInsensitiveEq creates an equality that folds case on both sides.
func (p Predications) CaseInsensitiveEq(val any) *ComparisonNode {
	return p.compare(OpCaseInsensitiveEq, val)
}

// Contains creates an array/JSONB containment operator: self @> val.
func (p Predications) Contains(val any) *ComparisonNode { return p.compare(OpContains, val) }

// Overlaps creates an array overlap operator: self && val.
func (p Predications) Overlaps(val any) *ComparisonNode { return p.compare(OpOverlaps, val) }

func (p Predications) in(vals []any, negate bool) *InNode {
	wrapped := make([]Node, len(vals))
	for i, v := range vals {
		wrapped[i] = Bind(v)
	}
	n := &InNode{Expr: p.self, Vals: wrapped, Negate: negate}
	n.self = n
	return n
}

// In creates an IN predicate: self IN (vals...).
func (p Predications) In(vals ...any) *InNode { return p.in(vals, false) }

// NotIn creates a NOT IN predicate: self NOT IN (vals...).
func (p Predications) NotIn(vals ...any) *InNode { return p.in(vals, true) }

// InQuery creates self IN (subquery).
func (p Predications) InQuery(subquery Node) *InNode {
	n := &InNode{Expr: p.self, Vals: []Node{subquery}}
	n.self = n
	return n
}

func (p Predications) between(low, high any, negate bool) *BetweenNode {
	n := &BetweenNode{Expr: p.self, Low: Bind(low), High: Bind(high), Negate: negate}
	n.self = n
	return n
}

// Between creates a BETWEEN predicate: self BETWEEN low AND high.
func (p Predications) Between(low, high any) *BetweenNode { return p.between(low, high, false) }

// NotBetween creates a NOT BETWEEN predicate: self NOT BETWEEN low AND high.
func (p Predications) NotBetween(low, high any) *BetweenNode { return p.between(low, high, true) }

// IsNull creates an IS NULL predicate.
func (p Predications) IsNull() *UnaryNode { return NewUnaryNode(p.self, OpIsNull) }

// IsNotNull creates an IS NOT NULL predicate.
func (p Predications) IsNotNull() *UnaryNode { return NewUnaryNode(p.self, OpIsNotNull) }

// EqAny returns col = v1 OR col = v2 OR ... wrapped in a GroupingNode.
func (p Predications) EqAny(vals ...any) *GroupingNode {
	return groupOr(p.comparisons(OpEq, vals))
}

// EqAll returns col = v1 AND col = v2 AND ...
func (p Predications) EqAll(vals ...any) Node {
	return chainAnd(p.comparisons(OpEq, vals))
}

// MatchesAny returns col LIKE p1 OR col LIKE p2 OR ... wrapped in a GroupingNode.
func (p Predications) MatchesAny(vals ...any) *GroupingNode {
	return groupOr(p.comparisons(OpLike, vals))
}

// MatchesAll returns col LIKE p1 AND col LIKE p2 AND ...
func (p Predications) MatchesAll(vals ...any) Node {
	return chainAnd(p.comparisons(OpLike, vals))
}

// InAny returns col IN (set1) OR col IN (set2) OR ... wrapped in a GroupingNode.
// Each argument is a []any slice representing one IN set.
func (p Predications) InAny(sets ...[]any) *GroupingNode {
	return groupOr(p.inSets(sets))
}

// InAll returns col IN (set1) AND col IN (set2) AND ...
func (p Predications) InAll(sets ...[]any) Node {
	return chainAnd(p.inSets(sets))
}

func (p Predications) comparisons(op ComparisonOp, vals []any) []Node {
	out := make([]Node, len(vals))
	for i, v := range vals {
		out[i] = p.compare(op, v)
	}
	return out
}

func (p Predications) inSets(sets [][]any) []Node {
	out := make([]Node, len(sets))
	for i, set := range sets {
		out[i] = p.In(set...)
	}
	return out
}

// groupOr chains nodes with OR and wraps in a GroupingNode.
// Returns nil if nds is empty.
func groupOr(nds []Node) *GroupingNode {
	if len(nds) == 0 {
		return nil
	}
	result := nds[0]
	for _, n := range nds[1:] {
		or := &OrNode{Left: result, Right: n}
		or.self = or
		result = or
	}
	return NewGrouping(result)
}

// chainAnd chains nodes with AND.
// Returns nil if nds is empty.
func chainAnd(nds []Node) Node {
	if len(nds) == 0 {
		return nil
	}
	result := nds[0]
	for _, n := range nds[1:] {
		and := &AndNode{Left: result, Right: n}
		and.self = and
		result = and
	}
	return result
}

// As creates an AliasNode wrapping self with the given alias name.
func (p Predications) As(name string) *AliasNode {
	return NewAliasNode(p.self, name)
}

// Asc creates an ascending ordering node.
func (p Predications) Asc() *OrderingNode {
	return NewOrdering(p.self, Asc)
}

// Desc creates a descending ordering node.
func (p Predications) Desc() *OrderingNode {
	return NewOrdering(p.self, Desc)
}
