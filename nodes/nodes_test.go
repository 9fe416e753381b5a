package nodes

import (
	"testing"

	"github.com/bawdo/sqlcraft/dialect"
)

func render(n Node) (string, []any) {
	return Render(dialect.New("standard"), nil, n)
}

// --- Table / Attribute creation ---

func TestTableCreatesAttributes(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	col := users.Col("id")

	if col.Name != "id" {
		t.Errorf("expected col name %q, got %q", "id", col.Name)
	}
	if col.Relation != users {
		t.Error("expected attribute relation to be the users table")
	}
}

func TestTableAliasCreatesAttributes(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	u := users.Alias("u")
	col := u.Col("name")

	if u.Relation != users {
		t.Error("expected alias to reference the original table")
	}
	if col.Relation != u {
		t.Error("expected attribute relation to be the table alias")
	}
}

func TestColumnIsUnqualified(t *testing.T) {
	t.Parallel()
	if Column("id").Relation != nil {
		t.Error("expected bare column to have no relation")
	}
	qualified := NewTable("users").Col("id")
	bare := qualified.Unqualified()
	if bare.Relation != nil || bare.Name != "id" {
		t.Errorf("expected unqualified id, got %+v", bare)
	}
	if qualified.Relation == nil {
		t.Error("Unqualified must not modify the receiver")
	}
}

// --- Bind and Literal wrapping ---

func TestBindWrapsRawValues(t *testing.T) {
	t.Parallel()
	b, ok := Bind(42).(*BindParamNode)
	if !ok {
		t.Fatalf("expected *BindParamNode, got %T", Bind(42))
	}
	if b.Value != 42 {
		t.Errorf("expected value 42, got %v", b.Value)
	}
}

func TestBindAndLiteralPassThroughNodes(t *testing.T) {
	t.Parallel()
	attr := NewAttribute(NewTable("t"), "col")
	if Bind(attr) != Node(attr) {
		t.Error("expected Bind to pass through an existing Node")
	}
	if Literal(attr) != Node(attr) {
		t.Error("expected Literal to pass through an existing Node")
	}
}

func TestLiteralSetsSelfPointers(t *testing.T) {
	t.Parallel()
	lit := Literal(42).(*LiteralNode)

	cmp := lit.Eq(10)
	if cmp.Left != lit {
		t.Error("expected Left to be the literal node")
	}
	if lit.Eq(10).And(Column("x").Eq(1)) == nil {
		t.Error("expected And to produce a non-nil node")
	}
}

// --- Predications ---

func TestEqBindsRightOperand(t *testing.T) {
	t.Parallel()
	col := NewTable("users").Col("name")
	cmp := col.Eq("Alice")

	if cmp.Op != OpEq {
		t.Errorf("expected OpEq, got %d", cmp.Op)
	}
	if cmp.Left != col {
		t.Error("expected left to be the attribute")
	}
	right, ok := cmp.Right.(*BindParamNode)
	if !ok {
		t.Fatalf("expected right to be *BindParamNode, got %T", cmp.Right)
	}
	if right.Value != "Alice" {
		t.Errorf("expected right value %q, got %v", "Alice", right.Value)
	}
}

func TestComparisons(t *testing.T) {
	t.Parallel()
	col := NewTable("t").Col("x")

	tests := []struct {
		name string
		node *ComparisonNode
		want ComparisonOp
	}{
		{"NotEq", col.NotEq(1), OpNotEq},
		{"Gt", col.Gt(10), OpGt},
		{"GtEq", col.GtEq(10), OpGtEq},
		{"Lt", col.Lt(5), OpLt},
		{"LtEq", col.LtEq(5), OpLtEq},
		{"Like", col.Like("%foo%"), OpLike},
		{"NotLike", col.NotLike("%bar%"), OpNotLike},
		{"MatchesRegexp", col.MatchesRegexp("^A.*"), OpRegexp},
		{"DoesNotMatchRegexp", col.DoesNotMatchRegexp("^A.*"), OpNotRegexp},
		{"IsDistinctFrom", col.IsDistinctFrom(nil), OpDistinctFrom},
		{"IsNotDistinctFrom", col.IsNotDistinctFrom(42), OpNotDistinctFrom},
		{"CaseSensitiveEq", col.CaseSensitiveEq("Alice"), OpCaseSensitiveEq},
		{"CaseInsensitiveEq", col.CaseInsensitiveEq("alice"), OpCaseInsensitiveEq},
		{"Contains", col.Contains("{1,2}"), OpContains},
		{"Overlaps", col.Overlaps("{3,4}"), OpOverlaps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.node.Op != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tt.node.Op)
			}
		})
	}
}

func TestNodeToNodePredicate(t *testing.T) {
	t.Parallel()
	cmp := NewTable("users").Col("id").Eq(NewTable("posts").Col("author_id"))

	if _, ok := cmp.Right.(*Attribute); !ok {
		t.Errorf("expected right to be *Attribute, got %T", cmp.Right)
	}
}

func TestInAndBetween(t *testing.T) {
	t.Parallel()
	col := NewTable("t").Col("status")

	in := col.In("active", "pending")
	if in.Negate || len(in.Vals) != 2 || in.Expr != col {
		t.Errorf("unexpected IN node: %+v", in)
	}
	if !col.NotIn("deleted").Negate {
		t.Error("expected NotIn to be negated")
	}

	b := NewTable("t").Col("age").NotBetween(18, 65)
	if !b.Negate {
		t.Error("expected NotBetween to be negated")
	}
	if low, ok := b.Low.(*BindParamNode); !ok || low.Value != 18 {
		t.Errorf("expected low bind 18, got %#v", b.Low)
	}
}

// --- Combinators ---

func TestOrWrapsInGrouping(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	cond1 := users.Col("role").Eq("admin")
	cond2 := users.Col("role").Eq("moderator")
	grouped := cond1.Or(cond2)

	or, ok := grouped.Expr.(*OrNode)
	if !ok {
		t.Fatalf("expected GroupingNode.Expr to be *OrNode, got %T", grouped.Expr)
	}
	if or.Left != cond1 || or.Right != cond2 {
		t.Error("expected or to hold both conditions in order")
	}
}

func TestPackageAndOrEmpty(t *testing.T) {
	t.Parallel()
	if And() != nil {
		t.Error("expected And() to be nil")
	}
	if Or() != nil {
		t.Error("expected Or() to be nil")
	}
	c := Column("a").Eq(1)
	if And(c) != Node(c) {
		t.Error("expected And with one condition to return it unchanged")
	}
}

func TestEqAnyEmpty(t *testing.T) {
	t.Parallel()
	if g := Column("x").EqAny(); g != nil {
		t.Errorf("expected nil grouping for no values, got %#v", g)
	}
	if Column("x").InAll() != nil {
		t.Error("expected nil for InAll with no sets")
	}
}

// --- Arithmetic ---

func TestArithmeticOperations(t *testing.T) {
	t.Parallel()
	col := NewTable("t").Col("x")
	tests := []struct {
		name string
		node *InfixNode
		want InfixOp
	}{
		{"Plus", col.Plus(1), OpPlus},
		{"Minus", col.Minus(1), OpMinus},
		{"Multiply", col.Multiply(2), OpMultiply},
		{"Divide", col.Divide(2), OpDivide},
		{"BitwiseAnd", col.BitwiseAnd(3), OpBitwiseAnd},
		{"BitwiseOr", col.BitwiseOr(3), OpBitwiseOr},
		{"BitwiseXor", col.BitwiseXor(3), OpBitwiseXor},
		{"ShiftLeft", col.ShiftLeft(1), OpShiftLeft},
		{"ShiftRight", col.ShiftRight(1), OpShiftRight},
		{"Concat", col.Concat("!"), OpConcat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.node.Op != tt.want {
				t.Errorf("expected %v, got %v", tt.want, tt.node.Op)
			}
			if tt.node.Left != col {
				t.Error("expected left to be the attribute")
			}
		})
	}
}

func TestNestedArithmeticIsParenthesized(t *testing.T) {
	t.Parallel()
	col := Column("x")
	sql, binds := render(col.Plus(1).Multiply(2))
	if sql != `("x" + ?) * ?` {
		t.Errorf("got %s", sql)
	}
	if len(binds) != 2 {
		t.Errorf("expected 2 binds, got %v", binds)
	}
	sql, _ = render(col.BitwiseNot())
	if sql != `~"x"` {
		t.Errorf("got %s", sql)
	}
}

// --- Aggregates, functions, windows ---

func TestAggregateConstructors(t *testing.T) {
	t.Parallel()
	col := Column("amount")
	tests := []struct {
		node *AggregateNode
		want AggregateFunc
	}{
		{Count(nil), AggCount},
		{Sum(col), AggSum},
		{Avg(col), AggAvg},
		{Min(col), AggMin},
		{Max(col), AggMax},
	}
	for _, tt := range tests {
		if tt.node.Func != tt.want {
			t.Errorf("expected %v, got %v", tt.want, tt.node.Func)
		}
	}
	if !CountDistinct(col).Distinct {
		t.Error("expected CountDistinct to set Distinct")
	}
}

func TestWithFilterCopies(t *testing.T) {
	t.Parallel()
	orig := Count(nil)
	filtered := orig.WithFilter(Column("active").Eq(true))
	if orig.Filter != nil {
		t.Error("WithFilter must not modify the receiver")
	}
	if filtered.Filter == nil {
		t.Error("expected filter on the copy")
	}
}

func TestWindowDefinitionBuilder(t *testing.T) {
	t.Parallel()
	col := Column("dept")
	w := NewWindowDef("w").
		Partition(col).
		Order(Column("salary").Desc()).
		Rows(UnboundedPreceding(), CurrentRow())

	if w.Name != "w" || len(w.PartitionBy) != 1 || len(w.OrderBy) != 1 {
		t.Fatalf("unexpected window definition: %+v", w)
	}
	if w.Frame.Type != FrameRows || w.Frame.End == nil || w.Frame.End.Type != BoundCurrentRow {
		t.Errorf("unexpected frame: %+v", w.Frame)
	}
}

func TestOverNodeChains(t *testing.T) {
	t.Parallel()
	over := RowNumber().OverName("w")
	if over.WindowName != "w" {
		t.Errorf("expected window name w, got %q", over.WindowName)
	}
	if over.Gt(1).Left != over {
		t.Error("expected OverNode predications to use the node as left operand")
	}
	if over.As("rn").Name != "rn" {
		t.Error("expected alias name rn")
	}
}

func TestCaseBuilder(t *testing.T) {
	t.Parallel()
	c := NewCase(Column("status")).
		When(Literal("a"), Literal(1)).
		When(Literal("b"), Literal(2)).
		Else(Literal(0))
	if c.Operand == nil || len(c.Whens) != 2 || c.ElseVal == nil {
		t.Errorf("unexpected case node: %+v", c)
	}
	if NewCase().Operand != nil {
		t.Error("expected searched CASE to have no operand")
	}
}

func TestGroupingSetConstructors(t *testing.T) {
	t.Parallel()
	a, b := Column("a"), Column("b")
	if NewCube(a, b).Type != Cube || NewRollup(a).Type != Rollup {
		t.Error("unexpected grouping set type")
	}
	sets := NewGroupingSets([]Node{a, b}, []Node{a}, []Node{})
	sql, _ := render(sets)
	if sql != `GROUPING SETS(("a", "b"), ("a"), ())` {
		t.Errorf("got %s", sql)
	}
}

// --- Coercion ---

func TestAttributeTyped(t *testing.T) {
	t.Parallel()
	col := NewTable("t").Col("age")
	typed := col.Typed("integer")

	if col.TypeName != "" {
		t.Error("Typed must not modify the receiver")
	}
	if typed.TypeName != "integer" {
		t.Errorf("expected integer, got %q", typed.TypeName)
	}
	if typed.Eq(1).Left != typed {
		t.Error("expected copy to have its own self pointer")
	}
}

func TestAttributeCoerce(t *testing.T) {
	t.Parallel()
	casted, ok := Column("age").Typed("integer").Coerce(5).(*CastedNode)
	if !ok || casted.TypeName != "integer" || casted.Value != 5 {
		t.Errorf("unexpected coercion: %#v", casted)
	}
	if _, ok := Column("age").Coerce(5).(*BindParamNode); !ok {
		t.Error("expected untyped coercion to bind")
	}
}

// --- RelationName / TableSourceName ---

func TestRelationAndSourceNames(t *testing.T) {
	t.Parallel()
	users := NewTable("users")
	u := users.Alias("u")
	sub := &TableAlias{Relation: &SelectCore{From: users}, AliasName: "s"}

	tests := []struct {
		node        Node
		rel, source string
	}{
		{users, "users", "users"},
		{u, "u", "users"},
		{sub, "s", "s"},
		{Star(), "", ""},
	}
	for _, tt := range tests {
		if got := RelationName(tt.node); got != tt.rel {
			t.Errorf("RelationName(%T) = %q, want %q", tt.node, got, tt.rel)
		}
		if got := TableSourceName(tt.node); got != tt.source {
			t.Errorf("TableSourceName(%T) = %q, want %q", tt.node, got, tt.source)
		}
	}
}

// --- Serializer internals ---

func TestJoinedNodeSkipsEmptyItems(t *testing.T) {
	t.Parallel()
	empty := funcNode(func(*Serializer) {})
	tests := []struct {
		items []Node
		want  string
	}{
		{[]Node{rawNode("a"), empty, rawNode("b")}, "a, b"},
		{[]Node{empty, rawNode("a")}, "a"},
		{[]Node{rawNode("a"), empty}, "a"},
		{[]Node{empty, empty}, ""},
		{[]Node{rawNode("a"), nil, rawNode("b")}, "a, b"},
	}
	for _, tt := range tests {
		sql, _ := render(&joinedNode{items: tt.items, sep: ", "})
		if sql != tt.want {
			t.Errorf("expected %q, got %q", tt.want, sql)
		}
	}
}

func TestStatementOmitsEmptyParts(t *testing.T) {
	t.Parallel()
	empty := funcNode(func(*Serializer) {})
	s := NewSerializer(dialect.New("standard"), nil)
	s.Statement().
		Raw("SELECT").
		Expr(empty).
		Raw("").
		Raw("1").
		Clause("WHERE", empty).
		Clause("ORDER BY", nil).
		Expr(empty).
		Finish()
	if got := s.SQL(); got != "SELECT 1" {
		t.Errorf("expected %q, got %q", "SELECT 1", got)
	}
}

func TestStatementClauseKeepsKeywordWithBody(t *testing.T) {
	t.Parallel()
	s := NewSerializer(dialect.New("standard"), nil)
	s.Statement().Raw("DELETE FROM").Expr(NewTable("t")).Clause("WHERE", andList([]Node{rawNode("a"), rawNode("b")})).Finish()
	if got := s.SQL(); got != `DELETE FROM "t" WHERE a AND b` {
		t.Errorf("got %q", got)
	}
}

func TestStatementExprNilPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected Expr(nil) to panic")
		}
	}()
	NewSerializer(dialect.New("standard"), nil).Statement().Expr(nil)
}

func TestSerializerBindCountMatchesPlaceholders(t *testing.T) {
	t.Parallel()
	s := NewSerializer(dialect.New("numbered", dialect.WithPlaceholder(dialect.DollarPlaceholder)), nil)
	for _, v := range []any{"a", 2, true} {
		s.WriteBind(v)
		s.WriteSQL(" ")
	}
	sql, binds := s.Finish()
	if sql != "$1 $2 $3 " {
		t.Errorf("got %q", sql)
	}
	if len(binds) != 3 || binds[0] != "a" || binds[2] != true {
		t.Errorf("unexpected binds %v", binds)
	}
}

func TestSerializerTruncateRestoresMark(t *testing.T) {
	t.Parallel()
	s := NewSerializer(dialect.New("standard"), nil)
	s.WriteSQL("SELECT ")
	s.WriteBind(1)
	m := s.mark()
	s.WriteSQL(" junk ")
	s.WriteBind(2)
	s.truncate(m)
	if s.SQL() != "SELECT ?" {
		t.Errorf("got %q", s.SQL())
	}
	if binds := s.Binds(); len(binds) != 1 || binds[0] != 1 {
		t.Errorf("expected binds [1], got %v", binds)
	}
}

func TestStatementDropsWholeOnEmptyOperand(t *testing.T) {
	t.Parallel()
	empty := funcNode(func(*Serializer) {})
	tests := []struct {
		name  string
		build func(st *Statement)
		want  string
		binds int
	}{
		{"empty left", func(st *Statement) { st.Infix(empty, "=", NewBindParam("x")) }, "", 0},
		{"empty right", func(st *Statement) { st.Infix(NewBindParam("x"), "=", empty) }, "", 0},
		{"both present", func(st *Statement) { st.Infix(rawNode("a"), "=", NewBindParam("x")) }, "a = $1", 1},
		{"optional part", func(st *Statement) { st.Operand(rawNode("a")).Expr(empty).Raw("IS NULL") }, "a IS NULL", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSerializer(dialect.New("numbered", dialect.WithPlaceholder(dialect.DollarPlaceholder)), nil)
			st := s.Statement()
			tt.build(st)
			st.Finish()
			if got := s.SQL(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if got := len(s.Binds()); got != tt.binds {
				t.Errorf("expected %d binds, got %d", tt.binds, got)
			}
		})
	}
}

func TestNewSerializerRequiresDialect(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected nil dialect to panic")
		}
	}()
	NewSerializer(nil, nil)
}

// --- String() debug helpers ---

func TestJoinTypeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		jt   JoinType
		want string
	}{
		{InnerJoin, "INNER JOIN"},
		{LeftOuterJoin, "LEFT OUTER JOIN"},
		{RightOuterJoin, "RIGHT OUTER JOIN"},
		{FullOuterJoin, "FULL OUTER JOIN"},
		{CrossJoin, "CROSS JOIN"},
		{StringJoin, "STRING JOIN"},
		{JoinType(99), "JOIN"},
	}
	for _, tt := range tests {
		if got := tt.jt.String(); got != tt.want {
			t.Errorf("JoinType(%d).String() = %q, want %q", tt.jt, got, tt.want)
		}
	}
}

func TestSetOpTypeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		op   SetOpType
		want string
	}{
		{Union, "UNION"},
		{UnionAll, "UNION ALL"},
		{Intersect, "INTERSECT"},
		{IntersectAll, "INTERSECT ALL"},
		{Except, "EXCEPT"},
		{ExceptAll, "EXCEPT ALL"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("SetOpType(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

var (
	_ Node = (*Table)(nil)
	_ Node = (*TableAlias)(nil)
	_ Node = (*Attribute)(nil)
	_ Node = (*Identifier)(nil)
	_ Node = (*LiteralNode)(nil)
	_ Node = (*SqlLiteral)(nil)
	_ Node = (*BindParamNode)(nil)
	_ Node = (*StarNode)(nil)
	_ Node = DefaultNode{}
	_ Node = (*ExcludedNode)(nil)
	_ Node = (*ComparisonNode)(nil)
	_ Node = (*UnaryNode)(nil)
	_ Node = (*AndNode)(nil)
	_ Node = (*OrNode)(nil)
	_ Node = (*NotNode)(nil)
	_ Node = (*InNode)(nil)
	_ Node = (*BetweenNode)(nil)
	_ Node = (*ExistsNode)(nil)
	_ Node = (*GroupingNode)(nil)
	_ Node = (*InfixNode)(nil)
	_ Node = (*UnaryMathNode)(nil)
	_ Node = (*AggregateNode)(nil)
	_ Node = (*ExtractNode)(nil)
	_ Node = (*NamedFunctionNode)(nil)
	_ Node = (*CaseNode)(nil)
	_ Node = (*CastedNode)(nil)
	_ Node = (*CastNode)(nil)
	_ Node = (*AliasNode)(nil)
	_ Node = (*JSONSubpathNode)(nil)
	_ Node = (*WindowFuncNode)(nil)
	_ Node = (*OverNode)(nil)
	_ Node = (*GroupingSetNode)(nil)
	_ Node = (*SelectCore)(nil)
	_ Node = (*JoinNode)(nil)
	_ Node = (*OrderingNode)(nil)
	_ Node = (*GroupByNode)(nil)
	_ Node = (*HavingNode)(nil)
	_ Node = (*LockingClause)(nil)
	_ Node = (*CTENode)(nil)
	_ Node = (*WithClause)(nil)
	_ Node = (*UnionNode)(nil)
	_ Node = (*InsertStatement)(nil)
	_ Node = (*UpdateStatement)(nil)
	_ Node = (*DeleteStatement)(nil)
	_ Node = (*AssignmentNode)(nil)
	_ Node = (*ReturningNode)(nil)
	_ Node = (*OnConflictNode)(nil)
	_ Node = (*DataTypeNode)(nil)
	_ Node = (*ColumnDef)(nil)
	_ Node = (*ColumnConstraint)(nil)
	_ Node = (*TableConstraint)(nil)
	_ Node = (*ForeignKeyRef)(nil)
	_ Node = (*CreateTable)(nil)
	_ Node = (*DropTable)(nil)
	_ Node = (*AlterTable)(nil)
	_ Node = (*CreateIndex)(nil)
	_ Node = (*DropIndex)(nil)
	_ Node = (*CreateEnumType)(nil)
	_ Node = (*DropEnumType)(nil)
	_ Node = (*CreateTrigger)(nil)
	_ Node = (*DropTrigger)(nil)
	_ Node = (*TriggerBody)(nil)
	_ Node = (*RowRef)(nil)
)
