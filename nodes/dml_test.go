package nodes_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/bawdo/sqlcraft/dialect"
	"github.com/bawdo/sqlcraft/internal/testutil"
	"github.com/bawdo/sqlcraft/nodes"
)

func assertFeatures(t *testing.T, rec *testutil.LogRecorder, want ...string) {
	t.Helper()
	got := rec.Features()
	if !slices.Equal(got, want) {
		t.Errorf("expected warnings for %v, got %v", want, got)
	}
}

func userRow(id int, name string) []nodes.Node {
	return []nodes.Node{nodes.Bind(id), nodes.Bind(name)}
}

// --- Worked examples ---

func TestInsertOneRow(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := &nodes.InsertStatement{
		Into:    users,
		Columns: []nodes.Node{users.Col("id"), users.Col("name")},
		Values:  [][]nodes.Node{userRow(1, "alice")},
	}
	testutil.AssertRender(t, std, stmt, `INSERT INTO "users" ("id", "name") VALUES (?, ?)`, 1, "alice")
}

func TestDeleteWhere(t *testing.T) {
	t.Parallel()
	stmt := &nodes.DeleteStatement{
		From:   nodes.NewTable("users"),
		Wheres: []nodes.Node{nodes.Column("name").Eq("bob")},
	}
	testutil.AssertRender(t, std, stmt, `DELETE FROM "users" WHERE "name" = ?`, "bob")
}

func TestInsertIgnoreOnConflict(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := func() *nodes.InsertStatement {
		return &nodes.InsertStatement{
			Into:       users,
			Columns:    []nodes.Node{users.Col("id"), users.Col("name")},
			Values:     [][]nodes.Node{userRow(1, "alice")},
			OnConflict: &nodes.OnConflictNode{Columns: []nodes.Node{users.Col("id")}, Action: nodes.DoNothing},
		}
	}

	standard := std.With(dialect.WithUpsert(dialect.UpsertOnConflict))
	testutil.AssertRender(t, standard, stmt(),
		`INSERT INTO "users" ("id", "name") VALUES (?, ?) ON CONFLICT ("id") DO NOTHING`, 1, "alice")
	testutil.AssertRender(t, my, stmt(),
		"INSERT IGNORE INTO `users` (`id`, `name`) VALUES (?, ?)", 1, "alice")
}

func TestUnionUnsupportedOperationIsDropped(t *testing.T) {
	t.Parallel()
	rec, logger := testutil.NewLogRecorder()
	a := &nodes.SelectCore{From: nodes.NewTable("a")}
	b := &nodes.SelectCore{From: nodes.NewTable("b")}

	sql, _ := nodes.Render(std, logger, nodes.NewUnion(a).Add(nodes.IntersectAll, b))
	if strings.Contains(sql, "INTERSECT") {
		t.Errorf("expected no INTERSECT keyword, got %s", sql)
	}
	testutil.AssertEqual(t, sql, `SELECT * FROM "a" SELECT * FROM "b"`)
	assertFeatures(t, rec, "union")
	op, _ := testutil.Attr(rec.Records()[0], "operation")
	testutil.AssertEqual(t, op, "INTERSECT ALL")
}

func TestJSONSubpathUnsupportedLeavesNoGap(t *testing.T) {
	t.Parallel()
	rec, logger := testutil.NewLogRecorder()
	doc := nodes.Column("doc")
	sel := &nodes.SelectCore{
		From:        nodes.NewTable("t"),
		Projections: []nodes.Node{nodes.Column("id"), doc.Path("a", "b")},
		Wheres:      []nodes.Node{doc.Path("a"), nodes.Column("id").Eq(1)},
		Orders:      []nodes.Node{doc.Path("z")},
	}
	sql, binds := nodes.Render(std, logger, sel)
	testutil.AssertEqual(t, sql, `SELECT "id" FROM "t" WHERE "id" = ?`)
	testutil.AssertBinds(t, binds, []any{1})
	assertFeatures(t, rec, "json_subpath", "json_subpath", "json_subpath")

	only := &nodes.SelectCore{From: nodes.NewTable("t"), Wheres: []nodes.Node{doc.Path("a")}}
	testutil.AssertSQL(t, std, only, `SELECT * FROM "t"`)
}

func TestJSONSubpathUnsupportedDropsEnclosingPredicate(t *testing.T) {
	t.Parallel()
	rec, logger := testutil.NewLogRecorder()
	id := nodes.Column("id")
	doc := nodes.Column("doc")
	sel := &nodes.SelectCore{
		From: nodes.NewTable("t"),
		Wheres: []nodes.Node{
			id.Eq(1),
			doc.Path("a").Eq("x"),
			doc.Path("b").In(1, 2),
			doc.Path("c").Between(3, 4),
			doc.Path("d").IsNull(),
			doc.Path("e").Eq("y").Or(id.Gt(5)),
			id.Lt(9).And(doc.Path("f").NotEq("z")),
			doc.Path("h").Eq(1).Or(doc.Path("i").Eq(2)),
			doc.Path("j").Eq(3).Not(),
		},
		Orders: []nodes.Node{doc.Path("g").Desc(), id.Asc()},
	}
	sql, binds := nodes.Render(std, logger, sel)
	testutil.AssertEqual(t, sql, `SELECT * FROM "t" WHERE "id" = ? AND ("id" > ?) AND "id" < ? ORDER BY "id" ASC`)
	testutil.AssertBinds(t, binds, []any{1, 5, 9})
	if n := len(rec.Features()); n != 10 {
		t.Errorf("expected 10 json_subpath warnings, got %v", rec.Features())
	}

	numbered := std.With(dialect.WithPlaceholder(dialect.DollarPlaceholder))
	only := &nodes.SelectCore{
		From:   nodes.NewTable("t"),
		Wheres: []nodes.Node{doc.Path("a").Eq("x"), id.Eq(2)},
	}
	testutil.AssertRender(t, numbered, only, `SELECT * FROM "t" WHERE "id" = $1`, 2)
}

// --- Bind numbering ---

func TestNestedBindNumbering(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	orders := nodes.NewTable("orders")
	recent := nodes.NewTable("recent")

	sel := &nodes.SelectCore{
		CTEs: []*nodes.CTENode{{
			Name:  "recent",
			Query: &nodes.SelectCore{From: orders, Wheres: []nodes.Node{orders.Col("total").Gt(100)}},
		}},
		From: users,
		Wheres: []nodes.Node{
			users.Col("id").InQuery(&nodes.SelectCore{
				From:        recent,
				Projections: []nodes.Node{recent.Col("user_id")},
				Wheres:      []nodes.Node{recent.Col("status").Eq("paid")},
			}),
			users.Col("active").Eq(true),
		},
		Limit: nodes.Bind(10),
	}
	testutil.AssertRender(t, pg, sel,
		`WITH "recent" AS (SELECT * FROM "orders" WHERE "orders"."total" > $1) `+
			`SELECT * FROM "users" WHERE "users"."id" IN (SELECT "recent"."user_id" FROM "recent" WHERE "recent"."status" = $2) `+
			`AND "users"."active" = $3 LIMIT $4`,
		100, "paid", true, 10)
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	sel := &nodes.SelectCore{
		From:   users,
		Wheres: []nodes.Node{users.Col("a").In(1, 2, 3), users.Col("b").Like("x%")},
		Orders: []nodes.Node{users.Col("a").Desc()},
	}
	first, firstBinds := nodes.Render(pg, nil, sel)
	for range 20 {
		sql, binds := nodes.Render(pg, nil, sel)
		testutil.AssertEqual(t, sql, first)
		testutil.AssertBinds(t, binds, firstBinds)
	}
}

// --- SELECT ---

func TestRenderSelectCoreFull(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	posts := nodes.NewTable("posts")
	sel := &nodes.SelectCore{
		From:        users,
		Projections: []nodes.Node{users.Col("name"), nodes.Count(posts.Col("id")).As("n")},
		Joins: []*nodes.JoinNode{{
			Left:  users,
			Right: posts,
			Type:  nodes.LeftOuterJoin,
			On:    users.Col("id").Eq(posts.Col("user_id")),
		}},
		Wheres:  []nodes.Node{users.Col("active").Eq(true)},
		Groups:  []nodes.Node{users.Col("name")},
		Havings: []nodes.Node{nodes.Count(posts.Col("id")).Gt(5)},
		Orders:  []nodes.Node{users.Col("name").Asc()},
		Limit:   nodes.Literal(20),
		Offset:  nodes.Literal(10),
	}
	testutil.AssertRender(t, pg, sel,
		`SELECT "users"."name", COUNT("posts"."id") AS "n" FROM "users" `+
			`LEFT OUTER JOIN "posts" ON "users"."id" = "posts"."user_id" `+
			`WHERE "users"."active" = $1 GROUP BY "users"."name" HAVING COUNT("posts"."id") > $2 `+
			`ORDER BY "users"."name" ASC LIMIT 20 OFFSET 10`,
		true, 5)
}

func TestRenderSelectDistinct(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	testutil.AssertSQL(t, pg, &nodes.SelectCore{From: users, Distinct: true, Projections: []nodes.Node{users.Col("email")}},
		`SELECT DISTINCT "users"."email" FROM "users"`)
	testutil.AssertSQL(t, pg, &nodes.SelectCore{From: users, DistinctOn: []nodes.Node{users.Col("email")}},
		`SELECT DISTINCT ON ("users"."email") * FROM "users"`)
}

func TestRenderSelectWithoutFrom(t *testing.T) {
	t.Parallel()
	testutil.AssertSQL(t, pg, &nodes.SelectCore{Projections: []nodes.Node{nodes.Literal(1)}}, `SELECT 1`)
}

func TestRenderSelectCommentAndHints(t *testing.T) {
	t.Parallel()
	sel := &nodes.SelectCore{
		From:    nodes.NewTable("users"),
		Comment: "list */ users",
		Hints:   []string{"SeqScan(users)"},
	}
	testutil.AssertSQL(t, pg, sel, `/* list * / users */ SELECT /*+ SeqScan(users) */ * FROM "users"`)
}

func TestRenderSelectWindowClause(t *testing.T) {
	t.Parallel()
	sel := &nodes.SelectCore{
		From:        nodes.NewTable("t"),
		Projections: []nodes.Node{nodes.RowNumber().OverName("w")},
		Windows:     []*nodes.WindowDefinition{nodes.NewWindowDef("w").Partition(nodes.Column("d"))},
	}
	testutil.AssertSQL(t, pg, sel, `SELECT ROW_NUMBER() OVER "w" FROM "t" WINDOW "w" AS (PARTITION BY "d")`)
}

func TestRenderJoins(t *testing.T) {
	t.Parallel()
	a := nodes.NewTable("a")
	b := nodes.NewTable("b")
	sub := &nodes.SelectCore{From: b, Wheres: []nodes.Node{b.Col("a_id").Eq(a.Col("id"))}}

	tests := []struct {
		name string
		join *nodes.JoinNode
		want string
	}{
		{"inner", &nodes.JoinNode{Right: b, Type: nodes.InnerJoin, On: a.Col("id").Eq(b.Col("a_id"))},
			`SELECT * FROM "a" INNER JOIN "b" ON "a"."id" = "b"."a_id"`},
		{"cross", &nodes.JoinNode{Right: b, Type: nodes.CrossJoin},
			`SELECT * FROM "a" CROSS JOIN "b"`},
		{"lateral", &nodes.JoinNode{Right: &nodes.TableAlias{Relation: sub, AliasName: "x"}, Type: nodes.LeftOuterJoin, Lateral: true, On: nodes.Literal(true)},
			`SELECT * FROM "a" LEFT OUTER JOIN LATERAL (SELECT * FROM "b" WHERE "b"."a_id" = "a"."id") AS "x" ON TRUE`},
		{"string", &nodes.JoinNode{Right: nodes.NewSqlLiteral("NATURAL JOIN b"), Type: nodes.StringJoin},
			`SELECT * FROM "a" NATURAL JOIN b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertSQL(t, pg, &nodes.SelectCore{From: a, Joins: []*nodes.JoinNode{tt.join}}, tt.want)
		})
	}
}

func TestRenderLocking(t *testing.T) {
	t.Parallel()
	jobs := nodes.NewTable("jobs")
	skip := nodes.ForUpdate()
	skip.Wait = nodes.SkipLocked
	testutil.AssertSQL(t, pg, &nodes.SelectCore{From: jobs, Lock: skip}, `SELECT * FROM "jobs" FOR UPDATE SKIP LOCKED`)

	of := &nodes.LockingClause{Strength: dialect.LockExclusive, Wait: nodes.NoWait, Of: []*nodes.Table{jobs}}
	testutil.AssertSQL(t, pg, &nodes.SelectCore{From: jobs, Lock: of}, `SELECT * FROM "jobs" FOR UPDATE OF "jobs" NOWAIT`)
	testutil.AssertSQL(t, my, &nodes.SelectCore{From: jobs, Lock: nodes.ForShare()}, "SELECT * FROM `jobs` FOR SHARE")
}

func TestRenderLockingDroppedForSQLite(t *testing.T) {
	t.Parallel()
	rec, logger := testutil.NewLogRecorder()
	sql, _ := nodes.Render(lite, logger, &nodes.SelectCore{From: nodes.NewTable("jobs"), Lock: nodes.ForUpdate()})
	testutil.AssertEqual(t, sql, `SELECT * FROM "jobs"`)
	assertFeatures(t, rec)
	records := rec.Records()
	if len(records) != 1 || records[0].Message != "locking clause dropped" {
		t.Errorf("expected one debug record, got %v", records)
	}
}

// --- UNION ---

func TestRenderUnion(t *testing.T) {
	t.Parallel()
	a := &nodes.SelectCore{From: nodes.NewTable("a"), Wheres: []nodes.Node{nodes.Column("x").Eq(1)}}
	b := &nodes.SelectCore{From: nodes.NewTable("b"), Wheres: []nodes.Node{nodes.Column("x").Eq(2)}}

	testutil.AssertRender(t, pg, nodes.NewUnion(a).Add(nodes.UnionAll, b),
		`SELECT * FROM "a" WHERE "x" = $1 UNION ALL SELECT * FROM "b" WHERE "x" = $2`, 1, 2)

	distinct := &nodes.UnionNode{
		Initial: a,
		Parts:   []nodes.UnionPart{{Op: nodes.Union, Select: b, Distinct: true}},
		Orders:  []nodes.Node{nodes.Column("x").Asc()},
		Limit:   nodes.Literal(5),
	}
	testutil.AssertSQL(t, pg, distinct,
		`SELECT * FROM "a" WHERE "x" = $1 UNION DISTINCT SELECT * FROM "b" WHERE "x" = $2 ORDER BY "x" ASC LIMIT 5`)
	testutil.AssertSQL(t, lite, distinct,
		`SELECT * FROM "a" WHERE "x" = ? UNION SELECT * FROM "b" WHERE "x" = ? ORDER BY "x" ASC LIMIT 5`)

	parens := std.With(dialect.WithUnion(dialect.Union | dialect.UnionParenthesized))
	testutil.AssertSQL(t, parens, nodes.NewUnion(a).Add(nodes.Union, b),
		`(SELECT * FROM "a" WHERE "x" = ?) UNION (SELECT * FROM "b" WHERE "x" = ?)`)
}

func TestRenderEmptyUnionIsInitialSelect(t *testing.T) {
	t.Parallel()
	a := &nodes.SelectCore{From: nodes.NewTable("a"), Wheres: []nodes.Node{nodes.Column("x").Eq(1)}}
	want, wantBinds := nodes.Render(pg, nil, a)
	got, gotBinds := nodes.Render(pg, nil, nodes.NewUnion(a))
	testutil.AssertEqual(t, got, want)
	testutil.AssertBinds(t, gotBinds, wantBinds)
}

// --- INSERT ---

func TestRenderInsertMultiRowReturning(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := &nodes.InsertStatement{
		Into:      users,
		Columns:   []nodes.Node{users.Col("name"), users.Col("role")},
		Values:    [][]nodes.Node{{nodes.Bind("a"), nodes.Default()}, {nodes.Bind("b"), nodes.Bind("admin")}},
		Returning: []nodes.Node{nodes.Column("id")},
	}
	testutil.AssertRender(t, pg, stmt,
		`INSERT INTO "users" ("name", "role") VALUES ($1, DEFAULT), ($2, $3) RETURNING "id"`, "a", "b", "admin")
}

func TestRenderInsertReturningUnsupported(t *testing.T) {
	t.Parallel()
	rec, logger := testutil.NewLogRecorder()
	users := nodes.NewTable("users")
	stmt := &nodes.InsertStatement{
		Into:      users,
		Columns:   []nodes.Node{users.Col("name")},
		Values:    [][]nodes.Node{{nodes.Bind("a")}},
		Returning: []nodes.Node{nodes.Column("id")},
	}
	sql, _ := nodes.Render(my, logger, stmt)
	testutil.AssertEqual(t, sql, "INSERT INTO `users` (`name`) VALUES (?)")
	assertFeatures(t, rec, "returning")
}

func TestRenderInsertDefaultValuesAndSelect(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	testutil.AssertSQL(t, pg, &nodes.InsertStatement{Into: users}, `INSERT INTO "users" DEFAULT VALUES`)

	archive := nodes.NewTable("archive")
	stmt := &nodes.InsertStatement{
		Into:    archive,
		Columns: []nodes.Node{archive.Col("id")},
		Select:  &nodes.SelectCore{From: users, Projections: []nodes.Node{users.Col("id")}},
	}
	testutil.AssertSQL(t, pg, stmt, `INSERT INTO "archive" ("id") SELECT "users"."id" FROM "users"`)
}

func TestRenderInsertContractViolations(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	cols := []nodes.Node{users.Col("id"), users.Col("name")}

	testutil.AssertPanics(t, "row width", func() {
		nodes.Render(pg, nil, &nodes.InsertStatement{Into: users, Columns: cols, Values: [][]nodes.Node{{nodes.Bind(1)}}})
	})
	testutil.AssertPanics(t, "both VALUES and SELECT", func() {
		nodes.Render(pg, nil, &nodes.InsertStatement{
			Into: users, Columns: cols, Values: [][]nodes.Node{userRow(1, "a")}, Select: &nodes.SelectCore{From: users},
		})
	})
	testutil.AssertPanics(t, "no rows", func() {
		nodes.Render(pg, nil, &nodes.InsertStatement{Into: users, Columns: cols})
	})
}

func TestRenderUpsertDoUpdate(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := func() *nodes.InsertStatement {
		return &nodes.InsertStatement{
			Into:    users,
			Columns: []nodes.Node{users.Col("id"), users.Col("name")},
			Values:  [][]nodes.Node{userRow(1, "alice")},
			OnConflict: &nodes.OnConflictNode{
				Columns:     []nodes.Node{users.Col("id")},
				Action:      nodes.DoUpdate,
				Assignments: nodes.UpdateExcluded("name"),
				Wheres:      []nodes.Node{users.Col("locked").Eq(false)},
			},
		}
	}
	testutil.AssertRender(t, pg, stmt(),
		`INSERT INTO "users" ("id", "name") VALUES ($1, $2) ON CONFLICT ("id") DO UPDATE SET "name" = EXCLUDED."name" WHERE "users"."locked" = $3`,
		1, "alice", false)

	rec, logger := testutil.NewLogRecorder()
	sql, binds := nodes.Render(my, logger, stmt())
	testutil.AssertEqual(t, sql, "INSERT INTO `users` (`id`, `name`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `name` = VALUES(`name`)")
	testutil.AssertBinds(t, binds, []any{1, "alice"})
	assertFeatures(t, rec, "upsert_where")
}

func TestRenderUpsertOnConstraint(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := &nodes.InsertStatement{
		Into:       users,
		Columns:    []nodes.Node{users.Col("id")},
		Values:     [][]nodes.Node{{nodes.Bind(1)}},
		OnConflict: &nodes.OnConflictNode{Constraint: "users_pkey", Action: nodes.DoNothing},
	}
	testutil.AssertSQL(t, pg, stmt, `INSERT INTO "users" ("id") VALUES ($1) ON CONFLICT ON CONSTRAINT "users_pkey" DO NOTHING`)
}

func TestRenderUpsertUnsupported(t *testing.T) {
	t.Parallel()
	rec, logger := testutil.NewLogRecorder()
	users := nodes.NewTable("users")
	stmt := &nodes.InsertStatement{
		Into:       users,
		Columns:    []nodes.Node{users.Col("id")},
		Values:     [][]nodes.Node{{nodes.Bind(1)}},
		OnConflict: &nodes.OnConflictNode{Columns: []nodes.Node{users.Col("id")}},
	}
	sql, _ := nodes.Render(std, logger, stmt)
	testutil.AssertEqual(t, sql, `INSERT INTO "users" ("id") VALUES (?)`)
	assertFeatures(t, rec, "upsert")
}

func TestRenderUpsertWithoutAssignmentsPanics(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := &nodes.InsertStatement{
		Into:       users,
		Columns:    []nodes.Node{users.Col("id")},
		Values:     [][]nodes.Node{{nodes.Bind(1)}},
		OnConflict: &nodes.OnConflictNode{Columns: []nodes.Node{users.Col("id")}, Action: nodes.DoUpdate},
	}
	testutil.AssertPanics(t, "at least one assignment", func() {
		nodes.Render(pg, nil, stmt)
	})
}

func TestRenderUpsertDoUpdateWithoutTargetPanics(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := func(oc *nodes.OnConflictNode) *nodes.InsertStatement {
		return &nodes.InsertStatement{
			Into:       users,
			Columns:    []nodes.Node{users.Col("id")},
			Values:     [][]nodes.Node{{nodes.Bind(1)}},
			OnConflict: oc,
		}
	}
	for _, d := range []*dialect.Dialect{pg, my, lite} {
		testutil.AssertPanics(t, "requires a conflict target", func() {
			nodes.Render(d, nil, stmt(&nodes.OnConflictNode{Action: nodes.DoUpdate, Assignments: nodes.UpdateExcluded("id")}))
		})
	}

	byConstraint := stmt(&nodes.OnConflictNode{Constraint: "users_pkey", Action: nodes.DoUpdate, Assignments: nodes.UpdateExcluded("id")})
	testutil.AssertRender(t, pg, byConstraint,
		`INSERT INTO "users" ("id") VALUES ($1) ON CONFLICT ON CONSTRAINT "users_pkey" DO UPDATE SET "id" = EXCLUDED."id"`, 1)

	// DO NOTHING needs no target.
	testutil.AssertRender(t, pg, stmt(&nodes.OnConflictNode{Action: nodes.DoNothing}),
		`INSERT INTO "users" ("id") VALUES ($1) ON CONFLICT DO NOTHING`, 1)
}

// --- UPDATE / DELETE ---

func TestRenderUpdate(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stmt := &nodes.UpdateStatement{
		Table: users,
		Assignments: []*nodes.AssignmentNode{
			nodes.Assign(users.Col("name"), "bob"),
			nodes.Assign(users.Col("age"), users.Col("age").Plus(1)),
		},
		Wheres:    []nodes.Node{users.Col("id").Eq(7)},
		Returning: []nodes.Node{users.Col("id")},
	}
	testutil.AssertRender(t, pg, stmt,
		`UPDATE "users" SET "name" = $1, "age" = "users"."age" + $2 WHERE "users"."id" = $3 RETURNING "users"."id"`,
		"bob", 1, 7)
}

func TestRenderUpdateWithoutAssignmentsPanics(t *testing.T) {
	t.Parallel()
	testutil.AssertPanics(t, "no assignments", func() {
		nodes.Render(pg, nil, &nodes.UpdateStatement{Table: nodes.NewTable("users")})
	})
}

func TestRenderDeleteWithCTE(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stale := nodes.NewTable("stale")
	stmt := &nodes.DeleteStatement{
		CTEs: []*nodes.CTENode{{
			Name:    "stale",
			Columns: []string{"id"},
			Query:   &nodes.SelectCore{From: users, Projections: []nodes.Node{users.Col("id")}, Wheres: []nodes.Node{users.Col("seen").Lt(5)}},
		}},
		From:      users,
		Wheres:    []nodes.Node{users.Col("id").InQuery(&nodes.SelectCore{From: stale, Projections: []nodes.Node{stale.Col("id")}})},
		Returning: []nodes.Node{users.Col("id")},
	}
	testutil.AssertRender(t, pg, stmt,
		`WITH "stale" ("id") AS (SELECT "users"."id" FROM "users" WHERE "users"."seen" < $1) `+
			`DELETE FROM "users" WHERE "users"."id" IN (SELECT "stale"."id" FROM "stale") RETURNING "users"."id"`,
		5)
	testutil.AssertSQL(t, pg, &nodes.DeleteStatement{From: users}, `DELETE FROM "users"`)
}

func TestRenderRecursiveCTE(t *testing.T) {
	t.Parallel()
	tree := nodes.NewTable("tree")
	with := &nodes.WithClause{CTEs: []*nodes.CTENode{
		{Name: "a", Query: &nodes.SelectCore{Projections: []nodes.Node{nodes.Literal(1)}}},
		{Name: "tree", Recursive: true, Query: &nodes.SelectCore{From: tree}},
	}}
	testutil.AssertSQL(t, pg, with, `WITH RECURSIVE "a" AS (SELECT 1), "tree" AS (SELECT * FROM "tree")`)
	testutil.AssertSQL(t, pg, &nodes.WithClause{}, ``)
}
