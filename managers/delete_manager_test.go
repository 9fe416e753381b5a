package managers

import (
	"errors"
	"testing"

	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins/softdelete"
)

func TestNewDeleteManager(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewDeleteManager(users)
	if m.Statement.From != users {
		t.Error("expected From to be users")
	}
	assertToSQL(t, pgDB, m, `DELETE FROM "users"`)
}

func TestDeleteWhereReturning(t *testing.T) {
	t.Parallel()
	sessions := nodes.NewTable("sessions")
	m := NewDeleteManager(sessions).
		Where(sessions.Col("expires_at").Lt("2026-01-01")).
		Where(sessions.Col("pinned").Eq(false)).
		Returning(sessions.Col("id"))

	assertToSQL(t, pgDB, m,
		`DELETE FROM "sessions" WHERE "sessions"."expires_at" < $1 AND "sessions"."pinned" = $2 RETURNING "sessions"."id"`,
		"2026-01-01", false)
	assertToSQL(t, mysqlDB, m,
		"DELETE FROM `sessions` WHERE `sessions`.`expires_at` < ? AND `sessions`.`pinned` = ?",
		"2026-01-01", false)
}

func TestDeleteWithCTE(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	stale := nodes.NewTable("stale")
	m := NewDeleteManager(users).
		With("stale", NewSelectManager(nodes.NewTable("logins")).Select(nodes.Column("user_id")).Where(nodes.Column("days").Gt(365)).Core, "id").
		Where(users.Col("id").InQuery(NewSelectManager(stale).Select(stale.Col("id"))))

	assertToSQL(t, sqliteDB, m,
		`WITH "stale" ("id") AS (SELECT "user_id" FROM "logins" WHERE "days" > ?) DELETE FROM "users" WHERE "users"."id" IN (SELECT "stale"."id" FROM "stale")`,
		365)
}

func TestDeleteChainingReturnsSelf(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewDeleteManager(users)
	if m.Where(users.Col("id").Eq(1)) != m || m.Returning(users.Col("id")) != m || m.Use(rejecter{}) != m {
		t.Error("expected builder methods to return the manager")
	}
}

func TestDeleteTransformers(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1)).
		Use(softdelete.New(softdelete.FilterWrites()))

	assertToSQL(t, pgDB, m, `DELETE FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`, 1)
	if len(m.Statement.Wheres) != 1 {
		t.Errorf("expected original wheres untouched, got %d", len(m.Statement.Wheres))
	}
}

func TestDeleteTransformerErrorStopsRendering(t *testing.T) {
	t.Parallel()
	m := NewDeleteManager(nodes.NewTable("users")).Use(rejecter{})
	if _, _, err := m.ToSQL(pgDB); !errors.Is(err, errRejected) {
		t.Fatalf("expected errRejected, got %v", err)
	}
}
