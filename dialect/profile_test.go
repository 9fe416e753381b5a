package dialect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"postgres", "postgres"},
		{"PostgreSQL", "postgres"},
		{"pg", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{" sqlite3 ", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := Lookup(tt.in)
			if !ok {
				t.Fatalf("Lookup(%q) failed", tt.in)
			}
			if d.Name() != tt.want {
				t.Errorf("got %q, want %q", d.Name(), tt.want)
			}
		})
	}
	if _, ok := Lookup("oracle"); ok {
		t.Error("expected unknown dialect to fail")
	}
}

func TestLoadProfileOverridesBase(t *testing.T) {
	t.Parallel()
	src := `
base: postgres
name: cockroach
union: [union, union_all, intersect, except]
create_trigger: []
returning: true
locking:
  shared: ""
  exclusive: FOR UPDATE
`
	d, err := LoadProfile(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "cockroach" {
		t.Errorf("Name = %q", d.Name())
	}
	if d.Placeholder(3) != "$3" {
		t.Error("expected placeholders inherited from postgres")
	}
	if d.Union().Has(IntersectAll) {
		t.Error("expected union set to be replaced")
	}
	if d.CreateTrigger() != 0 {
		t.Errorf("CreateTrigger = %v", d.CreateTrigger())
	}
	if d.LockClause(LockShared) != "" || d.LockClause(LockExclusive) != "FOR UPDATE" {
		t.Error("unexpected locking clauses")
	}
	if d.Enum() != EnumNamedType {
		t.Error("expected enum syntax inherited from postgres")
	}
}

func TestLoadProfileWithoutBase(t *testing.T) {
	t.Parallel()
	src := `
identifier_quote: "` + "`" + `"
placeholder: numbered
enum: inline
upsert: on_duplicate_key
alter_table:
  column_type: modify
  batch: false
drop_trigger: [drop_table_name]
`
	d, err := LoadProfile(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "custom" {
		t.Errorf("Name = %q", d.Name())
	}
	if got := d.QuoteIdent("t"); got != "`t`" {
		t.Errorf("QuoteIdent = %q", got)
	}
	if d.Placeholder(2) != "?2" {
		t.Errorf("Placeholder = %q", d.Placeholder(2))
	}
	if d.Enum() != EnumInline || d.Upsert() != UpsertOnDuplicateKey {
		t.Error("unexpected enum/upsert syntax")
	}
	if d.AlterTable() != (AlterTableSyntax{ColumnType: ColumnTypeModify}) {
		t.Errorf("AlterTable = %+v", d.AlterTable())
	}
	if !d.DropTrigger().Has(TriggerDropTableName) {
		t.Error("expected drop_table_name")
	}
}

func TestLoadProfileErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown key", "colour: blue\n", "decode profile"},
		{"unknown base", "base: oracle\n", "unknown base dialect"},
		{"bad placeholder", "placeholder: colon\n", "unknown placeholder style"},
		{"bad enum", "enum: sometimes\n", "unknown enum syntax"},
		{"bad upsert", "upsert: merge\n", "unknown upsert syntax"},
		{"bad union", "union: [zip]\n", "unknown union feature"},
		{"bad trigger", "create_trigger: [for_each_row, nope]\n", "unknown trigger feature"},
		{"bad quote", "identifier_quote: '[]'\n", "identifier_quote must be one character"},
		{"bad alter", "alter_table: {column_type: change}\n", "unknown alter_table.column_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProfile(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadProfileFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	if err := os.WriteFile(path, []byte("base: sqlite\nreturning: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err := LoadProfileFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.SupportsReturning() {
		t.Error("expected RETURNING disabled")
	}
	if d.BoolLiteral(true) != "1" {
		t.Error("expected sqlite booleans inherited")
	}

	if _, err := LoadProfileFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
