// Package testutil provides shared test helpers for the sqlcraft project.
package testutil

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bawdo/sqlcraft/dialect"
	"github.com/bawdo/sqlcraft/nodes"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertSQL renders node for d and compares the SQL text with expected.
// Bind values are ignored.
func AssertSQL(t *testing.T, d *dialect.Dialect, node nodes.Node, expected string) {
	t.Helper()
	got, _ := nodes.Render(d, nil, node)
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// AssertRender renders node for d and compares both the SQL text and the
// bind values.
func AssertRender(t *testing.T, d *dialect.Dialect, node nodes.Node, expected string, binds ...any) {
	t.Helper()
	got, gotBinds := nodes.Render(d, nil, node)
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
	AssertBinds(t, gotBinds, binds)
}

// AssertBinds compares bind lists element by element. A nil and an empty
// list are equal.
func AssertBinds(t *testing.T, got, want []any) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected binds:\n  %#v\ngot:\n  %#v", want, got)
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}

// AssertPanics fails the test unless fn panics with a message containing
// substr.
func AssertPanics(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic containing %q", substr)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, substr) {
			t.Errorf("expected panic containing %q, got %v", substr, r)
		}
	}()
	fn()
}
