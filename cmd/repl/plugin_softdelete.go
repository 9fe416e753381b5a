package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bawdo/sqlcraft/plugins"
	"github.com/bawdo/sqlcraft/plugins/softdelete"
)

// cmdSoftdelete configures the soft-delete plugin:
//
//	softdelete                          deleted_at on every table
//	softdelete removed_at               custom column on every table
//	softdelete removed_at on users      custom column on listed tables
//	softdelete users.deleted_at, ...    per-table columns
//	softdelete writes ...               also guard UPDATE and DELETE
//	softdelete off                      disable
func (s *Session) cmdSoftdelete(args string) error {
	rest := strings.TrimSpace(args)
	if strings.EqualFold(rest, "off") {
		if !s.plugins.deregister("softdelete") {
			return errors.New("softdelete is not enabled")
		}
		_, _ = fmt.Fprintln(s.out, "  Soft-delete disabled")
		return nil
	}

	var opts []softdelete.Option
	var status string
	if word, after, _ := strings.Cut(rest, " "); strings.EqualFold(word, "writes") {
		opts = append(opts, softdelete.FilterWrites())
		rest = strings.TrimSpace(after)
		status = " (writes too)"
	}

	switch {
	case strings.Contains(rest, "."):
		var pairs []string
		for _, pair := range strings.Split(rest, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			table, col, ok := strings.Cut(pair, ".")
			if !ok || table == "" || col == "" {
				return fmt.Errorf("invalid table.column pair: %q", pair)
			}
			opts = append(opts, softdelete.WithTableColumn(table, col))
			pairs = append(pairs, pair)
		}
		sort.Strings(pairs)
		status = "columns: " + strings.Join(pairs, ", ") + status

	case strings.Contains(strings.ToLower(rest), " on "):
		idx := strings.Index(strings.ToLower(rest), " on ")
		col := strings.TrimSpace(rest[:idx])
		tables := strings.Fields(rest[idx+4:])
		if col == "" || len(tables) == 0 {
			return errors.New("usage: softdelete <column> on <table1> [table2 ...]")
		}
		opts = append(opts, softdelete.WithColumn(col), softdelete.WithTables(tables...))
		status = fmt.Sprintf("column: %s, tables: %s%s", col, strings.Join(tables, ", "), status)

	case rest != "":
		col := strings.Fields(rest)[0]
		opts = append(opts, softdelete.WithColumn(col))
		status = "column: " + col + status

	default:
		status = "column: deleted_at" + status
	}

	s.plugins.register(pluginEntry{
		name:    "softdelete",
		factory: func() plugins.Transformer { return softdelete.New(opts...) },
		status:  func() string { return status },
	})
	_, _ = fmt.Fprintf(s.out, "  Soft-delete enabled (%s)\n", status)
	return nil
}

func (s *Session) cmdPlugins() {
	if len(s.plugins.entries) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No plugins enabled")
		return
	}
	for _, e := range s.plugins.entries {
		_, _ = fmt.Fprintf(s.out, "  %s: %s\n", e.name, e.status())
	}
}
