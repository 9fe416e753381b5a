package plugins

import "github.com/bawdo/sqlcraft/nodes"

// TableRef holds a reference to a table relation and its underlying name.
// Relation is the node used to create column references (preserving aliases),
// and Name is the underlying table name (for matching/filtering).
type TableRef struct {
	Relation nodes.Node // *nodes.Table or *nodes.TableAlias
	Name     string     // underlying table name
}

// CollectTables returns all table relations referenced in a SelectCore,
// including the FROM table and all JOIN targets. Subqueries, raw joins and
// references to the query's own CTEs are skipped.
func CollectTables(core *nodes.SelectCore) []TableRef {
	ctes := make(map[string]bool, len(core.CTEs))
	for _, c := range core.CTEs {
		ctes[c.Name] = true
	}
	var refs []TableRef
	add := func(n nodes.Node) {
		if ref, ok := TargetTable(n); ok && !ctes[ref.Name] {
			refs = append(refs, ref)
		}
	}
	add(core.From)
	for _, j := range core.Joins {
		add(j.Right)
	}
	return refs
}

// TargetTable resolves the table an UPDATE or DELETE (or one FROM item)
// operates on.
func TargetTable(n nodes.Node) (TableRef, bool) {
	switch r := n.(type) {
	case *nodes.Table:
		return TableRef{Relation: r, Name: r.Name}, true
	case *nodes.TableAlias:
		if tbl, ok := r.Relation.(*nodes.Table); ok {
			return TableRef{Relation: r, Name: tbl.Name}, true
		}
		return TableRef{}, false
	default:
		return TableRef{}, false
	}
}
