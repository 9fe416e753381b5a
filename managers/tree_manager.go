// Package managers provides fluent builders for statement trees. A manager
// owns its tree, runs its transformer pipeline over a copy and renders the
// result through a database.DB.
package managers

import (
	"github.com/bawdo/sqlcraft/database"
	"github.com/bawdo/sqlcraft/nodes"
	"github.com/bawdo/sqlcraft/plugins"
)

// treeManager is the shared base for all manager types. It holds the
// transformer pipeline common to Select, Insert, Update, and Delete managers.
type treeManager struct {
	transformers plugins.Pipeline
}

// addTransformer appends a transformer plugin to the pipeline.
func (tm *treeManager) addTransformer(t plugins.Transformer) {
	tm.transformers = append(tm.transformers, t)
}

// Transformers returns the registered transformer pipeline.
func (tm *treeManager) Transformers() []plugins.Transformer {
	return tm.transformers
}

// render builds the transformed tree and serializes it with db.
func render(db *database.DB, build func() (nodes.Node, error)) (string, []any, error) {
	root, err := build()
	if err != nil {
		return "", nil, err
	}
	sql, args := db.Serialize(root)
	return sql, args, nil
}

func cloneNodes(src []nodes.Node) []nodes.Node {
	if src == nil {
		return nil
	}
	return append([]nodes.Node(nil), src...)
}

func cloneCTEs(src []*nodes.CTENode) []*nodes.CTENode {
	if src == nil {
		return nil
	}
	return append([]*nodes.CTENode(nil), src...)
}
