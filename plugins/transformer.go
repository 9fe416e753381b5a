// Package plugins defines the Transformer interface managers run over a
// statement tree before it is rendered.
package plugins

import (
	"fmt"

	"github.com/bawdo/sqlcraft/nodes"
)

// Transformer rewrites statement trees. Each method receives a copy the
// manager owns, so it may modify its argument in place.
// Plugins embed BaseTransformer and override only the methods they need.
type Transformer interface {
	TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error)
	TransformInsert(stmt *nodes.InsertStatement) (*nodes.InsertStatement, error)
	TransformUpdate(stmt *nodes.UpdateStatement) (*nodes.UpdateStatement, error)
	TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error)
}

// BaseTransformer provides no-op defaults for all Transformer methods.
type BaseTransformer struct{}

func (BaseTransformer) TransformSelect(c *nodes.SelectCore) (*nodes.SelectCore, error) {
	return c, nil
}
func (BaseTransformer) TransformInsert(s *nodes.InsertStatement) (*nodes.InsertStatement, error) {
	return s, nil
}
func (BaseTransformer) TransformUpdate(s *nodes.UpdateStatement) (*nodes.UpdateStatement, error) {
	return s, nil
}
func (BaseTransformer) TransformDelete(s *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	return s, nil
}

// Pipeline runs transformers in registration order. The first error stops
// the run and is returned wrapped with the failing transformer's position.
type Pipeline []Transformer

// Select runs every TransformSelect over core.
func (p Pipeline) Select(core *nodes.SelectCore) (*nodes.SelectCore, error) {
	return run(p, core, Transformer.TransformSelect)
}

// Insert runs every TransformInsert over stmt.
func (p Pipeline) Insert(stmt *nodes.InsertStatement) (*nodes.InsertStatement, error) {
	return run(p, stmt, Transformer.TransformInsert)
}

// Update runs every TransformUpdate over stmt.
func (p Pipeline) Update(stmt *nodes.UpdateStatement) (*nodes.UpdateStatement, error) {
	return run(p, stmt, Transformer.TransformUpdate)
}

// Delete runs every TransformDelete over stmt.
func (p Pipeline) Delete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	return run(p, stmt, Transformer.TransformDelete)
}

func run[T any](p Pipeline, v T, step func(Transformer, T) (T, error)) (T, error) {
	for i, t := range p {
		out, err := step(t, v)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("transformer %d (%T): %w", i, t, err)
		}
		v = out
	}
	return v, nil
}
