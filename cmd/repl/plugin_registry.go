package main

import "github.com/bawdo/sqlcraft/plugins"

// pluginEntry represents an enabled plugin in the registry.
type pluginEntry struct {
	name    string                     // "softdelete"
	factory func() plugins.Transformer // creates a fresh instance per manager
	status  func() string              // human-readable status for display
}

// pluginRegistry holds the currently enabled plugins.
type pluginRegistry struct {
	entries []pluginEntry // plugins apply in registration order
}

// register adds or replaces a plugin by name.
func (r *pluginRegistry) register(entry pluginEntry) {
	for i, e := range r.entries {
		if e.name == entry.name {
			r.entries[i] = entry
			return
		}
	}
	r.entries = append(r.entries, entry)
}

// deregister removes a plugin by name. Returns false if not found.
func (r *pluginRegistry) deregister(name string) bool {
	for i, e := range r.entries {
		if e.name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// pipeline builds fresh transformer instances in registration order.
func (r *pluginRegistry) pipeline() plugins.Pipeline {
	p := make(plugins.Pipeline, len(r.entries))
	for i, e := range r.entries {
		p[i] = e.factory()
	}
	return p
}
