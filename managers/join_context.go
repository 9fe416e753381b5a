package managers

import "github.com/bawdo/sqlcraft/nodes"

// JoinContext is returned by SelectManager.Join() and holds the join until
// its condition is supplied via On().
type JoinContext struct {
	manager *SelectManager
	join    *nodes.JoinNode
}

// On sets the join condition and returns the SelectManager for
// continued method chaining.
func (jc *JoinContext) On(condition nodes.Node) *SelectManager {
	jc.join.On = condition
	return jc.manager
}
