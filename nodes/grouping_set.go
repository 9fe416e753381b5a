package nodes

// GroupingSetType identifies the type of advanced grouping.
type GroupingSetType int

const (
	Cube GroupingSetType = iota
	Rollup
	GroupingSets
)

// GroupingSetNode represents CUBE(...), ROLLUP(...), or GROUPING SETS((...), ...).
type GroupingSetNode struct {
	Type    GroupingSetType
	Columns []Node   // used by CUBE/ROLLUP (flat column list)
	Sets    [][]Node // used by GROUPING SETS (list of column groups)
}

// Grouping set type SQL keywords.
var groupingSetTypeSQL = [...]string{
	Cube:         "CUBE",
	Rollup:       "ROLLUP",
	GroupingSets: "GROUPING SETS",
}

func (n *GroupingSetNode) Serialize(s *Serializer) {
	s.WriteSQL(groupingSetTypeSQL[n.Type])
	s.WriteSQL("(")
	if n.Type == GroupingSets {
		// GROUPING SETS ((a, b), (c), ())
		sets := make([]Node, len(n.Sets))
		for i, set := range n.Sets {
			sets[i] = parenNode{inner: &joinedNode{items: set, sep: ", "}}
		}
		s.Write(commaList(sets))
	} else {
		s.Write(commaList(n.Columns))
	}
	s.WriteSQL(")")
}

// NewCube creates a CUBE(cols...) grouping set.
func NewCube(cols ...Node) *GroupingSetNode {
	return &GroupingSetNode{Type: Cube, Columns: cols}
}

// NewRollup creates a ROLLUP(cols...) grouping set.
func NewRollup(cols ...Node) *GroupingSetNode {
	return &GroupingSetNode{Type: Rollup, Columns: cols}
}

// NewGroupingSets creates a GROUPING SETS(sets...) grouping set.
func NewGroupingSets(sets ...[]Node) *GroupingSetNode {
	return &GroupingSetNode{Type: GroupingSets, Sets: sets}
}
