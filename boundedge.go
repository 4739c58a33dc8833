package kdtree

import "sort"

// edgeKind distinguishes the start and end of a primitive's extent along
// the axis currently being swept.
type edgeKind uint8

const (
	edgeStart edgeKind = 0
	edgeEnd   edgeKind = 1
)

// boundEdge is a construction-time event: where a primitive's bounding
// interval begins or ends along the axis under consideration. Sorted by
// position, with END edges preceding START edges at equal positions: for
// a split at that position, a primitive ending there counts only toward
// the side below it and one starting there only toward the side above.
type boundEdge struct {
	position float64
	prim     int32
	kind     edgeKind
}

func (e boundEdge) isStart() bool { return e.kind == edgeStart }
func (e boundEdge) isEnd() bool   { return e.kind == edgeEnd }

// boundEdgeSorter orders edges by position, breaking ties by putting END
// edges before START edges.
type boundEdgeSorter []boundEdge

func (s boundEdgeSorter) Len() int      { return len(s) }
func (s boundEdgeSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s boundEdgeSorter) Less(i, j int) bool {
	if s[i].position == s[j].position {
		return s[i].isEnd() && s[j].isStart()
	}
	return s[i].position < s[j].position
}

func sortBoundEdges(edges []boundEdge) {
	sort.Stable(boundEdgeSorter(edges))
}
