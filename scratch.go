package kdtree

// buildScratch holds the working buffers the recursive builder reuses
// across recursion levels: bound-edge events for the axis currently being
// swept, and two primitive-index partition arrays. These are allocated
// once per build. prims0 is only used within a single partition call and
// its contents are copied out before the call returns; prims1 gives each
// depth level its own disjoint subrange, so saved right-side lists never
// alias across recursive calls.
type buildScratch struct {
	edges  []boundEdge // sized 2*N, reused for whichever axis is being swept
	prims0 []int32     // sized N, below-split partition scratch
	prims1 []int32     // sized N*(maxDepth+1), above-split partition scratch
}

func newBuildScratch(primCount, maxDepth int) *buildScratch {
	return &buildScratch{
		edges:  make([]boundEdge, 2*primCount),
		prims0: make([]int32, primCount),
		prims1: make([]int32, primCount*(maxDepth+1)),
	}
}
