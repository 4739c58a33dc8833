package kdtree

import "math"

// builder holds the mutable state of a single Build call: per-primitive
// bounds are precomputed once, a shared edge buffer is swept per
// candidate axis, and nodes are appended to a growable slice as they're
// emitted.
type builder struct {
	prims      []Primitive
	cfg        BuildConfig
	primBounds []AABB
	scratch    *buildScratch
	nodes      []kdNode
	pool       []int32
	stats      BuildStats
	maxDepth   int
}

func newBuilder(prims []Primitive, cfg BuildConfig) *builder {
	if cfg.IntersectCost == 0 && cfg.TraversalCost == 0 {
		cfg = DefaultBuildConfig()
	}
	return &builder{prims: prims, cfg: cfg}
}

func (b *builder) build() (*KdTree, error) {
	n := len(b.prims)

	if n == 0 {
		var root kdNode
		root.initEmptyLeaf()
		b.stats.recordLeaf(0, 0)
		b.stats.NodeCount = 1
		b.stats.LeafCount = 1
		b.stats.EmptyLeafCount = 1
		return &KdTree{
			nodes:      []kdNode{root},
			primitives: b.prims,
			bounds:     EmptyAABB(),
			cfg:        b.cfg,
			Stats:      b.stats,
		}, nil
	}

	b.primBounds = make([]AABB, n)
	worldBounds := EmptyAABB()
	for i, p := range b.prims {
		bound := p.WorldBound()
		b.primBounds[i] = bound
		worldBounds = UnionAABB(worldBounds, bound)
	}

	b.maxDepth = b.cfg.MaxDepth
	if b.maxDepth <= 0 {
		b.maxDepth = int(math.Round(8 + 1.3*math.Log2(float64(n))))
	}
	if b.maxDepth > maxTraversalDepth {
		b.maxDepth = maxTraversalDepth
	}

	b.scratch = newBuildScratch(n, b.maxDepth)

	rootPrims := make([]int32, n)
	for i := range rootPrims {
		rootPrims[i] = int32(i)
	}

	if err := b.buildNode(worldBounds, rootPrims, b.maxDepth, 0); err != nil {
		return nil, err
	}

	b.stats.NodeCount = len(b.nodes)
	b.stats.finalize()

	return &KdTree{
		nodes:      b.nodes,
		primIndex:  b.pool,
		primitives: b.prims,
		bounds:     worldBounds,
		cfg:        b.cfg,
		Stats:      b.stats,
	}, nil
}

// splitCandidate describes the cheapest SAH split found on one axis.
type splitCandidate struct {
	found    bool
	axis     Axis
	position float64
	cost     float64
}

func (b *builder) buildNode(bounds AABB, prims []int32, depth, badRefines int) error {
	if len(b.nodes) >= maxTreeNodes {
		return &ErrTreeTooLarge{NodeCount: len(b.nodes) + 1}
	}

	leafCost := b.cfg.IntersectCost * float64(len(prims))

	if len(prims) <= b.cfg.MaxPrimsPerLeaf || depth == 0 {
		b.emitLeaf(prims, b.maxDepth-depth)
		return nil
	}

	candidate := b.selectSplit(bounds, prims)
	if !candidate.found {
		b.emitLeaf(prims, b.maxDepth-depth)
		return nil
	}

	if candidate.cost > leafCost {
		badRefines++
	}
	if (candidate.cost > 4*leafCost && len(prims) < 16) || badRefines >= badRefinesLimit {
		b.emitLeaf(prims, b.maxDepth-depth)
		return nil
	}

	left, right := b.partition(prims, candidate.axis, candidate.position)

	// Reserve the right-side list in this depth level's slice of the
	// extended scratch buffer: it must survive the entire left subtree's
	// recursion untouched, so each depth owns a disjoint subrange.
	rightSlot := b.scratch.prims1[depth*len(b.prims) : depth*len(b.prims)+len(b.prims)]
	copy(rightSlot, right)
	rightSaved := rightSlot[:len(right)]

	thisIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, kdNode{})

	boundsLeft := bounds
	boundsLeft.Max = setAxis(boundsLeft.Max, candidate.axis, candidate.position)
	if err := b.buildNode(boundsLeft, left, depth-1, badRefines); err != nil {
		return err
	}

	rightIndex := int32(len(b.nodes))
	b.nodes[thisIndex].initInterior(candidate.axis, candidate.position, rightIndex)

	boundsRight := bounds
	boundsRight.Min = setAxis(boundsRight.Min, candidate.axis, candidate.position)
	return b.buildNode(boundsRight, rightSaved, depth-1, badRefines)
}

func setAxis(v Vector, a Axis, value float64) Vector {
	switch a {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

func (b *builder) emitLeaf(prims []int32, depth int) {
	var n kdNode
	switch len(prims) {
	case 0:
		n.initEmptyLeaf()
	case 1:
		n.initSingletonLeaf(prims[0])
	default:
		n.initLeaf(int32(len(prims)), int32(len(b.pool)))
		b.pool = append(b.pool, prims...)
	}
	b.nodes = append(b.nodes, n)
	b.stats.recordLeaf(len(prims), depth)
}

// partition classifies each primitive with respect to the chosen split:
// one whose bound starts at or below pos goes left, one whose bound ends
// at or above pos goes right; a primitive straddling pos goes to both.
func (b *builder) partition(prims []int32, axis Axis, pos float64) (left, right []int32) {
	leftBuf := b.scratch.prims0[:0]
	right = make([]int32, 0, len(prims))

	for _, idx := range prims {
		bound := b.primBounds[idx]
		if bound.Min.At(axis) <= pos {
			leftBuf = append(leftBuf, idx)
		}
		if bound.Max.At(axis) >= pos {
			right = append(right, idx)
		}
	}

	left = make([]int32, len(leftBuf))
	copy(left, leftBuf)
	return left, right
}

// selectSplit tries the region's longest axis first, falling back to the
// remaining axes only when an axis has no candidate split position
// strictly inside the region at all.
func (b *builder) selectSplit(bounds AABB, prims []int32) splitCandidate {
	primary := bounds.MaximumExtent()
	order := [3]Axis{primary, (primary + 1) % 3, (primary + 2) % 3}

	for _, axis := range order {
		if c, ok := b.selectSplitForAxis(bounds, prims, axis); ok {
			return c
		}
	}
	return splitCandidate{found: false}
}

// selectSplitForAxis sweeps the sorted bound-edges for one axis and
// returns the globally cheapest candidate on that axis, regardless of
// how it compares to the leaf alternative — that comparison, and the
// bad_refines escape hatch, are the caller's responsibility (mirrors
// pbrt's KdTreeAccel::buildTree, which separates the SAH sweep from the
// leaf-vs-split decision for exactly this reason).
func (b *builder) selectSplitForAxis(bounds AABB, prims []int32, axis Axis) (splitCandidate, bool) {
	edges := b.scratch.edges[:2*len(prims)]
	for i, idx := range prims {
		pb := b.primBounds[idx]
		edges[2*i] = boundEdge{position: pb.Min.At(axis), prim: idx, kind: edgeStart}
		edges[2*i+1] = boundEdge{position: pb.Max.At(axis), prim: idx, kind: edgeEnd}
	}
	sortBoundEdges(edges)

	area := bounds.SurfaceArea()
	lo := bounds.Min.At(axis)
	hi := bounds.Max.At(axis)

	best := splitCandidate{found: false, cost: math.Inf(1)}
	numLeft, numRight := 0, len(prims)

	n := len(edges)
	for i := 0; i < n; {
		groupEnd := i + 1
		for groupEnd < n && edges[groupEnd].position == edges[i].position {
			groupEnd++
		}

		numEndsInGroup := 0
		for k := i; k < groupEnd; k++ {
			if edges[k].isEnd() {
				numEndsInGroup++
			}
		}
		numStartsInGroup := (groupEnd - i) - numEndsInGroup

		numRight -= numEndsInGroup

		t := edges[i].position
		if t > lo && t < hi {
			leftBounds := bounds
			leftBounds.Max = setAxis(leftBounds.Max, axis, t)
			rightBounds := bounds
			rightBounds.Min = setAxis(rightBounds.Min, axis, t)

			cost := sahCost(b.cfg, area, leftBounds.SurfaceArea(), rightBounds.SurfaceArea(), numLeft, numRight)
			if cost < best.cost {
				best = splitCandidate{found: true, axis: axis, position: t, cost: cost}
			}
		}

		numLeft += numStartsInGroup
		i = groupEnd
	}

	return best, best.found
}

// sahCost weighs a candidate split by the fraction of the parent's surface
// area each child covers, discounting splits that leave a child empty.
func sahCost(cfg BuildConfig, totalArea, leftArea, rightArea float64, numLeft, numRight int) float64 {
	pLeft := leftArea / totalArea
	pRight := rightArea / totalArea

	bonus := 1.0
	if numLeft == 0 || numRight == 0 {
		bonus = 1 - cfg.EmptyBonus
	}

	return cfg.TraversalCost + bonus*cfg.IntersectCost*(pLeft*float64(numLeft)+pRight*float64(numRight))
}
