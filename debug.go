package kdtree

// TraceStep records one node visited while tracing a ray, for tools that
// want to watch traversal happen rather than just get the final hit.
type TraceStep struct {
	NodeIndex   int32
	TMin, TMax  float64
	Leaf        bool
	Axis        Axis    // valid when !Leaf
	SplitPos    float64 // valid when !Leaf
	PrimsTested int     // valid when Leaf
}

// Trace re-runs the same stackless walk Intersect uses, but records every
// node visited instead of stopping at the first or closest hit. It never
// mutates ray. Intended for interactive inspection tools, not the hot
// path — Intersect and IntersectP don't pay for this bookkeeping.
func (t *KdTree) Trace(ray Ray) []TraceStep {
	var steps []TraceStep
	if t.bounds.IsEmpty() {
		return steps
	}
	tMin, tMax, ok := t.bounds.IntersectP(ray.Origin, ray.invDirection(), ray.TMin, ray.TMax)
	if !ok {
		return steps
	}
	invDir := ray.invDirection()

	var todo [todoBufferSize]kdToDo
	todoPos := 0
	nodeIndex := int32(0)

	for nodeIndex != -1 {
		if ray.TMax < tMin {
			break
		}
		node := &t.nodes[nodeIndex]

		if node.isLeaf() {
			steps = append(steps, TraceStep{
				NodeIndex:   nodeIndex,
				TMin:        tMin,
				TMax:        tMax,
				Leaf:        true,
				PrimsTested: int(node.primCount()),
			})

			if todoPos == 0 {
				break
			}
			todoPos--
			nodeIndex = todo[todoPos].node
			tMin = todo[todoPos].tMin
			tMax = todo[todoPos].tMax
			continue
		}

		axis := node.splitAxis()
		splitPos := node.splitPosition()
		steps = append(steps, TraceStep{
			NodeIndex: nodeIndex,
			TMin:      tMin,
			TMax:      tMax,
			Leaf:      false,
			Axis:      axis,
			SplitPos:  splitPos,
		})

		origin := ray.Origin.At(axis)
		tPlane := (splitPos - origin) * invDir.At(axis)
		belowFirst := origin < splitPos || (origin == splitPos && ray.Direction.At(axis) <= 0)

		var first, second int32
		if belowFirst {
			first, second = nodeIndex+1, node.rightChild()
		} else {
			first, second = node.rightChild(), nodeIndex+1
		}

		switch {
		case tPlane > tMax || tPlane <= 0:
			nodeIndex = first
		case tPlane < tMin:
			nodeIndex = second
		default:
			todo[todoPos] = kdToDo{node: second, tMin: tPlane, tMax: tMax}
			todoPos++
			nodeIndex = first
			tMax = tPlane
		}
	}

	return steps
}
