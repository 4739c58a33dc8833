package kdtree

// kdToDo is one saved frame of deferred work: a node to visit later and
// the parametric ray interval valid at that node. Ported from pbrt's
// KdTreeAccel::Intersect (original_source/src/accelerators/kdtreeaccel.h),
// which avoids a call-stack recursion by keeping this as an explicit
// fixed-size array on the stack instead.
type kdToDo struct {
	node       int32
	tMin, tMax float64
}

// Intersect walks the tree looking for the closest primitive the ray
// hits, narrowing ray.TMax as candidates are found the way a Primitive's
// own Intersect is expected to. It reports whether any primitive was
// hit, leaving hit populated with the closest one.
func (t *KdTree) Intersect(ray *Ray, hit *Hit) bool {
	if t.bounds.IsEmpty() {
		return false
	}
	tMin, tMax, ok := t.bounds.IntersectP(ray.Origin, ray.invDirection(), ray.TMin, ray.TMax)
	if !ok {
		return false
	}
	invDir := ray.invDirection()

	var todo [todoBufferSize]kdToDo
	todoPos := 0

	hitAnything := false
	nodeIndex := int32(0)

	for nodeIndex != -1 {
		if ray.TMax < tMin {
			break
		}
		node := &t.nodes[nodeIndex]

		if !node.isLeaf() {
			axis := node.splitAxis()
			splitPos := node.splitPosition()
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
			continue
		}

		if t.intersectLeaf(node, ray, hit) {
			hitAnything = true
		}

		if todoPos == 0 {
			break
		}
		todoPos--
		nodeIndex = todo[todoPos].node
		tMin = todo[todoPos].tMin
		tMax = todo[todoPos].tMax
	}

	return hitAnything
}

func (t *KdTree) intersectLeaf(node *kdNode, ray *Ray, hit *Hit) bool {
	hitAnything := false
	n := node.primCount()
	if n == 1 {
		if t.primitives[node.singlePrimIndex()].Intersect(ray, hit) {
			hitAnything = true
		}
		return hitAnything
	}
	offset := node.poolOffset()
	for i := int32(0); i < n; i++ {
		if t.primitives[t.primIndex[offset+i]].Intersect(ray, hit) {
			hitAnything = true
		}
	}
	return hitAnything
}

// IntersectP reports only whether the ray hits anything at all along
// [ray.TMin, ray.TMax], stopping at the first occluder found — the
// "any hit" query shadow rays use, where the caller doesn't need to know
// which primitive or how far away it is.
func (t *KdTree) IntersectP(ray *Ray) bool {
	if t.bounds.IsEmpty() {
		return false
	}
	tMin, tMax, ok := t.bounds.IntersectP(ray.Origin, ray.invDirection(), ray.TMin, ray.TMax)
	if !ok {
		return false
	}
	invDir := ray.invDirection()

	var todo [todoBufferSize]kdToDo
	todoPos := 0

	nodeIndex := int32(0)
	for nodeIndex != -1 {
		node := &t.nodes[nodeIndex]

		if node.isLeaf() {
			n := node.primCount()
			if n == 1 {
				if t.primitives[node.singlePrimIndex()].IntersectP(ray) {
					return true
				}
			} else {
				offset := node.poolOffset()
				for i := int32(0); i < n; i++ {
					if t.primitives[t.primIndex[offset+i]].IntersectP(ray) {
						return true
					}
				}
			}
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

	return false
}
