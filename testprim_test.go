package kdtree

// testBox is a minimal axis-aligned-box Primitive used only by this
// package's own tests, so the tests don't need to import anything that
// would import this package back.
type testBox struct {
	bound AABB
	tag   int
}

func (b *testBox) WorldBound() AABB  { return b.bound }
func (b *testBox) CanIntersect() bool { return true }

func (b *testBox) Intersect(ray *Ray, hit *Hit) bool {
	t0, t1, ok := b.bound.IntersectP(ray.Origin, ray.invDirection(), ray.TMin, ray.TMax)
	if !ok {
		return false
	}
	t := t0
	if t0 < ray.TMin {
		t = t1
		if t > ray.TMax {
			return false
		}
	}
	ray.TMax = t
	hit.T = t
	hit.Point = ray.At(t)
	hit.Primitive = b
	return true
}

func (b *testBox) IntersectP(ray *Ray) bool {
	_, _, ok := b.bound.IntersectP(ray.Origin, ray.invDirection(), ray.TMin, ray.TMax)
	return ok
}

// unrefinedPrim always reports CanIntersect() == false, for exercising
// Build's validation path.
type unrefinedPrim struct{}

func (unrefinedPrim) WorldBound() AABB             { return AABB{} }
func (unrefinedPrim) CanIntersect() bool           { return false }
func (unrefinedPrim) Intersect(*Ray, *Hit) bool    { return false }
func (unrefinedPrim) IntersectP(*Ray) bool         { return false }

func boxAt(x, y, z, half float64) *testBox {
	return &testBox{bound: AABB{
		Min: Vector{x - half, y - half, z - half},
		Max: Vector{x + half, y + half, z + half},
	}}
}
