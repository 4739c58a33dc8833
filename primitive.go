package kdtree

// Hit records the result of a successful ray/primitive intersection.
// Callers that need material or UV data attach it to their own Primitive
// implementation and recover it through a type assertion on
// Hit.Primitive.
type Hit struct {
	T         float64
	Point     Vector
	Normal    Vector
	Primitive Primitive
}

// Primitive is the external, opaque geometric object the accelerator
// holds. The core never inspects a primitive's shape, only its bounding
// box and its ability to intersect a ray. CanIntersect must be true for
// every primitive handed to Build — primitives that need refinement
// (e.g. a subdivision surface) are the caller's responsibility to refine
// first.
type Primitive interface {
	WorldBound() AABB
	CanIntersect() bool
	Intersect(ray *Ray, hit *Hit) bool
	IntersectP(ray *Ray) bool
}
