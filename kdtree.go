package kdtree

// KdTree is an immutable spatial index over a fixed set of primitives,
// built once by Build and safe for concurrent read-only queries
// thereafter. It owns the flat node array, the shared primitive-index
// pool leaves reference, and the primitive handles themselves.
type KdTree struct {
	nodes      []kdNode
	primIndex  []int32 // concatenated index pool referenced by multi-primitive leaves
	primitives []Primitive
	bounds     AABB
	cfg        BuildConfig
	Stats      BuildStats
}

// Build constructs a kd-tree over prims using the Surface Area Heuristic.
// An empty prims slice yields a tree holding a single empty leaf. Every
// primitive must report CanIntersect() == true or Build fails with
// *ErrUnrefinedPrimitive.
func Build(prims []Primitive, cfg BuildConfig) (*KdTree, error) {
	for i, p := range prims {
		if !p.CanIntersect() {
			return nil, &ErrUnrefinedPrimitive{Index: i}
		}
	}

	b := newBuilder(prims, cfg)
	tree, err := b.build()
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// WorldBound returns the union of every primitive's bounding box — the
// spatial region the root node covers.
func (t *KdTree) WorldBound() AABB { return t.bounds }

// CanIntersect always reports true: a built KdTree is itself a valid
// Primitive, the way pbrt's KdTreeAccel::CanIntersect() does, so trees
// can be nested inside a coarser accelerator.
func (t *KdTree) CanIntersect() bool { return true }

// PrimitiveCount returns the number of primitives the tree was built
// over.
func (t *KdTree) PrimitiveCount() int { return len(t.primitives) }
