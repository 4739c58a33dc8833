package kdtree

// BuildConfig controls the SAH cost model and termination rules used by
// Build. Field names and defaults are carried over from pbrt's
// KdTreeAccel constructor (original_source/src/accelerators/kdtreeaccel.h:
// icost=80, scost=1, ebonus=0.5f, maxp=1, maxDepth=-1) and spelled out as
// a documented struct rather than positional parameters.
type BuildConfig struct {
	// IntersectCost is the per-primitive cost term C_isect in the SAH.
	IntersectCost float64
	// TraversalCost is the per-interior-node cost term C_trav in the SAH.
	TraversalCost float64
	// EmptyBonus is the fractional discount (0..1) applied to splits that
	// leave one child empty.
	EmptyBonus float64
	// MaxPrimsPerLeaf forces a leaf once a region holds this many or
	// fewer primitives.
	MaxPrimsPerLeaf int
	// MaxDepth caps recursion. A value <= 0 means "auto": the builder
	// picks round(8 + 1.3*log2(N)), clamped to maxTraversalDepth.
	MaxDepth int
}

// DefaultBuildConfig returns the SAH constants pbrt ships with.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		IntersectCost:   80,
		TraversalCost:   1,
		EmptyBonus:      0.5,
		MaxPrimsPerLeaf: 1,
		MaxDepth:        0,
	}
}

// maxTraversalDepth caps the builder's depth, whether auto-computed or
// set through MaxDepth, so that the traversal to-do buffer's size
// strictly exceeds the deepest path a ray can take. Kept one below
// todoBufferSize so every valid build is traversable.
const maxTraversalDepth = 63

// todoBufferSize is the stackless traversal's fixed explicit work-list
// capacity.
const todoBufferSize = 64

// maxTreeNodes bounds the node array so a 30-bit index always fits the
// node-encoding payload.
const maxTreeNodes = 1 << 30

// badRefinesLimit is the number of bad refinements along one root-to-node
// path at which a node is forced into a leaf (the counter is passed down
// to both children and never reset), kept for behavioral parity with
// pbrt's KdTreeAccel.
const badRefinesLimit = 3
