package kdtree

import "math"

// AABB is an axis-aligned bounding box. Empty iff any Min component
// exceeds the matching Max component.
type AABB struct {
	Min, Max Vector
}

// EmptyAABB returns a box with no volume, suitable as the identity element
// for repeated unions (folding boxes with UnionAABB or points with
// UnionPoint).
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vector{inf, inf, inf},
		Max: Vector{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether Min exceeds Max along any axis. A box that is
// flat along an axis (Min == Max there) is not empty.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// UnionAABB returns the smallest box containing both a and b.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		Min: Vector{minFloat(a.Min.X, b.Min.X), minFloat(a.Min.Y, b.Min.Y), minFloat(a.Min.Z, b.Min.Z)},
		Max: Vector{maxFloat(a.Max.X, b.Max.X), maxFloat(a.Max.Y, b.Max.Y), maxFloat(a.Max.Z, b.Max.Z)},
	}
}

// UnionPoint returns the smallest box containing b and p.
func UnionPoint(b AABB, p Vector) AABB {
	return AABB{
		Min: Vector{minFloat(b.Min.X, p.X), minFloat(b.Min.Y, p.Y), minFloat(b.Min.Z, p.Z)},
		Max: Vector{maxFloat(b.Max.X, p.X), maxFloat(b.Max.Y, p.Y), maxFloat(b.Max.Z, p.Z)},
	}
}

// Diagonal returns the vector from Min to Max.
func (b AABB) Diagonal() Vector {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the total surface area of the box's six faces, the
// quantity the SAH cost model weighs candidate splits by.
func (b AABB) SurfaceArea() float64 {
	d := b.Diagonal()
	return 2 * (d.X*d.Y + d.X*d.Z + d.Y*d.Z)
}

// MaximumExtent returns the axis along which the box is longest.
func (b AABB) MaximumExtent() Axis {
	d := b.Diagonal()
	if d.X > d.Y && d.X > d.Z {
		return AxisX
	}
	if d.Y > d.Z {
		return AxisY
	}
	return AxisZ
}

// Centroid returns the box's geometric center.
func (b AABB) Centroid() Vector {
	return b.Min.Add(b.Max).Scale(0.5)
}

// IntersectP clips the ray's parametric range against the box using the
// slab method with a precomputed per-axis inverse direction. It returns
// the clipped [t0, t1] interval and whether the ray hits the box at all.
// Taking the already-precomputed invDir means the traversal's hot loop
// computes it once per ray, not once per box test.
func (b AABB) IntersectP(origin, invDir Vector, tMin, tMax float64) (t0, t1 float64, hit bool) {
	t0, t1 = tMin, tMax

	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		o := origin.At(a)
		inv := invDir.At(a)

		tNear := (b.Min.At(a) - o) * inv
		tFar := (b.Max.At(a) - o) * inv
		if inv < 0 {
			tNear, tFar = tFar, tNear
		}

		if tNear > t0 {
			t0 = tNear
		}
		if tFar < t1 {
			t1 = tFar
		}
		if t0 > t1 {
			return t0, t1, false
		}
	}
	return t0, t1, true
}

// Contains reports whether p lies within the box, inclusive of the
// boundary.
func (b AABB) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
