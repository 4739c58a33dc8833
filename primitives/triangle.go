package primitives

import (
	"math"

	kdtree "github.com/mirstar13/kdtrace"
)

// Triangle is a single fully analytic triangle, tested against a ray
// with the Möller–Trumbore algorithm.
type Triangle struct {
	A, B, C kdtree.Vector
}

const triangleEpsilon = 1e-9

func (tr *Triangle) WorldBound() kdtree.AABB {
	b := kdtree.UnionPoint(kdtree.EmptyAABB(), tr.A)
	b = kdtree.UnionPoint(b, tr.B)
	b = kdtree.UnionPoint(b, tr.C)
	return b
}

func (tr *Triangle) CanIntersect() bool { return true }

func (tr *Triangle) Intersect(ray *kdtree.Ray, hit *kdtree.Hit) bool {
	t, normal, ok := tr.solve(ray)
	if !ok {
		return false
	}
	ray.TMax = t
	hit.T = t
	hit.Point = ray.At(t)
	hit.Normal = normal
	hit.Primitive = tr
	return true
}

func (tr *Triangle) IntersectP(ray *kdtree.Ray) bool {
	_, _, ok := tr.solve(ray)
	return ok
}

func (tr *Triangle) solve(ray *kdtree.Ray) (float64, kdtree.Vector, bool) {
	edge1 := tr.B.Sub(tr.A)
	edge2 := tr.C.Sub(tr.A)
	pvec := cross(ray.Direction, edge2)
	det := dot(edge1, pvec)

	if det > -triangleEpsilon && det < triangleEpsilon {
		return 0, kdtree.Vector{}, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(tr.A)
	u := dot(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, kdtree.Vector{}, false
	}

	qvec := cross(tvec, edge1)
	v := dot(ray.Direction, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, kdtree.Vector{}, false
	}

	t := dot(edge2, qvec) * invDet
	if t < ray.TMin || t > ray.TMax {
		return 0, kdtree.Vector{}, false
	}

	normal := normalize(cross(edge1, edge2))
	return t, normal, true
}

func cross(a, b kdtree.Vector) kdtree.Vector {
	return kdtree.Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v kdtree.Vector) kdtree.Vector {
	length := dot(v, v)
	if length < triangleEpsilon {
		return v
	}
	inv := 1 / math.Sqrt(length)
	return kdtree.Vector{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}
