// Package primitives provides a handful of concrete shapes implementing
// kdtrace.Primitive, enough to exercise the accelerator without pulling
// in a full scene-description format.
package primitives

import (
	"math"

	kdtree "github.com/mirstar13/kdtrace"
)

// Sphere is a fully analytic, already-refined primitive: CanIntersect
// always reports true.
type Sphere struct {
	Center kdtree.Vector
	Radius float64
}

func (s *Sphere) WorldBound() kdtree.AABB {
	r := kdtree.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return kdtree.AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s *Sphere) CanIntersect() bool { return true }

func (s *Sphere) Intersect(ray *kdtree.Ray, hit *kdtree.Hit) bool {
	t, ok := s.solve(ray)
	if !ok {
		return false
	}
	point := ray.At(t)
	ray.TMax = t
	hit.T = t
	hit.Point = point
	hit.Normal = point.Sub(s.Center).Scale(1 / s.Radius)
	hit.Primitive = s
	return true
}

func (s *Sphere) IntersectP(ray *kdtree.Ray) bool {
	_, ok := s.solve(ray)
	return ok
}

// solve finds the nearest root of the sphere's quadratic inside
// [ray.TMin, ray.TMax].
func (s *Sphere) solve(ray *kdtree.Ray) (float64, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := dot(ray.Direction, ray.Direction)
	b := 2 * dot(oc, ray.Direction)
	c := dot(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	t0 := (-b - sqrtD) / (2 * a)
	if t0 >= ray.TMin && t0 <= ray.TMax {
		return t0, true
	}
	t1 := (-b + sqrtD) / (2 * a)
	if t1 >= ray.TMin && t1 <= ray.TMax {
		return t1, true
	}
	return 0, false
}

func dot(a, b kdtree.Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
