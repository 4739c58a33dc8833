package primitives

import (
	"math"
	"testing"

	kdtree "github.com/mirstar13/kdtrace"
)

func TestSphereIntersectCenterHit(t *testing.T) {
	s := &Sphere{Center: kdtree.Vector{X: 0, Y: 0, Z: 0}, Radius: 2}
	ray := kdtree.NewRay(kdtree.Vector{X: -10, Y: 0, Z: 0}, kdtree.Vector{X: 1, Y: 0, Z: 0})

	var hit kdtree.Hit
	if !s.Intersect(&ray, &hit) {
		t.Fatal("expected a hit through the sphere's center")
	}
	if math.Abs(hit.T-8) > 1e-9 {
		t.Fatalf("hit.T = %v, want 8", hit.T)
	}
	if math.Abs(hit.Point.X+2) > 1e-9 {
		t.Fatalf("hit.Point = %+v, want the near intersection at x=-2", hit.Point)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := &Sphere{Center: kdtree.Vector{X: 0, Y: 0, Z: 0}, Radius: 1}
	ray := kdtree.NewRay(kdtree.Vector{X: -10, Y: 5, Z: 0}, kdtree.Vector{X: 1, Y: 0, Z: 0})

	var hit kdtree.Hit
	if s.Intersect(&ray, &hit) {
		t.Fatal("expected a miss for a ray passing well clear of the sphere")
	}
}

func TestSphereWorldBound(t *testing.T) {
	s := &Sphere{Center: kdtree.Vector{X: 1, Y: 2, Z: 3}, Radius: 2}
	bound := s.WorldBound()
	want := kdtree.AABB{Min: kdtree.Vector{X: -1, Y: 0, Z: 1}, Max: kdtree.Vector{X: 3, Y: 4, Z: 5}}
	if bound != want {
		t.Fatalf("WorldBound() = %+v, want %+v", bound, want)
	}
}
