package primitives

import (
	"testing"

	kdtree "github.com/mirstar13/kdtrace"
)

func TestTriangleIntersectHit(t *testing.T) {
	tri := &Triangle{
		A: kdtree.Vector{X: -1, Y: -1, Z: 0},
		B: kdtree.Vector{X: 1, Y: -1, Z: 0},
		C: kdtree.Vector{X: 0, Y: 1, Z: 0},
	}
	ray := kdtree.NewRay(kdtree.Vector{X: 0, Y: 0, Z: -5}, kdtree.Vector{X: 0, Y: 0, Z: 1})

	var hit kdtree.Hit
	if !tri.Intersect(&ray, &hit) {
		t.Fatal("expected the ray through the triangle's interior to hit")
	}
	if hit.T != 5 {
		t.Fatalf("hit.T = %v, want 5", hit.T)
	}
}

func TestTriangleIntersectMissOutsideEdges(t *testing.T) {
	tri := &Triangle{
		A: kdtree.Vector{X: -1, Y: -1, Z: 0},
		B: kdtree.Vector{X: 1, Y: -1, Z: 0},
		C: kdtree.Vector{X: 0, Y: 1, Z: 0},
	}
	ray := kdtree.NewRay(kdtree.Vector{X: 10, Y: 10, Z: -5}, kdtree.Vector{X: 0, Y: 0, Z: 1})

	var hit kdtree.Hit
	if tri.Intersect(&ray, &hit) {
		t.Fatal("expected a miss well outside the triangle's edges")
	}
}

func TestTriangleIntersectParallelRayMisses(t *testing.T) {
	tri := &Triangle{
		A: kdtree.Vector{X: -1, Y: -1, Z: 0},
		B: kdtree.Vector{X: 1, Y: -1, Z: 0},
		C: kdtree.Vector{X: 0, Y: 1, Z: 0},
	}
	ray := kdtree.NewRay(kdtree.Vector{X: 0, Y: 0, Z: -5}, kdtree.Vector{X: 1, Y: 0, Z: 0})

	var hit kdtree.Hit
	if tri.Intersect(&ray, &hit) {
		t.Fatal("a ray parallel to the triangle's plane should miss")
	}
}
