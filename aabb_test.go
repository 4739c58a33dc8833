package kdtree

import (
	"math"
	"testing"
)

func TestUnionAABB(t *testing.T) {
	a := AABB{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 1}}
	b := AABB{Min: Vector{-1, 2, 0.5}, Max: Vector{3, 3, 3}}

	u := UnionAABB(a, b)
	want := AABB{Min: Vector{-1, 0, 0}, Max: Vector{3, 3, 3}}
	if u != want {
		t.Fatalf("UnionAABB = %+v, want %+v", u, want)
	}
}

func TestEmptyAABBIsIdentity(t *testing.T) {
	box := AABB{Min: Vector{1, 2, 3}, Max: Vector{4, 5, 6}}
	u := UnionAABB(EmptyAABB(), box)
	if u != box {
		t.Fatalf("UnionAABB(Empty, box) = %+v, want %+v", u, box)
	}
	if !EmptyAABB().IsEmpty() {
		t.Fatal("EmptyAABB() should report IsEmpty() == true")
	}
}

func TestMaximumExtent(t *testing.T) {
	cases := []struct {
		box  AABB
		want Axis
	}{
		{AABB{Min: Vector{0, 0, 0}, Max: Vector{10, 1, 1}}, AxisX},
		{AABB{Min: Vector{0, 0, 0}, Max: Vector{1, 10, 1}}, AxisY},
		{AABB{Min: Vector{0, 0, 0}, Max: Vector{1, 1, 10}}, AxisZ},
	}
	for _, c := range cases {
		if got := c.box.MaximumExtent(); got != c.want {
			t.Errorf("MaximumExtent(%+v) = %v, want %v", c.box, got, c.want)
		}
	}
}

func TestIntersectPHitsAndMisses(t *testing.T) {
	box := AABB{Min: Vector{-1, -1, -1}, Max: Vector{1, 1, 1}}

	ray := NewRay(Vector{-5, 0, 0}, Vector{1, 0, 0})
	t0, t1, hit := box.IntersectP(ray.Origin, ray.invDirection(), ray.TMin, ray.TMax)
	if !hit {
		t.Fatal("expected hit along +X")
	}
	if math.Abs(t0-4) > 1e-9 || math.Abs(t1-6) > 1e-9 {
		t.Errorf("got t0=%v t1=%v, want t0=4 t1=6", t0, t1)
	}

	miss := NewRay(Vector{-5, 5, 0}, Vector{1, 0, 0})
	if _, _, hit := box.IntersectP(miss.Origin, miss.invDirection(), miss.TMin, miss.TMax); hit {
		t.Fatal("expected miss for a ray passing above the box")
	}
}

func TestIntersectPAxisAlignedInfiniteInverse(t *testing.T) {
	box := AABB{Min: Vector{-1, -1, -1}, Max: Vector{1, 1, 1}}

	// A ray with zero Y/Z direction components produces ±Inf inverse
	// direction components; the slab test must still behave correctly.
	ray := NewRay(Vector{-5, 0, 0}, Vector{1, 0, 0})
	invDir := ray.invDirection()
	if !math.IsInf(invDir.Y, 1) || !math.IsInf(invDir.Z, 1) {
		t.Fatalf("expected +Inf inverse direction components, got %+v", invDir)
	}
	if _, _, hit := box.IntersectP(ray.Origin, invDir, ray.TMin, ray.TMax); !hit {
		t.Fatal("axis-aligned ray through box center should hit")
	}

	originOutsideSlab := NewRay(Vector{-5, 5, 0}, Vector{1, 0, 0})
	if _, _, hit := box.IntersectP(originOutsideSlab.Origin, originOutsideSlab.invDirection(), originOutsideSlab.TMin, originOutsideSlab.TMax); hit {
		t.Fatal("axis-aligned ray outside the Y slab should miss")
	}
}

func TestSurfaceArea(t *testing.T) {
	box := AABB{Min: Vector{0, 0, 0}, Max: Vector{2, 3, 4}}
	got := box.SurfaceArea()
	want := 2 * (2*3 + 2*4 + 3*4)
	if math.Abs(got-float64(want)) > 1e-9 {
		t.Fatalf("SurfaceArea = %v, want %v", got, want)
	}
}
