package kdtree

import "testing"

func TestKdTreeIsItselfAPrimitive(t *testing.T) {
	tree, err := Build([]Primitive{boxAt(0, 0, 0, 1)}, DefaultBuildConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var outer Primitive = tree
	if !outer.CanIntersect() {
		t.Fatal("a built KdTree must report CanIntersect() == true")
	}
	if outer.WorldBound() != tree.bounds {
		t.Fatalf("WorldBound() through the Primitive interface disagrees with the tree's own bounds")
	}
}

func TestPrimitiveCount(t *testing.T) {
	prims := []Primitive{boxAt(0, 0, 0, 1), boxAt(10, 0, 0, 1), boxAt(20, 0, 0, 1)}
	tree, err := Build(prims, DefaultBuildConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tree.PrimitiveCount() != len(prims) {
		t.Fatalf("PrimitiveCount() = %d, want %d", tree.PrimitiveCount(), len(prims))
	}
}
