package geom

import (
	"testing"
)

func TestTriangulate(t *testing.T) {
	tris := Triangulate([]*Vector3{
		{0, 0, 0},
		{0, 1, 0},
		{0, 1, 1},
	})
	if len(tris) != 1 {
		t.Error("triangle: ", tris)
	}

	tris2 := Triangulate([]*Vector3{
		{0, 0, 0},
		{0, 1, 0},
		{0, 1, 1},
		{0, 0, 1},
	})
	if len(tris2) != 2 {
		t.Error("quad: ", tris2)
	}

	// non-convex
	tris3 := Triangulate([]*Vector3{
		{0, 0, 0},
		{0, 1, 0},
		{0, 1, 1},
		{0, 0.8, 0.2},
	})
	if len(tris3) != 2 {
		t.Error("non-convex: ", tris3)
	}

	// Empty
	if len(Triangulate(nil)) != 0 {
		t.Error("not empty")
	}
}
