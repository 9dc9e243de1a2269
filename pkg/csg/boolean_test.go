package csg

import (
	"math"
	"testing"
)

const testEps = 1e-6

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// TestUnionOffsetCubes unions two unit cubes offset along X by 0.5.
// Union volume = 1 + 1 - 0.5 = 1.5.
func TestUnionOffsetCubes(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(0.5, 0, 0), NewVector(1, 1, 1))

	result := UnionPolygons(a, b)
	vol := boxVolume(result)
	if !approx(vol, 1.5, 1e-3) {
		t.Fatalf("union bounding volume = %v, want 1.5", vol)
	}
}

// TestIntersectionOffsetCubes intersects the same offset cubes: the
// overlap is a 0.5×1×1 box, volume 0.5.
func TestIntersectionOffsetCubes(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(0.5, 0, 0), NewVector(1, 1, 1))

	result := IntersectionPolygons(a, b)
	if len(result) == 0 {
		t.Fatal("expected non-empty intersection")
	}
	vol := boxVolume(result)
	if !approx(vol, 0.5, 1e-3) {
		t.Fatalf("intersection bounding volume = %v, want 0.5", vol)
	}
}

// TestDifferenceOffsetCubes subtracts B from A for the same offset cubes:
// A-B is a 0.5×1×1 box.
func TestDifferenceOffsetCubes(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(0.5, 0, 0), NewVector(1, 1, 1))

	result := DifferencePolygons(a, b)
	if len(result) == 0 {
		t.Fatal("expected non-empty difference")
	}
	vol := boxVolume(result)
	if !approx(vol, 0.5, 1e-3) {
		t.Fatalf("difference bounding volume = %v, want 0.5", vol)
	}
}

// TestDifferenceSamePose checks that a cube minus itself leaves no
// polygons.
func TestDifferenceSamePose(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))

	result := DifferencePolygons(a, b)
	if len(result) != 0 {
		t.Fatalf("expected empty difference, got %d polygons", len(result))
	}
}

// TestUnionDisjointCubes checks that no splitting occurs between two
// disconnected solids, so the union's polygon count equals the sum of
// the inputs'.
func TestUnionDisjointCubes(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(10, 0, 0), NewVector(1, 1, 1))

	result := UnionPolygons(a, b)
	if len(result) != len(a)+len(b) {
		t.Fatalf("disjoint union polygon count = %d, want %d", len(result), len(a)+len(b))
	}
}

// TestRoundTripEmptyOperand checks the identity laws for each Boolean
// operator against the empty set.
func TestRoundTripEmptyOperand(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	var empty []Polygon

	if got := UnionPolygons(a, empty); len(got) != len(a) {
		t.Errorf("union(A, empty) has %d polygons, want %d", len(got), len(a))
	}
	if got := IntersectionPolygons(a, empty); len(got) != 0 {
		t.Errorf("intersection(A, empty) has %d polygons, want 0", len(got))
	}
	if got := DifferencePolygons(a, empty); len(got) != len(a) {
		t.Errorf("difference(A, empty) has %d polygons, want %d", len(got), len(a))
	}
	if got := DifferencePolygons(empty, a); len(got) != 0 {
		t.Errorf("difference(empty, A) has %d polygons, want 0", len(got))
	}
}

// TestUnionSelf covers the A∪A round-trip law: result should occupy the
// same bounding volume as A.
func TestUnionSelf(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(2, 3, 4))
	result := UnionPolygons(a, a)
	vol := boxVolume(result)
	want := boxVolume(a)
	if !approx(vol, want, 1e-3) {
		t.Fatalf("union(A,A) bounding volume = %v, want %v", vol, want)
	}
}

// TestIntersectionSelf covers the A∩A round-trip law.
func TestIntersectionSelf(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(2, 3, 4))
	result := IntersectionPolygons(a, a)
	vol := boxVolume(result)
	want := boxVolume(a)
	if !approx(vol, want, 1e-3) {
		t.Fatalf("intersection(A,A) bounding volume = %v, want %v", vol, want)
	}
}

func TestVertexCountSanity(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(0.5, 0, 0), NewVector(1, 1, 1))
	for _, result := range [][]Polygon{
		UnionPolygons(a, b),
		IntersectionPolygons(a, b),
		DifferencePolygons(a, b),
	} {
		for i, p := range result {
			if len(p.Vertices) < 3 {
				t.Errorf("polygon %d has %d vertices, want >= 3", i, len(p.Vertices))
			}
		}
	}
}

func TestCoplanarityInvariant(t *testing.T) {
	a := newBox(NewVector(0, 0, 0), NewVector(1, 1, 1))
	b := newBox(NewVector(0.5, 0, 0), NewVector(1, 1, 1))
	result := UnionPolygons(a, b)
	for i, p := range result {
		for _, v := range p.Vertices {
			d := math.Abs(p.Plane.Normal.Dot(v) - p.Plane.W)
			if d > Tolerance*10 {
				t.Errorf("polygon %d vertex %+v off-plane by %v", i, v, d)
			}
		}
	}
}
