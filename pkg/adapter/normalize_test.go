package adapter

import (
	"math"
	"testing"

	"github.com/chazu/csgkit/pkg/csg"
)

func TestBoundsOfEmptyIsNotOK(t *testing.T) {
	_, _, ok := boundsOf(nil, nil)
	if ok {
		t.Fatal("expected ok=false for empty mesh groups")
	}
}

func TestNormalizationTransformsRoundTrip(t *testing.T) {
	min := csg.NewVector(100, 200, 300)
	max := csg.NewVector(104, 202, 301)

	forward, inverse := normalizationTransforms(min, max)

	corner := min
	forward.Transform(&corner)
	inverse.Transform(&corner)

	if !corner.ApproxEqual(min, 1e-6) {
		t.Fatalf("round trip corner = %+v, want %+v", corner, min)
	}
}

func TestNormalizationTransformsCentersAndScales(t *testing.T) {
	min := csg.NewVector(-1, -1, -1)
	max := csg.NewVector(1, 1, 1)

	forward, _ := normalizationTransforms(min, max)

	center := min.Add(max).Scale(0.5)
	forward.Transform(&center)
	if !center.ApproxEqual(csg.Vector{}, 1e-9) {
		t.Errorf("center did not map to origin, got %+v", center)
	}

	corner := max
	forward.Transform(&corner)
	if math.Abs(corner.Length()-math.Sqrt(3)) > 1e-9 {
		t.Errorf("max corner length after normalization = %v, want sqrt(3) for edge-2 cube", corner.Length())
	}
}

func TestNormalizationDegenerateBoundsIsIdentity(t *testing.T) {
	forward, inverse := normalizationTransforms(csg.Vector{}, csg.Vector{})
	if forward != Identity() || inverse != Identity() {
		t.Fatal("expected identity transforms for a zero-size bounding box")
	}
}

func TestNormalizeOperandsLeavesInputsUntouched(t *testing.T) {
	a := []Mesh{CreateMesh(boxPolygons(csg.Vector{}, csg.NewVector(1, 1, 1)))}
	b := []Mesh{CreateMesh(boxPolygons(csg.NewVector(5, 5, 5), csg.NewVector(1, 1, 1)))}

	originalA := a[0].Polygons[0].Vertices[0]

	_, _, _ = normalizeOperands(a, b)

	if a[0].Polygons[0].Vertices[0] != originalA {
		t.Fatal("normalizeOperands mutated the caller's mesh slice")
	}
}
