package tessellate

import (
	"testing"

	"github.com/chazu/csgkit/pkg/adapter"
	"github.com/chazu/csgkit/pkg/csg"
)

func boxPolygons(min, size csg.Vector) []csg.Polygon {
	p := func(fx, fy, fz float64) csg.Vector {
		return csg.NewVector(min.X+fx*size.X, min.Y+fy*size.Y, min.Z+fz*size.Z)
	}
	faces := [6][4]csg.Vector{
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)},
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)},
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)},
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)},
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)},
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)},
	}
	polygons := make([]csg.Polygon, 6)
	for i := range faces {
		polygons[i] = csg.NewPolygon(faces[i][:])
	}
	return polygons
}

func TestTessellateEmptyEntities(t *testing.T) {
	meshes, err := Tessellate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected no meshes, got %d", len(meshes))
	}
}

func TestTessellateBoxProducesTwelveTriangles(t *testing.T) {
	mesh := adapter.CreateMesh(boxPolygons(csg.Vector{}, csg.NewVector(1, 1, 1)))
	entity := adapter.CreateEntity("cube", []adapter.Mesh{mesh}, nil)

	meshes, err := Tessellate([]adapter.Entity{entity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 tessellated mesh, got %d", len(meshes))
	}
	got := meshes[0]
	if got.PartName != "cube" {
		t.Errorf("PartName = %q, want %q", got.PartName, "cube")
	}
	if got.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12 (two per box face)", got.TriangleCount())
	}
	if got.VertexCount() != 24 {
		t.Errorf("VertexCount() = %d, want 24 (4 per face, 6 faces)", got.VertexCount())
	}
}

func TestTessellateSkipsEmptyMeshes(t *testing.T) {
	entity := adapter.CreateEntity("empty", []adapter.Mesh{{}}, nil)

	meshes, err := Tessellate([]adapter.Entity{entity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected no meshes for an empty adapter mesh, got %d", len(meshes))
	}
}

func TestTessellateCarriesColor(t *testing.T) {
	mesh := adapter.CreateMesh(boxPolygons(csg.Vector{}, csg.NewVector(1, 1, 1)))
	mesh.Color = 0xFF00FF00
	entity := adapter.CreateEntity("green-cube", []adapter.Mesh{mesh}, nil)

	meshes, err := Tessellate([]adapter.Entity{entity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meshes[0].Color != 0xFF00FF00 {
		t.Errorf("Color = %x, want %x", meshes[0].Color, 0xFF00FF00)
	}
}

func TestTessellateMultipleEntitiesAssignDistinctPartNames(t *testing.T) {
	mesh1 := adapter.CreateMesh(boxPolygons(csg.Vector{}, csg.NewVector(1, 1, 1)))
	mesh2 := adapter.CreateMesh(boxPolygons(csg.NewVector(5, 0, 0), csg.NewVector(1, 1, 1)))
	entities := []adapter.Entity{
		adapter.CreateEntity("left", []adapter.Mesh{mesh1}, nil),
		adapter.CreateEntity("right", []adapter.Mesh{mesh2}, nil),
	}

	meshes, err := Tessellate(entities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].PartName != "left" || meshes[1].PartName != "right" {
		t.Errorf("PartNames = %q, %q, want left, right", meshes[0].PartName, meshes[1].PartName)
	}
}
