package adapter

import (
	"github.com/chazu/csgkit/pkg/csg"
	"github.com/chazu/csgkit/pkg/triangulate"
)

// CreatePolygon builds a triangle from vertices selected by indices.
// Exactly 3 indices are required; anything else returns the zero Polygon
// rather than aborting the caller.
func CreatePolygon(vertices []csg.Vector, indices []int) csg.Polygon {
	if len(indices) != 3 {
		return csg.Polygon{}
	}
	return csg.NewPolygon([]csg.Vector{
		vertices[indices[0]],
		vertices[indices[1]],
		vertices[indices[2]],
	})
}

// CreateMesh wraps a polygon list as a Mesh.
func CreateMesh(polygons []csg.Polygon) Mesh {
	return Mesh{Polygons: polygons}
}

// CreatePolyline wraps a point list as a Polyline.
func CreatePolyline(vertices []csg.Vector) Polyline {
	return Polyline{Points: vertices}
}

// CreateEntity bundles a domain reference with its meshes and polylines.
func CreateEntity(domain DomainRef, meshes []Mesh, polylines []Polyline) Entity {
	return Entity{Domain: domain, Meshes: meshes, Polylines: polylines}
}

// isPolygonValid reports whether a polygon's supporting plane is
// well-formed: finite vertices and a non-degenerate normal. Mirrors
// Adapter::IsPolygonValid, generalized from triangles to arbitrary loops.
func isPolygonValid(p csg.Polygon) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	for _, v := range p.Vertices {
		if !v.IsFinite() {
			return false
		}
	}
	n := p.Vertices[1].Sub(p.Vertices[0]).Cross(p.Vertices[2].Sub(p.Vertices[0]))
	l := n.LengthSquared()
	return l >= 1e-12
}

// TransformMeshes applies matrix to every vertex of every mesh's polygons,
// in place, then drops any polygon that became degenerate under the
// transform (e.g. a singular/flattening scale).
func TransformMeshes(meshes []Mesh, matrix Matrix) {
	for mi := range meshes {
		polygons := meshes[mi].Polygons
		kept := polygons[:0]
		for _, p := range polygons {
			for i := range p.Vertices {
				matrix.Transform(&p.Vertices[i])
			}
			p.Plane = csg.PlaneFromPoints(p.Vertices[0], p.Vertices[1], p.Vertices[2])
			if isPolygonValid(p) {
				kept = append(kept, p)
			}
		}
		meshes[mi].Polygons = kept
	}
}

// TransformPolylines applies matrix to every point of every polyline, in
// place.
func TransformPolylines(polylines []Polyline, matrix Matrix) {
	for pi := range polylines {
		for i := range polylines[pi].Points {
			matrix.Transform(&polylines[pi].Points[i])
		}
	}
}

// Triangulate triangulates a planar 3-D loop, delegating to
// pkg/triangulate.
func Triangulate(loop []csg.Vector) []int {
	return triangulate.Triangulate(loop)
}

// booleanOp is the shape shared by csg.UnionPolygons, IntersectionPolygons
// and DifferencePolygons.
type booleanOp func(a, b []csg.Polygon) []csg.Polygon

// safeBoolean runs op and reports ok=false if it panics, so a single
// geometrically degenerate operation cannot take down a batched compute
// call. On failure the caller keeps its unchanged accumulator.
func safeBoolean(op booleanOp, a, b []csg.Polygon) (result []csg.Polygon, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return op(a, b), true
}

func removeEmptyMeshes(meshes []Mesh) []Mesh {
	kept := meshes[:0]
	for _, m := range meshes {
		if !m.IsEmpty() {
			kept = append(kept, m)
		}
	}
	return kept
}

// ComputeUnion folds Union over every mesh in both operand lists into a
// single output mesh. The output inherits the color of the first
// non-empty mesh in operand1; if operand1 is empty entirely, operand2 is
// returned unchanged. Both operands are normalized (centered, scaled into
// a cube of edge normalizeCubeEdge) before the Boolean op and the result is denormalized back
// into the caller's coordinate space, for tolerance stability.
func ComputeUnion(operand1, operand2 []Mesh) []Mesh {
	operand1 = removeEmptyMeshes(append([]Mesh{}, operand1...))
	operand2 = removeEmptyMeshes(append([]Mesh{}, operand2...))

	if len(operand1) == 0 {
		return operand2
	}

	operand1, operand2, inverse := normalizeOperands(operand1, operand2)

	result := Mesh{Polygons: operand1[0].Polygons, Color: operand1[0].Color}
	for _, o := range operand1[1:] {
		if merged, ok := safeBoolean(csg.UnionPolygons, result.Polygons, o.Polygons); ok {
			result.Polygons = merged
		}
	}
	for _, o := range operand2 {
		if merged, ok := safeBoolean(csg.UnionPolygons, result.Polygons, o.Polygons); ok {
			result.Polygons = merged
		}
	}
	out := []Mesh{result}
	TransformMeshes(out, inverse)
	return out
}

// ComputeIntersection treats operand2 as a single accumulated tree (its
// internal union) and intersects each mesh of operand1 against it,
// dropping results that come out empty. Each surviving mesh keeps its own
// original color. Both operands are normalized before the Boolean op and
// results are denormalized back into the caller's coordinate space.
func ComputeIntersection(operand1, operand2 []Mesh) []Mesh {
	operand1 = removeEmptyMeshes(append([]Mesh{}, operand1...))
	operand2 = removeEmptyMeshes(append([]Mesh{}, operand2...))

	if len(operand1) == 0 || len(operand2) == 0 {
		return nil
	}

	operand1, operand2, inverse := normalizeOperands(operand1, operand2)

	var accumulated []csg.Polygon
	for i, o := range operand2 {
		if i == 0 {
			accumulated = o.Polygons
			continue
		}
		if merged, ok := safeBoolean(csg.UnionPolygons, accumulated, o.Polygons); ok {
			accumulated = merged
		}
	}

	result := make([]Mesh, 0, len(operand1))
	for _, o1 := range operand1 {
		intersected := o1.Clone()
		if merged, ok := safeBoolean(csg.IntersectionPolygons, intersected.Polygons, accumulated); ok {
			intersected.Polygons = merged
		}
		if !intersected.IsEmpty() {
			result = append(result, intersected)
		}
	}
	TransformMeshes(result, inverse)
	return result
}

// ComputeDifference builds one BSP operand per mesh in operand2 and
// sequentially subtracts each from every mesh of operand1, dropping
// results that come out empty. Each surviving mesh keeps its own original
// color. Both operands are normalized before the Boolean op and results
// are denormalized back into the caller's coordinate space.
func ComputeDifference(operand1, operand2 []Mesh) []Mesh {
	operand1 = removeEmptyMeshes(append([]Mesh{}, operand1...))
	operand2 = removeEmptyMeshes(append([]Mesh{}, operand2...))

	if len(operand1) == 0 || len(operand2) == 0 {
		return operand1
	}

	operand1, operand2, inverse := normalizeOperands(operand1, operand2)

	result := make([]Mesh, 0, len(operand1))
	for _, o1 := range operand1 {
		diff := o1.Clone()
		for _, o2 := range operand2 {
			if merged, ok := safeBoolean(csg.DifferencePolygons, diff.Polygons, o2.Polygons); ok {
				diff.Polygons = merged
			}
		}
		if !diff.IsEmpty() {
			result = append(result, diff)
		}
	}
	TransformMeshes(result, inverse)
	return result
}
