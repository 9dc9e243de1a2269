package adapter

import "github.com/chazu/csgkit/pkg/csg"

// Mesh is a list of polygons plus a packed ARGB color. A zero Color means
// "unstyled" — see ApplyStylesToMeshes.
type Mesh struct {
	Polygons []csg.Polygon
	Color    uint32
}

// Polyline is an ordered list of points plus a packed ARGB color.
type Polyline struct {
	Points []csg.Vector
	Color  uint32
}

// DomainRef is an opaque reference to a domain-model object (e.g. a
// building-model element). The adapter never inspects it; it only
// threads it through Entity so callers can map results back to their
// domain objects. The building-model loader that produces these
// references is an external collaborator, out of scope here.
type DomainRef interface{}

// Entity bundles a domain-model reference with the meshes and polylines
// derived from it. Created during model ingestion, consumed downstream by
// rendering; never mutated across a Boolean operation.
type Entity struct {
	Domain    DomainRef
	Meshes    []Mesh
	Polylines []Polyline
}

// IsEmpty reports whether the mesh has no polygons.
func (m Mesh) IsEmpty() bool {
	return len(m.Polygons) == 0
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	polygons := make([]csg.Polygon, len(m.Polygons))
	for i, p := range m.Polygons {
		polygons[i] = p.Clone()
	}
	return Mesh{Polygons: polygons, Color: m.Color}
}
