// Package tessellate converts adapter entities into flat triangle-buffer
// meshes (pkg/kernel.Mesh) for rendering or export. Each mesh's polygons
// are triangulated independently via pkg/triangulate; a polygon's
// supporting plane normal is repeated across all of its triangle's
// vertices (flat shading), since the CSG engine carries no per-vertex
// normal information.
package tessellate

import (
	"fmt"

	"github.com/chazu/csgkit/pkg/adapter"
	"github.com/chazu/csgkit/pkg/kernel"
	"github.com/chazu/csgkit/pkg/triangulate"
)

// Tessellate produces one kernel.Mesh per adapter.Mesh across all given
// entities. PartName is taken from the entity's Domain reference via
// fmt.Sprint; Color carries through unchanged.
func Tessellate(entities []adapter.Entity) ([]*kernel.Mesh, error) {
	var out []*kernel.Mesh
	for _, e := range entities {
		partName := fmt.Sprint(e.Domain)
		for _, m := range e.Meshes {
			mesh, err := tessellateMesh(m, partName)
			if err != nil {
				return nil, fmt.Errorf("tessellate: entity %q: %w", partName, err)
			}
			if mesh != nil {
				out = append(out, mesh)
			}
		}
	}
	return out, nil
}

func tessellateMesh(m adapter.Mesh, partName string) (*kernel.Mesh, error) {
	if m.IsEmpty() {
		return nil, nil
	}

	out := &kernel.Mesh{PartName: partName, Color: m.Color}
	for _, p := range m.Polygons {
		indices := triangulate.Triangulate(p.Vertices)
		if indices == nil {
			continue
		}
		base := uint32(out.VertexCount())
		n := p.Plane.Normal
		for _, v := range p.Vertices {
			out.Vertices = append(out.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
		}
		for _, idx := range indices {
			out.Indices = append(out.Indices, base+uint32(idx))
		}
	}
	if out.IsEmpty() {
		return nil, nil
	}
	return out, nil
}
