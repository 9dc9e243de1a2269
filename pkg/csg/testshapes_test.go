package csg

// newBox returns the 6 quad faces of an axis-aligned box with the given
// min corner and size, wound counter-clockwise as seen from outside the
// solid (outward-facing normals), matching the convention the splitter's
// coplanar-orientation check depends on.
func newBox(min Vector, size Vector) []Polygon {
	max := min.Add(size)

	corner := func(x, y, z float64) Vector {
		px, py, pz := min.X, min.Y, min.Z
		if x != 0 {
			px = max.X
		}
		if y != 0 {
			py = max.Y
		}
		if z != 0 {
			pz = max.Z
		}
		return NewVector(px, py, pz)
	}

	faces := [][4][3]float64{
		{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // -X
		{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // +X
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // -Y
		{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // +Y
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // -Z
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // +Z
	}

	polygons := make([]Polygon, 0, len(faces))
	for _, f := range faces {
		verts := make([]Vector, 4)
		for i, c := range f {
			verts[i] = corner(c[0], c[1], c[2])
		}
		polygons = append(polygons, NewPolygon(verts))
	}
	return polygons
}

// boxVolume computes the bounding-box volume of a polygon set, used by
// scenarios where the result is itself a box-shaped solid so its volume
// can be checked directly.
func boxVolume(polygons []Polygon) float64 {
	if len(polygons) == 0 {
		return 0
	}
	min := Vector{X: maxFloat, Y: maxFloat, Z: maxFloat}
	max := min.Negate()
	for _, p := range polygons {
		for _, v := range p.Vertices {
			min.X, max.X = minF(min.X, v.X), maxFA(max.X, v.X)
			min.Y, max.Y = minF(min.Y, v.Y), maxFA(max.Y, v.Y)
			min.Z, max.Z = minF(min.Z, v.Z), maxFA(max.Z, v.Z)
		}
	}
	return (max.X - min.X) * (max.Y - min.Y) * (max.Z - min.Z)
}
