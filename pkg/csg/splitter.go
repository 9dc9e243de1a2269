package csg

// splitPolygon classifies poly against plane and routes it (or fragments
// of it) into one of four buckets. A polygon whose own supporting plane is
// (near-)coplanar with plane — same or opposite orientation — is always
// treated as COPLANAR, overriding whatever the per-vertex classification
// came out to; this is what lets two coplanar polygons from different
// operands land in the same BSP node instead of being split against each
// other's near-identical planes.
func splitPolygon(plane Plane, poly Polygon, coplanarFront, coplanarBack, front, back *[]Polygon) {
	polygonType := Coplanar
	types := make([]Classification, len(poly.Vertices))
	for i, v := range poly.Vertices {
		t := plane.ClassifyPoint(v)
		types[i] = t
		polygonType |= t
	}

	if poly.Plane.SameOrientation(plane) || poly.Plane.OppositeOrientation(plane) {
		polygonType = Coplanar
	}

	switch polygonType {
	case Coplanar:
		if plane.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case Front:
		*front = append(*front, poly)
	case Back:
		*back = append(*back, poly)
	case Spanning:
		var f, b []Vector
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			vi, vj := poly.Vertices[i], poly.Vertices[j]
			ti, tj := types[i], types[j]

			if ti != Back {
				f = append(f, vi)
			}
			if ti != Front {
				b = append(b, vi)
			}
			if (ti | tj) == Spanning {
				t := (plane.W - plane.Normal.Dot(vi)) / plane.Normal.Dot(vj.Sub(vi))
				v := vi.Lerp(vj, t)
				if len(f) == 0 || !f[len(f)-1].Equal(v) {
					f = append(f, v)
				}
				if len(b) == 0 || !b[len(b)-1].Equal(v) {
					b = append(b, v)
				}
			}
		}
		if len(f) >= 3 {
			*front = append(*front, NewPolygonWithPlane(f, poly.Plane))
		}
		if len(b) >= 3 {
			*back = append(*back, NewPolygonWithPlane(b, poly.Plane))
		}
	}
}

// findOptimalSplittingPlane picks, among polygons, the plane farthest from
// the bounding-box center of all their vertices. A plane far from the
// centroid tends to be a bounding face of the solid, which yields a more
// balanced split than always picking the first polygon's plane: a poorly
// chosen partition plane multiplies downstream splits and produces deeper,
// less balanced trees.
func findOptimalSplittingPlane(polygons []Polygon) Plane {
	min := Vector{X: maxFloat, Y: maxFloat, Z: maxFloat}
	max := min.Negate()

	for _, p := range polygons {
		for _, v := range p.Vertices {
			min.X, max.X = minF(min.X, v.X), maxFA(max.X, v.X)
			min.Y, max.Y = minF(min.Y, v.Y), maxFA(max.Y, v.Y)
			min.Z, max.Z = minF(min.Z, v.Z), maxFA(max.Z, v.Z)
		}
	}

	center := min.Add(max).Scale(0.5)

	best := 0
	bestDelta := -maxFloat
	for i, p := range polygons {
		d := absF(p.Plane.Normal.Dot(center) - p.Plane.W)
		if d > bestDelta {
			best = i
			bestDelta = d
		}
	}
	return polygons[best].Plane
}

const maxFloat = 1.7976931348623157e+308

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFA(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
