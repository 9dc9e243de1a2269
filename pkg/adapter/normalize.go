package adapter

import "github.com/chazu/csgkit/pkg/csg"

// normalizeCubeEdge is the edge length of the cube operand geometry is
// scaled into before a Boolean operation.
const normalizeCubeEdge = 2.0

// boundsOf returns the combined axis-aligned bounding box of every
// polygon vertex across groups. ok is false if there are no vertices at
// all (nothing to normalize against).
func boundsOf(groups ...[]Mesh) (min, max csg.Vector, ok bool) {
	const inf = 1.7976931348623157e+308
	min = csg.NewVector(inf, inf, inf)
	max = csg.NewVector(-inf, -inf, -inf)

	for _, group := range groups {
		for _, m := range group {
			for _, p := range m.Polygons {
				for _, v := range p.Vertices {
					if v.X < min.X {
						min.X = v.X
					}
					if v.Y < min.Y {
						min.Y = v.Y
					}
					if v.Z < min.Z {
						min.Z = v.Z
					}
					if v.X > max.X {
						max.X = v.X
					}
					if v.Y > max.Y {
						max.Y = v.Y
					}
					if v.Z > max.Z {
						max.Z = v.Z
					}
					ok = true
				}
			}
		}
	}
	return min, max, ok
}

// normalizationTransforms builds the forward transform that centers the
// box [min, max] at the origin and scales its largest axis extent into
// normalizeCubeEdge, plus its inverse. Per-axis scale is uniform (the
// largest extent drives all three axes) so the geometry is not distorted.
func normalizationTransforms(min, max csg.Vector) (forward, inverse Matrix) {
	center := min.Add(max).Scale(0.5)
	extent := max.Sub(min)

	largest := extent.X
	if extent.Y > largest {
		largest = extent.Y
	}
	if extent.Z > largest {
		largest = extent.Z
	}
	if largest < 1e-12 {
		return Identity(), Identity()
	}

	scale := normalizeCubeEdge / largest

	forward = Translation(center.Negate()).Then(Scaling(csg.NewVector(scale, scale, scale)))
	inverse = Scaling(csg.NewVector(1/scale, 1/scale, 1/scale)).Then(Translation(center))
	return forward, inverse
}

// normalizeOperands computes the forward/inverse transforms for the
// combined bounding box of operand1 and operand2, applies forward to
// clones of both operand lists in place, and returns those clones plus
// the inverse transform the caller must apply to the result. If neither
// operand has any geometry, both returned lists are the (empty) inputs
// and inverse is the identity.
func normalizeOperands(operand1, operand2 []Mesh) (norm1, norm2 []Mesh, inverse Matrix) {
	min, max, ok := boundsOf(operand1, operand2)
	if !ok {
		return operand1, operand2, Identity()
	}

	forward, inv := normalizationTransforms(min, max)

	norm1 = cloneMeshes(operand1)
	norm2 = cloneMeshes(operand2)
	TransformMeshes(norm1, forward)
	TransformMeshes(norm2, forward)
	return norm1, norm2, inv
}

func cloneMeshes(meshes []Mesh) []Mesh {
	out := make([]Mesh, len(meshes))
	for i, m := range meshes {
		out[i] = m.Clone()
	}
	return out
}
