// Package adapter is the mesh-level glue between the CSG engine
// (pkg/csg), the triangulator (pkg/triangulate), and an external
// domain model. It prepares meshes for Boolean operations (center-and-scale
// normalization for numerical stability, applied by every compute
// operation), attributes
// styles/colors, and exposes the batched multi-mesh compute operations
// callers use to union, intersect, and subtract whole mesh sets.
//
// The adapter is deliberately monomorphic: it works on concrete Mesh,
// Polyline, and Entity types rather than a type-parameterized vector
// family. Variation belongs at the single call site that adapts domain
// colors and matrices (see Style and Matrix in this package), not in the
// adapter itself.
package adapter
