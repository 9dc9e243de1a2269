// Package kernel defines the flat triangle-buffer mesh format produced by
// pkg/tessellate for rendering or export. It previously abstracted over
// swappable solid-modeling backends (sdfx, manifold); this repo has one
// mandated algorithm family (the BSP engine in pkg/csg), so that
// abstraction is gone and Mesh is now a concrete output type.
package kernel
