// Package csg implements Constructive Solid Geometry Boolean operations
// (union, intersection, difference) on sets of planar polygons using a
// BSP-tree representation.
//
// The design follows the classic csg.js algorithm (Evan Wallace, BSD/MIT):
// each operand is built into a binary space partitioning tree, and the
// three Boolean operators are expressed as short sequences of ClipTo,
// Invert, and Build calls on clones of the operand trees. All tree-walking
// operations (Build, ClipTo, Invert, AllPolygons, Clone) are iterative —
// realistic operands can produce trees deeper than the default goroutine
// stack, so no operation here recurses over tree depth. The only
// recursion permitted is over a single polygon's vertex ring inside the
// splitter, which is bounded by polygon size, not tree depth.
package csg
