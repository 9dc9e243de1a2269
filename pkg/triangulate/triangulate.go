// Package triangulate converts a planar 3-D vertex loop into a flat list
// of triangle indices using ear-clipping over a 2-D projection of the
// loop, following the same approach as the IFC viewer's Adapter::Triangulate
// (estimate normal → build a 2-D frame → project → shoelace → ear-clip →
// reorient → drop degenerate triangles).
package triangulate

import (
	"math"

	"github.com/chazu/csgkit/pkg/csg"
)

const (
	normalProbeFloor    = 1e-6
	degenerateAreaFloor = 1e-12
)

// point2D is a projected 2-D vertex.
type point2D struct {
	x, y  float64
	index int // index into the original loop
}

// Triangulate triangulates a planar loop of 3-D points, returning a flat
// list of triangle vertex indices (three per triangle, indexing into
// loop). Loops with fewer than 3 points, or whose points are (nearly)
// collinear, return an empty index list — malformed input degrades to an
// empty result rather than aborting the caller's bulk operation.
func Triangulate(loop []csg.Vector) []int {
	if len(loop) < 3 {
		return nil
	}

	normal, ok := estimateNormal(loop)
	if !ok {
		return nil
	}

	right, up := planeFrame(normal)
	origin := loop[0]

	projected := make([]point2D, len(loop))
	minX, minY := math.MaxFloat64, math.MaxFloat64
	for i, p := range loop {
		d := p.Sub(origin)
		x, y := right.Dot(d), up.Dot(d)
		projected[i] = point2D{x: x, y: y, index: i}
		minX, minY = math.Min(minX, x), math.Min(minY, y)
	}
	for i := range projected {
		projected[i].x -= minX
		projected[i].y -= minY
	}

	signedArea := shoelaceArea(projected)

	triangles := earClip(projected, signedArea >= 0)

	if signedArea < 0 {
		reverseTriples(triangles)
	}

	return filterDegenerate(loop, triangles)
}

// estimateNormal probes triples of loop points for the largest
// cross(b-a, c-b), stopping early once a probe clears normalProbeFloor.
// A loop that never clears the floor is treated as a line (or a single
// point) and rejected.
func estimateNormal(loop []csg.Vector) (csg.Vector, bool) {
	var best csg.Vector
	bestLenSq := 0.0

	for _, a := range loop {
		for _, b := range loop {
			for _, c := range loop {
				n := b.Sub(a).Cross(c.Sub(b))
				lenSq := n.LengthSquared()
				if lenSq > bestLenSq {
					best, bestLenSq = n, lenSq
				}
				if bestLenSq > normalProbeFloor {
					return best.Normalize(), true
				}
			}
		}
	}

	if bestLenSq > normalProbeFloor {
		return best.Normalize(), true
	}
	return csg.Vector{}, false
}

// planeFrame builds an orthonormal (right, up) basis for the plane with
// the given normal. The fallback axis keeps the frame well-defined when
// the normal is parallel to +Z.
func planeFrame(normal csg.Vector) (right, up csg.Vector) {
	right = csg.NewVector(0, 0, 1).Cross(normal)
	if right.LengthSquared() < 1e-6 {
		right = normal.Cross(csg.NewVector(0, -1, 0))
	}
	right = right.Normalize()
	up = normal.Cross(right).Normalize()
	return right, up
}

// shoelaceArea computes the signed area of a 2-D polygon loop.
func shoelaceArea(loop []point2D) float64 {
	s := 0.0
	n := len(loop)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s += (loop[i].y + loop[j].y) * 0.5 * (loop[i].x - loop[j].x)
	}
	return s
}

// earClip triangulates a simple 2-D polygon by repeatedly clipping ears:
// a vertex whose two neighbors form a triangle containing no other
// remaining polygon vertex. O(n²), which is fine for the loop sizes this
// package is used for (single mesh faces, not whole meshes).
func earClip(loop []point2D, ccw bool) []int {
	n := len(loop)
	if n < 3 {
		return nil
	}

	remaining := make([]point2D, n)
	copy(remaining, loop)

	var result []int
	guard := 0
	for len(remaining) > 3 && guard < n*n+8 {
		guard++
		clipped := false
		m := len(remaining)
		for i := 0; i < m; i++ {
			prev := remaining[(i-1+m)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]

			if !isConvex(prev, cur, next, ccw) {
				continue
			}
			if containsAnyOther(prev, cur, next, remaining, i) {
				continue
			}

			result = append(result, prev.index, cur.index, next.index)
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate or self-intersecting loop: no ear found, stop
			// rather than spin forever.
			break
		}
	}

	if len(remaining) == 3 {
		result = append(result, remaining[0].index, remaining[1].index, remaining[2].index)
	}

	return result
}

func isConvex(prev, cur, next point2D, ccw bool) bool {
	cross := (cur.x-prev.x)*(next.y-prev.y) - (cur.y-prev.y)*(next.x-prev.x)
	if ccw {
		return cross > 0
	}
	return cross < 0
}

func containsAnyOther(prev, cur, next point2D, loop []point2D, skip int) bool {
	for i, p := range loop {
		if i == skip {
			continue
		}
		if p.index == prev.index || p.index == cur.index || p.index == next.index {
			continue
		}
		if pointInTriangle(p, prev, cur, next) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c point2D) bool {
	sign := func(p1, p2, p3 point2D) float64 {
		return (p1.x-p3.x)*(p2.y-p3.y) - (p2.x-p3.x)*(p1.y-p3.y)
	}
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func reverseTriples(indices []int) {
	for i := 0; i+2 < len(indices); i += 3 {
		indices[i], indices[i+2] = indices[i+2], indices[i]
	}
}

// filterDegenerate drops any triangle that touches a non-finite point or
// whose 3-D area is below the degeneracy floor.
func filterDegenerate(loop []csg.Vector, indices []int) []int {
	var result []int
	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		a, b, c := loop[ia], loop[ib], loop[ic]
		if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
			continue
		}
		if b.Sub(a).Cross(c.Sub(b)).LengthSquared() < degenerateAreaFloor {
			continue
		}
		result = append(result, ia, ib, ic)
	}
	return result
}
