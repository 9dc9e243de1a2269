package adapter

import "github.com/chazu/csgkit/pkg/csg"

// Matrix is an affine transform (rotation + translation + uniform or
// non-uniform scale), stored row-major as a 3x4 block: the upper-left 3x3
// is the linear part, the last column is the translation.
type Matrix struct {
	M [3][4]float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	var m Matrix
	m.M[0][0] = 1
	m.M[1][1] = 1
	m.M[2][2] = 1
	return m
}

// Translation returns a pure translation transform.
func Translation(v csg.Vector) Matrix {
	m := Identity()
	m.M[0][3] = v.X
	m.M[1][3] = v.Y
	m.M[2][3] = v.Z
	return m
}

// Scaling returns a pure, possibly non-uniform, scale transform.
func Scaling(v csg.Vector) Matrix {
	var m Matrix
	m.M[0][0] = v.X
	m.M[1][1] = v.Y
	m.M[2][2] = v.Z
	return m
}

// Transform applies the affine transform to p in place.
func (m Matrix) Transform(p *csg.Vector) {
	x := m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3]
	y := m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3]
	z := m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3]
	p.X, p.Y, p.Z = x, y, z
}

// Then composes m followed by next: the returned matrix applies m first,
// then next, to a point.
func (m Matrix) Then(next Matrix) Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			sum := next.M[r][0]*m.M[0][c] + next.M[r][1]*m.M[1][c] + next.M[r][2]*m.M[2][c]
			if c == 3 {
				sum += next.M[r][3]
			}
			out.M[r][c] = sum
		}
	}
	return out
}
