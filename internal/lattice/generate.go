package lattice

import "github.com/chewxy/math32"

// Cell edge length shared by the three generators (world units).
const cellSize = float32(2)

// Monoclinic cell parameters: a = b = c = cellSize, beta = 30 degrees.
const monoclinicBeta = math32.Pi / 6

// Generate builds the unit cell for t. It is deterministic and has no failure path:
// an unrecognized type (including "") yields an empty structure, which renderers draw as nothing.
func Generate(t Type) *Structure {
	s := &Structure{Type: t, Nodes: []Node{}}
	switch t {
	case Cubic:
		generateCubic(s)
	case Hexagonal:
		generateHexagonal(s)
	case Monoclinic:
		generateMonoclinic(s)
	}
	return s
}

// generateCubic lays out a 3x3x3 grid at {-1,0,1}*cellSize (x outermost, z innermost).
// Each new node is compared against every earlier one and linked when the two differ by exactly
// one lattice step along a single axis. 27 nodes is small enough for the all-pairs scan.
func generateCubic(s *Structure) {
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				pos := [3]float32{float32(x) * cellSize, float32(y) * cellSize, float32(z) * cellSize}
				idx := s.add(pos)
				for prev := 0; prev < idx; prev++ {
					if axisNeighbors(pos, s.Nodes[prev].Position, cellSize) {
						s.link(idx, prev)
					}
				}
			}
		}
	}
}

// axisNeighbors reports whether a and b differ by exactly step on one axis and are equal on the other two.
func axisNeighbors(a, b [3]float32, step float32) bool {
	stepped, equal := 0, 0
	for i := 0; i < 3; i++ {
		d := math32.Abs(a[i] - b[i])
		switch d {
		case step:
			stepped++
		case 0:
			equal++
		}
	}
	return stepped == 1 && equal == 2
}

// generateHexagonal builds a simplified hexagonal cell: a base ring of six nodes (indices 0-5) on the XZ plane,
// a center node (6) joined to the base ring, and a top ring (7-12) rotated by 30 degrees at y = cellSize,
// with each top node joined to the base node below its index.
func generateHexagonal(s *Structure) {
	const ring = 6
	step := 2 * math32.Pi / ring

	for i := 0; i < ring; i++ {
		idx := s.add(onCircle(float32(i)*step, 0))
		if i > 0 {
			s.link(idx, idx-1)
		}
	}
	s.link(0, ring-1)

	center := s.add([3]float32{0, 0, 0})
	for i := 0; i < ring; i++ {
		s.link(center, i)
	}

	top := center + 1
	for i := 0; i < ring; i++ {
		idx := s.add(onCircle(float32(i)*step+step/2, cellSize))
		if i > 0 {
			s.link(idx, idx-1)
		}
	}
	s.link(top, top+ring-1)

	for i := 0; i < ring; i++ {
		s.link(i, top+i)
	}
}

// onCircle returns the point at angle on a circle of radius cellSize in the plane y = height.
func onCircle(angle, height float32) [3]float32 {
	return [3]float32{cellSize * math32.Cos(angle), height, cellSize * math32.Sin(angle)}
}

// cellIndex is the (i, j, k) corner of a unit cell, each component 0 or 1.
type cellIndex [3]int

// hamming returns how many components of a and b differ.
func (a cellIndex) hamming(b cellIndex) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// generateMonoclinic builds the eight corners of a sheared cell:
// x = i*a - k*c*cos(beta), y = j*b, z = k*c*sin(beta). Each corner keeps its (i, j, k) index and
// corners are linked when their indices differ in exactly one component, so the adjacency does not
// depend on the order the corners were emitted in.
func generateMonoclinic(s *Structure) {
	a, b, c := cellSize, cellSize, cellSize
	cosB, sinB := math32.Cos(monoclinicBeta), math32.Sin(monoclinicBeta)

	var cells []cellIndex
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float32(i), float32(j), float32(k)
				idx := s.add([3]float32{fi*a - fk*c*cosB, fj * b, fk * c * sinB})
				cell := cellIndex{i, j, k}
				for prev, pc := range cells {
					if cell.hamming(pc) == 1 {
						s.link(idx, prev)
					}
				}
				cells = append(cells, cell)
			}
		}
	}
}
