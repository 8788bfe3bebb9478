package lattice

import (
	"strings"

	"github.com/jinzhu/copier"
)

// Type selects which unit cell Generate builds.
type Type string

const (
	Cubic      Type = "cubic"
	Hexagonal  Type = "hexagonal"
	Monoclinic Type = "monoclinic"
)

// Types returns the recognized structure types in display order.
func Types() []Type {
	return []Type{Cubic, Hexagonal, Monoclinic}
}

// Known reports whether t is one of the recognized structure types.
func (t Type) Known() bool {
	switch t {
	case Cubic, Hexagonal, Monoclinic:
		return true
	}
	return false
}

// ParseType trims and lower-cases s. Unknown values are returned as-is; Generate turns them into an empty structure.
func ParseType(s string) Type {
	return Type(strings.ToLower(strings.TrimSpace(s)))
}

// Node is one lattice point. Connections holds indices into Structure.Nodes; every edge is stored on both ends.
type Node struct {
	Position    [3]float32 `json:"position" yaml:"position,flow"`
	Connections []int      `json:"connections" yaml:"connections,flow"`
}

// Edge is an undirected connection between two node indices with A < B.
type Edge struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// Structure is the output of Generate. Treat it as read-only once built; use Clone to get a private copy.
type Structure struct {
	Type  Type   `json:"type" yaml:"type"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Empty reports whether the structure has no nodes (e.g. generated from an unknown type).
func (s *Structure) Empty() bool {
	return s == nil || len(s.Nodes) == 0
}

// Edges returns each connection once, ordered by the lower index. Only pairs with i < j are emitted,
// which is the same rule the renderer uses to avoid drawing an edge twice.
func (s *Structure) Edges() []Edge {
	if s.Empty() {
		return nil
	}
	var out []Edge
	for i, n := range s.Nodes {
		for _, j := range n.Connections {
			if i < j {
				out = append(out, Edge{A: i, B: j})
			}
		}
	}
	return out
}

// EdgeCount returns the number of undirected edges.
func (s *Structure) EdgeCount() int {
	return len(s.Edges())
}

// Degrees returns the number of connections of every node, in node order.
func (s *Structure) Degrees() []int {
	if s.Empty() {
		return nil
	}
	out := make([]int, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = len(n.Connections)
	}
	return out
}

// IsSymmetric reports whether every connection is recorded on both of its nodes,
// with no self loops, duplicates, or out-of-range indices.
func (s *Structure) IsSymmetric() bool {
	if s.Empty() {
		return true
	}
	for i, n := range s.Nodes {
		seen := make(map[int]bool, len(n.Connections))
		for _, j := range n.Connections {
			if j == i || j < 0 || j >= len(s.Nodes) || seen[j] {
				return false
			}
			seen[j] = true
			if !s.Nodes[j].connected(i) {
				return false
			}
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of all node positions. Both corners are zero for an empty structure.
func (s *Structure) Bounds() (lo, hi [3]float32) {
	if s.Empty() {
		return lo, hi
	}
	lo, hi = s.Nodes[0].Position, s.Nodes[0].Position
	for _, n := range s.Nodes[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], n.Position[a])
			hi[a] = max(hi[a], n.Position[a])
		}
	}
	return lo, hi
}

// Clone returns a deep copy so the caller can hold it without sharing connection slices with the original.
func (s *Structure) Clone() *Structure {
	if s == nil {
		return nil
	}
	out := &Structure{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for identical types.
		panic(err)
	}
	return out
}

func (n *Node) connected(j int) bool {
	for _, c := range n.Connections {
		if c == j {
			return true
		}
	}
	return false
}

// link records an undirected edge on both nodes. Repeated links are ignored.
func (s *Structure) link(i, j int) {
	if i == j || s.Nodes[i].connected(j) {
		return
	}
	s.Nodes[i].Connections = append(s.Nodes[i].Connections, j)
	s.Nodes[j].Connections = append(s.Nodes[j].Connections, i)
}

// add appends a node with no connections and returns its index.
func (s *Structure) add(pos [3]float32) int {
	s.Nodes = append(s.Nodes, Node{Position: pos, Connections: []int{}})
	return len(s.Nodes) - 1
}
