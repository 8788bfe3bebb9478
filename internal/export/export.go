package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lattice-viewer/internal/lattice"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding for Write.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("export: unknown format %q (use json or yaml)", s)
}

// Document is the exported form of a structure: the nodes as generated plus the deduplicated edge list
// and a few counts, so consumers do not have to re-derive them.
type Document struct {
	Type      lattice.Type   `json:"type" yaml:"type"`
	NodeCount int            `json:"node_count" yaml:"node_count"`
	EdgeCount int            `json:"edge_count" yaml:"edge_count"`
	Nodes     []lattice.Node `json:"nodes" yaml:"nodes"`
	Edges     []lattice.Edge `json:"edges" yaml:"edges,flow"`
}

// NewDocument builds the export document for s. The document owns a copy of the nodes.
// A nil or empty structure yields empty lists, not nulls.
func NewDocument(s *lattice.Structure) Document {
	d := Document{Nodes: []lattice.Node{}, Edges: []lattice.Edge{}}
	if s == nil {
		return d
	}
	d.Type = s.Type
	if len(s.Nodes) > 0 {
		d.Nodes = s.Clone().Nodes
	}
	if edges := s.Edges(); len(edges) > 0 {
		d.Edges = edges
	}
	d.NodeCount = len(d.Nodes)
	d.EdgeCount = len(d.Edges)
	return d
}

// Write encodes s to w in the given format.
func Write(w io.Writer, s *lattice.Structure, f Format) error {
	doc := NewDocument(s)
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	}
	return fmt.Errorf("export: unknown format %q", f)
}

// Stats summarizes a structure for the "stats" command.
type Stats struct {
	Type      lattice.Type
	Nodes     int
	Edges     int
	Degrees   map[int]int
	Symmetric bool
}

// Summarize computes node and edge counts and the degree histogram of s.
func Summarize(s *lattice.Structure) Stats {
	st := Stats{Degrees: map[int]int{}, Symmetric: s.IsSymmetric()}
	if s == nil {
		return st
	}
	st.Type = s.Type
	st.Nodes = len(s.Nodes)
	st.Edges = s.EdgeCount()
	for _, d := range s.Degrees() {
		st.Degrees[d]++
	}
	return st
}
