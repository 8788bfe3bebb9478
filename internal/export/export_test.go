package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"lattice-viewer/internal/lattice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewDocument_CopiesNodes(t *testing.T) {
	s := lattice.Generate(lattice.Cubic)
	d := NewDocument(s)
	d.Nodes[0].Position[0] = 99
	d.Nodes[0].Connections[0] = 99

	fresh := lattice.Generate(lattice.Cubic)
	assert.Equal(t, fresh.Nodes[0], s.Nodes[0])
	assert.Equal(t, 27, d.NodeCount)
	assert.Equal(t, 54, d.EdgeCount)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lattice.Generate(lattice.Hexagonal), JSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, lattice.Hexagonal, doc.Type)
	assert.Equal(t, 13, doc.NodeCount)
	assert.Equal(t, 24, doc.EdgeCount)
	assert.Len(t, doc.Edges, 24)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, doc.Nodes[6].Connections)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lattice.Generate(lattice.Monoclinic), YAML))
	assert.Contains(t, buf.String(), "type: monoclinic")

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 8, doc.NodeCount)
	assert.Equal(t, 12, doc.EdgeCount)
	for _, n := range doc.Nodes {
		assert.Len(t, n.Connections, 3)
	}
}

func TestWrite_EmptyStructure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, lattice.Generate("bogus"), JSON))
	assert.Contains(t, buf.String(), `"nodes": []`)
	assert.Contains(t, buf.String(), `"edges": []`)
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, lattice.Generate(lattice.Cubic), Format("csv")))
}

func TestSummarize(t *testing.T) {
	st := Summarize(lattice.Generate(lattice.Cubic))
	assert.Equal(t, 27, st.Nodes)
	assert.Equal(t, 54, st.Edges)
	assert.Equal(t, map[int]int{3: 8, 4: 12, 5: 6, 6: 1}, st.Degrees)
	assert.True(t, st.Symmetric)

	empty := Summarize(nil)
	assert.Zero(t, empty.Nodes)
	assert.Empty(t, empty.Degrees)
	assert.True(t, empty.Symmetric)
}
