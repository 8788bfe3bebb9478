package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lattice-viewer/internal/export"
	"lattice-viewer/internal/lattice"
	"lattice-viewer/internal/viewconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// run executes the command tree with args and an isolated config/env, returning stdout.
func run(t *testing.T, launch LaunchFunc, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{viewconfig.EnvStructure, viewconfig.EnvScene, viewconfig.EnvLabMode, viewconfig.EnvAnimate} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "viewer.yaml"),
		"--env", filepath.Join(dir, ".env"),
	}
	cmd := NewRootCommand(launch)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, base...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDump_JSON(t *testing.T) {
	out, err := run(t, nil, "dump", "--structure", "hexagonal")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, lattice.Hexagonal, doc.Type)
	assert.Equal(t, 13, doc.NodeCount)
	assert.Equal(t, 24, doc.EdgeCount)
	assert.Len(t, doc.Nodes, 13)
	assert.Len(t, doc.Edges, 24)
}

func TestDump_YAML(t *testing.T) {
	out, err := run(t, nil, "dump", "-s", "monoclinic", "--format", "yaml")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, lattice.Monoclinic, doc.Type)
	assert.Equal(t, 8, doc.NodeCount)
	assert.Equal(t, 12, doc.EdgeCount)
}

func TestDump_UnknownStructureIsEmpty(t *testing.T) {
	out, err := run(t, nil, "dump", "--structure", "triclinic")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 0, doc.NodeCount)
	assert.Empty(t, doc.Nodes)
	assert.Empty(t, doc.Edges)
}

func TestDump_BadFormat(t *testing.T) {
	_, err := run(t, nil, "dump", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestStats_Cubic(t *testing.T) {
	out, err := run(t, nil, "stats")
	require.NoError(t, err)
	want := "type: cubic\nnodes: 27\nedges: 54\nsymmetric: true\n" +
		"degree 3: 8\ndegree 4: 12\ndegree 5: 6\ndegree 6: 1\n"
	assert.Equal(t, want, out)
}

func TestStats_Unknown(t *testing.T) {
	out, err := run(t, nil, "stats", "--structure", "nope")
	require.NoError(t, err)
	assert.Equal(t, "type: nope\nnodes: 0\nedges: 0\nsymmetric: true\n", out)
}

func TestRoot_LaunchesViewerWithOverrides(t *testing.T) {
	var got viewconfig.Prefs
	var gotPath string
	launch := func(ctx context.Context, p viewconfig.Prefs, configPath string, log *zap.Logger) error {
		got, gotPath = p, configPath
		return nil
	}
	_, err := run(t, launch, "--structure", "monoclinic", "--lab", "--scene", "atomic", "--animate=false")
	require.NoError(t, err)

	assert.Equal(t, "monoclinic", got.Structure)
	assert.Equal(t, viewconfig.SceneAtomic, got.Scene)
	assert.True(t, got.LabMode)
	assert.True(t, got.DarkMode)
	assert.False(t, got.Animate)
	assert.Equal(t, "viewer.yaml", filepath.Base(gotPath))
}

func TestRoot_FileThenEnvThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	p := viewconfig.Default()
	p.Structure = "hexagonal"
	p.Interactive = true
	require.NoError(t, viewconfig.Save(path, p))

	var got viewconfig.Prefs
	launch := func(ctx context.Context, p viewconfig.Prefs, configPath string, log *zap.Logger) error {
		got = p
		return nil
	}
	cmd := NewRootCommand(launch)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	t.Setenv(viewconfig.EnvStructure, "")
	t.Setenv(viewconfig.EnvScene, "empty")
	t.Setenv(viewconfig.EnvLabMode, "")
	t.Setenv(viewconfig.EnvAnimate, "")
	cmd.SetArgs([]string{"--config", path, "--env", filepath.Join(dir, ".env"), "--dark=false"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "hexagonal", got.Structure)
	assert.True(t, got.Interactive)
	assert.Equal(t, viewconfig.SceneEmpty, got.Scene)
	assert.False(t, got.DarkMode)
	assert.False(t, got.LabMode)
}

func TestRoot_InvalidSceneFlag(t *testing.T) {
	called := false
	launch := func(ctx context.Context, p viewconfig.Prefs, configPath string, log *zap.Logger) error {
		called = true
		return nil
	}
	_, err := run(t, launch, "--scene", "galaxy")
	require.Error(t, err)
	assert.False(t, called)
}

func TestRoot_DotenvFeedsOverrides(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("LATTICE_STRUCTURE=monoclinic\n"), 0644))
	// Unset rather than empty so the file value is picked up.
	for _, k := range []string{viewconfig.EnvStructure, viewconfig.EnvScene, viewconfig.EnvLabMode, viewconfig.EnvAnimate} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	var got viewconfig.Prefs
	launch := func(ctx context.Context, p viewconfig.Prefs, configPath string, log *zap.Logger) error {
		got = p
		return nil
	}
	cmd := NewRootCommand(launch)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "viewer.yaml"), "--env", envPath})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "monoclinic", got.Structure)
}
