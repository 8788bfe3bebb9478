package atomfield

import (
	"math"
	"testing"

	"lattice-viewer/internal/theme"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, 12, DefaultOptions(false).Count)
	assert.Equal(t, 20, DefaultOptions(true).Count)
}

func TestGenerate_SeededIsDeterministic(t *testing.T) {
	opts := DefaultOptions(false)
	opts.Seed = 42
	a, b := Generate(opts), Generate(opts)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different fields:\n%s", diff)
	}

	opts.Seed = 43
	c := Generate(opts)
	assert.NotEqual(t, a[0].Position, c[0].Position)
}

func TestGenerate_WithinBounds(t *testing.T) {
	opts := DefaultOptions(true)
	opts.Seed = 7
	atoms := Generate(opts)
	require.Len(t, atoms, 20)
	for i, a := range atoms {
		assert.GreaterOrEqual(t, a.Position[0], float32(-10))
		assert.LessOrEqual(t, a.Position[0], float32(10))
		assert.GreaterOrEqual(t, a.Position[1], float32(-10))
		assert.LessOrEqual(t, a.Position[1], float32(10))
		assert.GreaterOrEqual(t, a.Position[2], float32(-15))
		assert.LessOrEqual(t, a.Position[2], float32(-5))
		assert.GreaterOrEqual(t, a.Size, float32(0.2))
		assert.LessOrEqual(t, a.Size, float32(0.5))
		assert.Equal(t, atomColors[i%3], a.Color)
	}
	assert.Equal(t, theme.QuantumBlue, atoms[0].Color)
	assert.Equal(t, theme.LatticePurple, atoms[1].Color)
	assert.Equal(t, theme.PlasmaPink, atoms[2].Color)
}

func TestGenerate_ZeroCount(t *testing.T) {
	assert.Nil(t, Generate(Options{}))
	assert.Len(t, Generate(Options{Count: 3}), 3)
}

func TestOrbitPoints_ClosedRing(t *testing.T) {
	for _, o := range Orbits() {
		pts := OrbitPoints(o, OrbitSegments)
		require.Len(t, pts, OrbitSegments+1)
		assert.Equal(t, pts[0], pts[len(pts)-1])
		for _, p := range pts {
			r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
			assert.InDelta(t, o.Radius, r, 1e-4)
		}
	}
}

func TestOrbitPoints_Planes(t *testing.T) {
	orbits := Orbits()
	for _, p := range OrbitPoints(orbits[0], 12) {
		assert.Zero(t, p[2])
	}
	for _, p := range OrbitPoints(orbits[1], 12) {
		assert.Zero(t, p[1])
	}
	for _, p := range OrbitPoints(orbits[2], 12) {
		assert.Zero(t, p[0])
	}
}

func TestElectron(t *testing.T) {
	o := Orbits()[0]
	assert.Equal(t, o.ElectronAt, o.Electron(0))

	// 0.5 rad/s about Z: after pi seconds the electron is a quarter turn round.
	got := o.Electron(math.Pi)
	assert.InDelta(t, 0, got[0], 1e-5)
	assert.InDelta(t, 1.5, got[1], 1e-5)
	assert.InDelta(t, 0, got[2], 1e-5)
}

func TestAtomPlace(t *testing.T) {
	a := Atom{Position: [3]float32{1, 2, 3}}
	assert.Equal(t, [3]float32{1, 2, 3}, a.Place([3]float32{}, 5))
	assert.Equal(t, [3]float32{2, 2, 3}, a.Place([3]float32{1, 0, 0}, 0))
}
