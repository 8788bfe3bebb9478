package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggles(t *testing.T) {
	s := Default()
	assert.True(t, s.DarkMode)
	assert.False(t, s.LabMode)

	lab := s.ToggleLab()
	assert.True(t, lab.LabMode)
	assert.True(t, lab.DarkMode)
	assert.False(t, s.LabMode, "toggle must not mutate the receiver")

	light := lab.ToggleDark()
	assert.False(t, light.DarkMode)
	assert.False(t, light.LabMode)

	back := light.ToggleLab()
	assert.True(t, back.DarkMode, "lab mode forces dark")
	assert.True(t, back.LabMode)
}

func TestPaletteFor(t *testing.T) {
	dark := PaletteFor(Settings{DarkMode: true})
	assert.Equal(t, DeepSpace, dark.Background)
	assert.Equal(t, QuantumBlue, dark.Node)
	assert.Equal(t, Color{0x00, 0xE5, 0xFF, 0x80}, dark.Line)
	assert.Equal(t, LatticePurple, dark.FillLight)

	lab := PaletteFor(Settings{DarkMode: true, LabMode: true})
	assert.Equal(t, LabGreen, lab.Node)
	assert.Equal(t, Color{0x00, 0xFF, 0x9C, 0x80}, lab.Line)
	assert.Equal(t, LabGreen, lab.KeyLight)
	assert.Equal(t, LabGreen, lab.FillLight)

	light := PaletteFor(Settings{})
	assert.Equal(t, Paper, light.Background)
	assert.Equal(t, QuantumBlue, light.Node)
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#00E5FF", QuantumBlue, true},
		{"#00e5ff80", Color{0x00, 0xE5, 0xFF, 0x80}, true},
		{"#fff", White, true},
		{" #0F172A ", DeepSpace, true},
		{"00E5FF", Color{}, false},
		{"#12345", Color{}, false},
		{"#GGGGGG", Color{}, false},
		{"", Color{}, false},
	}
	for _, c := range cases {
		got, ok := ParseHexColor(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, PlasmaPink, Resolve("#FF2A6D", QuantumBlue))
	assert.Equal(t, QuantumBlue, Resolve("", QuantumBlue))
	assert.Equal(t, QuantumBlue, Resolve("teal", QuantumBlue))
}

func TestWithLab(t *testing.T) {
	light := Settings{}
	on := light.WithLab(true)
	assert.Equal(t, Settings{DarkMode: true, LabMode: true}, on)
	assert.Equal(t, on, on.WithLab(true))
	assert.Equal(t, Settings{DarkMode: true}, on.WithLab(false))
	assert.Equal(t, light, light.WithLab(false))
}
