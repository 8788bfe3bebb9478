package theme

import "strings"

// Color is an 8-bit RGBA color, independent of any renderer.
type Color struct {
	R, G, B, A uint8
}

// Named colors of the site palette.
var (
	QuantumBlue   = Color{0x00, 0xE5, 0xFF, 0xFF}
	LatticePurple = Color{0x7B, 0x61, 0xFF, 0xFF}
	PlasmaPink    = Color{0xFF, 0x2A, 0x6D, 0xFF}
	DeepSpace     = Color{0x0F, 0x17, 0x2A, 0xFF}
	DarkMatter    = Color{0x05, 0x0A, 0x18, 0xFF}
	LabGreen      = Color{0x00, 0xFF, 0x9C, 0xFF}
	Paper         = Color{0xF1, 0xF5, 0xF9, 0xFF}
	White         = Color{0xFF, 0xFF, 0xFF, 0xFF}
)

// edgeAlpha is the alpha used for lattice lines (0x80 ~ 50%).
const edgeAlpha = 0x80

// Settings is the view mode shared by everything that draws. It is a value: toggles return a new Settings.
type Settings struct {
	DarkMode bool `yaml:"dark_mode"`
	LabMode  bool `yaml:"lab_mode"`
}

// Default returns dark mode on, lab mode off.
func Default() Settings {
	return Settings{DarkMode: true}
}

// ToggleDark flips dark mode. Lab mode only exists in the dark theme, so it is switched off as well.
func (s Settings) ToggleDark() Settings {
	s.DarkMode = !s.DarkMode
	s.LabMode = false
	return s
}

// ToggleLab flips lab mode and forces the dark theme on.
func (s Settings) ToggleLab() Settings {
	s.LabMode = !s.LabMode
	s.DarkMode = true
	return s
}

// WithLab sets lab mode explicitly. Turning it on forces the dark theme, as ToggleLab does.
func (s Settings) WithLab(on bool) Settings {
	if on != s.LabMode {
		return s.ToggleLab()
	}
	return s
}

// Palette holds the resolved colors for one frame.
type Palette struct {
	Background Color
	Fog        Color
	Node       Color
	Line       Color
	KeyLight   Color
	FillLight  Color
	Grid       Color
}

// PaletteFor resolves the palette for the given settings.
func PaletteFor(s Settings) Palette {
	p := Palette{
		Background: DeepSpace,
		Fog:        DeepSpace,
		Node:       QuantumBlue,
		Line:       QuantumBlue.WithAlpha(edgeAlpha),
		KeyLight:   White,
		FillLight:  LatticePurple,
		Grid:       Color{0x80, 0x80, 0x80, 0x32},
	}
	if !s.DarkMode {
		p.Background = Paper
		p.Fog = Paper
		p.Grid = Color{0x40, 0x40, 0x40, 0x32}
	}
	if s.LabMode {
		p.Node = LabGreen
		p.Line = LabGreen.WithAlpha(edgeAlpha)
		p.KeyLight = LabGreen
		p.FillLight = LabGreen
	}
	return p
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255. Returns false on parse error.
func ParseHexColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return Color{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return Color{}, false
		}
	}
	pair := func(i int) uint8 {
		hi, _ := hexDigit(hex[i])
		lo, _ := hexDigit(hex[i+1])
		return hi<<4 | lo
	}
	switch len(hex) {
	case 3:
		r, _ := hexDigit(hex[0])
		g, _ := hexDigit(hex[1])
		b, _ := hexDigit(hex[2])
		return Color{r * 17, g * 17, b * 17, 0xFF}, true
	case 6:
		return Color{pair(0), pair(2), pair(4), 0xFF}, true
	case 8:
		return Color{pair(0), pair(2), pair(4), pair(6)}, true
	}
	return Color{}, false
}

// Resolve returns the parsed override when it is a valid hex color, otherwise fallback.
func Resolve(override string, fallback Color) Color {
	if c, ok := ParseHexColor(override); ok {
		return c
	}
	return fallback
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
