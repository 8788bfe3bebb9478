package viewconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lattice-viewer/internal/lattice"
	"lattice-viewer/internal/theme"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Scene kinds.
const (
	SceneAtomic  = "atomic"
	SceneLattice = "lattice"
	SceneEmpty   = "empty"
)

// Prefs holds viewer preferences. Persisted across runs.
// NodeColor and LineColor may be empty, meaning "take the color from the theme palette".
// Structure is not validated: an unknown type simply renders an empty lattice.
type Prefs struct {
	Structure   string  `yaml:"structure"`
	Scene       string  `yaml:"scene" validate:"oneof=atomic lattice empty"`
	NodeColor   string  `yaml:"node_color,omitempty" validate:"omitempty,hexcolor"`
	LineColor   string  `yaml:"line_color,omitempty" validate:"omitempty,hexcolor"`
	NodeSize    float32 `yaml:"node_size" validate:"gt=0,lte=2"`
	Animate     bool    `yaml:"animate"`
	DarkMode    bool    `yaml:"dark_mode"`
	LabMode     bool    `yaml:"lab_mode"`
	Interactive bool    `yaml:"interactive"`
	AtomCount   int     `yaml:"atom_count" validate:"gte=0,lte=500"`
	AtomSeed    int64   `yaml:"atom_seed"`
	ShowFPS     bool    `yaml:"show_fps"`
	ShowStats   bool    `yaml:"show_stats"`
	GridVisible bool    `yaml:"grid_visible"`
	WindowW     int32   `yaml:"window_width" validate:"gte=0"`
	WindowH     int32   `yaml:"window_height" validate:"gte=0"`
}

// Default returns the preferences the viewer starts with when no file exists:
// an animated cubic lattice, node radius 0.15, dark theme, overlays off.
func Default() Prefs {
	return Prefs{
		Structure:   string(lattice.Cubic),
		Scene:       SceneLattice,
		NodeSize:    0.15,
		Animate:     true,
		DarkMode:    true,
		GridVisible: false,
		WindowW:     1280,
		WindowH:     720,
	}
}

// StructureType returns the normalized lattice selector.
func (p Prefs) StructureType() lattice.Type {
	return lattice.ParseType(p.Structure)
}

// Theme returns the view mode as a theme setting.
func (p Prefs) Theme() theme.Settings {
	return theme.Settings{DarkMode: p.DarkMode, LabMode: p.LabMode}
}

// WithTheme copies the view mode flags from s.
func (p Prefs) WithTheme(s theme.Settings) Prefs {
	p.DarkMode = s.DarkMode
	p.LabMode = s.LabMode
	return p
}

var validate = validator.New()

// Validate checks field ranges and color formats.
func (p Prefs) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("viewconfig: %w", err)
	}
	return nil
}

// Load reads preferences from path. A missing file is not an error and yields Default().
// If the file cannot be parsed or fails validation, Default() is returned together with the error
// so the caller can report it and carry on.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("viewconfig: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("viewconfig: %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), err
	}
	return p, nil
}

// Save writes preferences to path, creating the parent directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("viewconfig: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("viewconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables consulted by ApplyEnv.
const (
	EnvStructure = "LATTICE_STRUCTURE"
	EnvScene     = "LATTICE_SCENE"
	EnvLabMode   = "LATTICE_LAB_MODE"
	EnvAnimate   = "LATTICE_ANIMATE"
)

// ApplyEnv overrides fields from LATTICE_* environment variables. Unparseable booleans
// and unknown scene kinds are ignored.
func ApplyEnv(p Prefs) Prefs {
	if v := strings.TrimSpace(os.Getenv(EnvStructure)); v != "" {
		p.Structure = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvScene))); v != "" {
		switch v {
		case SceneAtomic, SceneLattice, SceneEmpty:
			p.Scene = v
		}
	}
	if b, err := strconv.ParseBool(os.Getenv(EnvLabMode)); err == nil {
		p = p.WithTheme(p.Theme().WithLab(b))
	}
	if b, err := strconv.ParseBool(os.Getenv(EnvAnimate)); err == nil {
		p.Animate = b
	}
	return p
}
