package viewer

import (
	"fmt"

	"lattice-viewer/internal/animation"
	"lattice-viewer/internal/atomfield"
	"lattice-viewer/internal/lattice"
	"lattice-viewer/internal/theme"
	"lattice-viewer/internal/viewconfig"
)

// State is everything the renderer needs to draw a frame: preferences, the current lattice and the atom field.
// It is owned by the main loop; commands and config reloads mutate it only from there.
type State struct {
	prefs     viewconfig.Prefs
	structure *lattice.Structure
	edges     []lattice.Edge
	atoms     []atomfield.Atom

	// per-frame buffers
	local [][3]float32
	world [][3]float32
}

// New builds the state for prefs, generating the lattice and atom field.
func New(prefs viewconfig.Prefs) *State {
	s := &State{prefs: prefs}
	s.regenerate()
	s.scatterAtoms()
	return s
}

// Prefs returns the current preferences (a copy).
func (s *State) Prefs() viewconfig.Prefs {
	return s.prefs
}

// Structure returns the current lattice. Callers must not modify it.
func (s *State) Structure() *lattice.Structure {
	return s.structure
}

// Edges returns the deduplicated edges of the current lattice.
func (s *State) Edges() []lattice.Edge {
	return s.edges
}

// Atoms returns the current atom field.
func (s *State) Atoms() []atomfield.Atom {
	return s.atoms
}

// Palette resolves theme colors, with node and line colors overridden by preferences when set.
func (s *State) Palette() theme.Palette {
	p := theme.PaletteFor(s.prefs.Theme())
	p.Node = theme.Resolve(s.prefs.NodeColor, p.Node)
	p.Line = theme.Resolve(s.prefs.LineColor, p.Line)
	return p
}

// SetStructureType replaces the lattice with a freshly generated one. Unknown types give an empty lattice.
func (s *State) SetStructureType(t lattice.Type) {
	s.prefs.Structure = string(t)
	s.regenerate()
}

// SetScene switches between the atomic, lattice and empty scenes.
func (s *State) SetScene(kind string) error {
	switch kind {
	case viewconfig.SceneAtomic, viewconfig.SceneLattice, viewconfig.SceneEmpty:
		s.prefs.Scene = kind
		return nil
	}
	return fmt.Errorf("unknown scene %q (use atomic, lattice or empty)", kind)
}

// SetAnimate turns the lattice rotation and breathing on or off.
func (s *State) SetAnimate(on bool) {
	s.prefs.Animate = on
}

// ToggleLab flips lab mode (forcing the dark theme).
func (s *State) ToggleLab() {
	s.prefs = s.prefs.WithTheme(s.prefs.Theme().ToggleLab())
}

// ToggleDark flips the dark theme (leaving lab mode).
func (s *State) ToggleDark() {
	s.prefs = s.prefs.WithTheme(s.prefs.Theme().ToggleDark())
}

// SetNodeSize sets the rendered node radius.
func (s *State) SetNodeSize(r float32) error {
	if r <= 0 || r > 2 {
		return fmt.Errorf("node size must be in (0, 2], got %g", r)
	}
	s.prefs.NodeSize = r
	return nil
}

// SetGridVisible, SetShowFPS and SetShowStats toggle overlays.
func (s *State) SetGridVisible(v bool) { s.prefs.GridVisible = v }
func (s *State) SetShowFPS(v bool)     { s.prefs.ShowFPS = v }
func (s *State) SetShowStats(v bool)   { s.prefs.ShowStats = v }

// Apply replaces the preferences (e.g. after the config file changed). The lattice is regenerated
// only when the structure type changed and the atom field only when its inputs changed.
func (s *State) Apply(p viewconfig.Prefs) {
	old := s.prefs
	s.prefs = p
	if old.StructureType() != p.StructureType() {
		s.regenerate()
	}
	if old.AtomCount != p.AtomCount || old.AtomSeed != p.AtomSeed || old.Interactive != p.Interactive {
		s.scatterAtoms()
	}
}

func (s *State) regenerate() {
	s.structure = lattice.Generate(s.prefs.StructureType())
	s.edges = s.structure.Edges()
	s.local = s.local[:0]
	for _, n := range s.structure.Nodes {
		s.local = append(s.local, n.Position)
	}
}

func (s *State) scatterAtoms() {
	opts := atomfield.DefaultOptions(s.prefs.Interactive)
	if s.prefs.AtomCount > 0 {
		opts.Count = s.prefs.AtomCount
	}
	opts.Seed = s.prefs.AtomSeed
	s.atoms = atomfield.Generate(opts)
}

// Frame is the lattice as it should be drawn at one instant: world-space node positions after the
// animation pose, the edges to draw between them, and sizes and colors.
type Frame struct {
	Pose       animation.Pose
	Nodes      [][3]float32
	Edges      []lattice.Edge
	NodeRadius float32
	NodeColor  theme.Color
	LineColor  theme.Color
}

// LatticeFrame computes the frame for elapsed seconds. The returned Nodes slice is reused by the
// next call, so it must not be retained across frames.
func (s *State) LatticeFrame(elapsed float64) Frame {
	pose := animation.At(elapsed, s.prefs.Animate)
	s.world = pose.ApplyAll(s.world, s.local)
	pal := s.Palette()
	return Frame{
		Pose:       pose,
		Nodes:      s.world,
		Edges:      s.edges,
		NodeRadius: s.prefs.NodeSize * pose.Scale,
		NodeColor:  pal.Node,
		LineColor:  pal.Line,
	}
}
