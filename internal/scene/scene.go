package scene

import (
	"lattice-viewer/internal/atomfield"
	"lattice-viewer/internal/primitives"
	"lattice-viewer/internal/theme"
	"lattice-viewer/internal/viewconfig"
	"lattice-viewer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMajorAlpha = 90
	axisLineAlpha  = 200
	gridDrop       = 1
)

// Scene holds the 3D camera and draws whichever scene the viewer state selects
// (lattice, atom field or nothing). Geometry comes from viewer.State; Scene only renders it.
type Scene struct {
	Camera rl.Camera3D
	state  *viewer.State
	prims  *primitives.Registry
	// orbit rings in ring space, computed once
	orbits      []atomfield.Orbit
	orbitPoints [][][3]float32
}

// New returns a scene looking at the origin from (0,0,12) with a 60 degree field of view.
func New(state *viewer.State) *Scene {
	s := &Scene{state: state, prims: primitives.NewRegistry()}
	s.Camera.Position = rl.NewVector3(0, 0, 12)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	s.orbits = atomfield.Orbits()
	for _, o := range s.orbits {
		s.orbitPoints = append(s.orbitPoints, atomfield.OrbitPoints(o, atomfield.OrbitSegments))
	}
	return s
}

// Update runs once per frame. In interactive mode the camera orbits the origin; otherwise it stays put.
// orbit is false while the terminal captures input.
func (s *Scene) Update(orbit bool) {
	if orbit && s.state.Prefs().Interactive {
		rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
	}
}

// Background returns the clear color for the current theme.
func (s *Scene) Background() rl.Color {
	return RLColor(s.state.Palette().Background)
}

// Draw renders the 3D scene for elapsed seconds. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw(elapsed float64) {
	prefs := s.state.Prefs()
	pal := s.state.Palette()

	lights := primitives.DefaultLights()
	lights.Key.Color = RLColor(pal.KeyLight)
	lights.Fill.Color = RLColor(pal.FillLight)
	lights.ViewPos = [3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}
	s.prims.SetLights(lights)

	rl.BeginMode3D(s.Camera)
	if prefs.GridVisible {
		drawGrid(s.gridHeight(), RLColor(pal.Grid))
	}
	switch prefs.Scene {
	case viewconfig.SceneLattice:
		s.drawLattice(elapsed)
	case viewconfig.SceneAtomic:
		s.drawAtoms(float32(elapsed))
	}
	rl.EndMode3D()
}

// drawLattice draws one sphere per node and one line per edge (each edge once).
func (s *Scene) drawLattice(elapsed float64) {
	f := s.state.LatticeFrame(elapsed)
	line := RLColor(f.LineColor)
	for _, e := range f.Edges {
		rl.DrawLine3D(vec3(f.Nodes[e.A]), vec3(f.Nodes[e.B]), line)
	}
	node := RLColor(f.NodeColor)
	for _, p := range f.Nodes {
		s.prims.DrawSphere(p, f.NodeRadius, node)
	}
}

// orbitAlpha is the opacity of orbit rings (~40%).
const orbitAlpha = 102

// drawAtoms draws each atom's nucleus, its three orbit rings and their electrons.
func (s *Scene) drawAtoms(t float32) {
	for _, a := range s.state.Atoms() {
		s.prims.DrawSphere(a.Position, a.Size, RLColor(a.Color))
		for i, o := range s.orbits {
			ring := RLColor(o.Color.WithAlpha(orbitAlpha))
			pts := s.orbitPoints[i]
			prev := a.Place(o.Spin(pts[0], t), t)
			for _, p := range pts[1:] {
				cur := a.Place(o.Spin(p, t), t)
				rl.DrawLine3D(vec3(prev), vec3(cur), ring)
				prev = cur
			}
			s.prims.DrawSmallSphere(a.Place(o.Electron(t), t), a.Size*atomfield.ElectronScale, RLColor(o.Color))
		}
	}
}

// Unload releases GPU resources held by the scene.
func (s *Scene) Unload() {
	s.prims.Unload()
}

// gridHeight puts the grid one unit below the lowest node of the lattice scene, or at y=0 otherwise.
func (s *Scene) gridHeight() float32 {
	st := s.state.Structure()
	if s.state.Prefs().Scene != viewconfig.SceneLattice || st.Empty() {
		return 0
	}
	lo, _ := st.Bounds()
	return lo[1] - gridDrop
}

// drawGrid draws a grid on the plane y with major lines every gridMajorStep and colored axes.
func drawGrid(y float32, minor rl.Color) {
	major := minor
	major.A = gridMajorAlpha
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(i), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(i)
		rl.DrawLine3D(start, end, c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, y, 0), rl.NewVector3(gridExtent, y, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, y, -gridExtent), rl.NewVector3(0, y, gridExtent), axisZ)
}

func vec3(p [3]float32) rl.Vector3 {
	return rl.NewVector3(p[0], p[1], p[2])
}

// RLColor converts a theme color to raylib.
func RLColor(c theme.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
