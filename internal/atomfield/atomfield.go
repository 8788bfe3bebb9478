package atomfield

import (
	"time"

	"lattice-viewer/internal/theme"

	"github.com/chewxy/math32"
)

// Options controls the decorative atom field drawn behind the atomic scene.
// Spread is the half-width of the field on X and Y; atoms sit between DepthNear and DepthFar on Z.
// Seed controls placement; Seed == 0 uses a time-based seed so every run looks different.
type Options struct {
	Count     int
	Seed      int64
	Spread    float32
	DepthNear float32
	DepthFar  float32
	MinSize   float32
	MaxSize   float32
}

// DefaultOptions returns a field in a 20x20 box, 5 to 15 units behind the origin:
// 12 atoms, or 20 when the scene is interactive.
func DefaultOptions(interactive bool) Options {
	o := Options{
		Count:     12,
		Spread:    10,
		DepthNear: -5,
		DepthFar:  -15,
		MinSize:   0.2,
		MaxSize:   0.5,
	}
	if interactive {
		o.Count = 20
	}
	return o
}

// Atom is one decorative atom: a nucleus with three electron orbits around Position.
type Atom struct {
	Position [3]float32
	Color    theme.Color
	Size     float32
}

var atomColors = []theme.Color{theme.QuantumBlue, theme.LatticePurple, theme.PlasmaPink}

// Generate places opts.Count atoms. The same non-zero seed always yields the same field.
// Colors cycle blue, purple, pink by index.
func Generate(opts Options) []Atom {
	if opts.Count <= 0 {
		return nil
	}
	if opts.Spread <= 0 {
		opts.Spread = 10
	}
	if opts.DepthNear == opts.DepthFar {
		opts.DepthNear, opts.DepthFar = -5, -15
	}
	if opts.MinSize <= 0 {
		opts.MinSize = 0.2
	}
	if opts.MaxSize < opts.MinSize {
		opts.MaxSize = opts.MinSize
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := int32(seed) ^ int32(seed>>32)

	atoms := make([]Atom, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		n := int32(i)
		x := lerp(-opts.Spread, opts.Spread, hash3(n, 0, s))
		y := lerp(-opts.Spread, opts.Spread, hash3(n, 1, s))
		z := lerp(opts.DepthFar, opts.DepthNear, hash3(n, 2, s))
		atoms = append(atoms, Atom{
			Position: [3]float32{x, y, z},
			Color:    atomColors[i%len(atomColors)],
			Size:     lerp(opts.MinSize, opts.MaxSize, hash3(n, 3, s)),
		})
	}
	return atoms
}

// hash3 maps an atom index and channel to a deterministic pseudo-random float in [0,1].
func hash3(i, channel, seed int32) float32 {
	n := i*374761393 + channel*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const inv = 1.0 / 2147483648.0
	return float32(n&0x7fffffff) * float32(inv)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// AtomSpinRate is the rotation of each atom's group about Y in rad/s.
const AtomSpinRate = 0.1

// Plane names the pair of axes an orbit lies in.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// Orbit is one electron ring around a nucleus. The ring lies in Plane and the whole ring spins about
// SpinAxis (0=X, 1=Y, 2=Z) at SpinRate rad/s. The electron sits at ElectronAt in ring space.
type Orbit struct {
	Radius     float32
	Plane      Plane
	SpinAxis   int
	SpinRate   float32
	ElectronAt [3]float32
	Color      theme.Color
}

// OrbitSegments is the number of line segments used for an orbit ring.
const OrbitSegments = 50

// ElectronScale is the electron radius relative to the nucleus size.
const ElectronScale = 0.3

// Orbits returns the three orbits every atom carries.
func Orbits() []Orbit {
	return []Orbit{
		{Radius: 1.5, Plane: PlaneXY, SpinAxis: 2, SpinRate: 0.5, ElectronAt: [3]float32{1.5, 0, 0}, Color: theme.QuantumBlue},
		{Radius: 2, Plane: PlaneXZ, SpinAxis: 0, SpinRate: 0.3, ElectronAt: [3]float32{0, 0, 2}, Color: theme.LatticePurple},
		{Radius: 2.5, Plane: PlaneYZ, SpinAxis: 1, SpinRate: 0.4, ElectronAt: [3]float32{0, 2.5, 0}, Color: theme.PlasmaPink},
	}
}

// OrbitPoints returns segments+1 points around the ring (the last equals the first) in ring space.
func OrbitPoints(o Orbit, segments int) [][3]float32 {
	if segments < 3 {
		segments = OrbitSegments
	}
	pts := make([][3]float32, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		u, v := o.Radius*math32.Cos(a), o.Radius*math32.Sin(a)
		if i == segments {
			u, v = o.Radius, 0
		}
		pts = append(pts, o.Plane.embed(u, v))
	}
	return pts
}

func (p Plane) embed(u, v float32) [3]float32 {
	switch p {
	case PlaneXZ:
		return [3]float32{u, 0, v}
	case PlaneYZ:
		return [3]float32{0, u, v}
	default:
		return [3]float32{u, v, 0}
	}
}

// Spin rotates a ring-space point by the orbit's spin at time t (seconds).
func (o Orbit) Spin(p [3]float32, t float32) [3]float32 {
	return rotate(p, o.SpinAxis, o.SpinRate*t)
}

// Electron returns the electron position in atom space at time t.
func (o Orbit) Electron(t float32) [3]float32 {
	return o.Spin(o.ElectronAt, t)
}

// Place maps an atom-space point to world space: spin the atom about Y, then translate to the atom.
func (a Atom) Place(p [3]float32, t float32) [3]float32 {
	r := rotate(p, 1, AtomSpinRate*t)
	return [3]float32{r[0] + a.Position[0], r[1] + a.Position[1], r[2] + a.Position[2]}
}

// rotate turns p by angle radians about the given axis (right-handed).
func rotate(p [3]float32, axis int, angle float32) [3]float32 {
	if angle == 0 {
		return p
	}
	c, s := math32.Cos(angle), math32.Sin(angle)
	x, y, z := p[0], p[1], p[2]
	switch axis {
	case 0:
		return [3]float32{x, y*c - z*s, y*s + z*c}
	case 1:
		return [3]float32{x*c + z*s, y, -x*s + z*c}
	default:
		return [3]float32{x*c - y*s, x*s + y*c, z}
	}
}
