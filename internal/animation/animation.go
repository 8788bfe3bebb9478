package animation

import "github.com/chewxy/math32"

const (
	// spinRate is the rotation about Y in rad/s.
	spinRate = 0.1
	// tiltAmplitude and tiltRate drive the rotation about X: tiltAmplitude * sin(tiltRate * t).
	tiltAmplitude = 0.2
	tiltRate      = 0.1
	// breathAmplitude and breathRate drive the uniform scale: 1 + breathAmplitude * sin(breathRate * t).
	breathAmplitude = 0.05
	breathRate      = 0.5
)

// Pose is the group transform applied to a whole lattice for one frame.
// It depends only on elapsed time, never on the geometry being drawn.
type Pose struct {
	RotationX float32
	RotationY float32
	Scale     float32
}

// Identity is the pose used when animation is off.
func Identity() Pose {
	return Pose{Scale: 1}
}

// At returns the pose for elapsed seconds since the renderer started.
// With animate false the identity pose is returned regardless of t.
func At(elapsed float64, animate bool) Pose {
	if !animate {
		return Identity()
	}
	t := float32(elapsed)
	return Pose{
		RotationX: tiltAmplitude * math32.Sin(tiltRate*t),
		RotationY: spinRate * t,
		Scale:     1 + breathAmplitude*math32.Sin(breathRate*t),
	}
}

// Apply transforms a point in lattice space: uniform scale, then rotation about Y, then rotation about X
// (Euler XYZ order as used for scene-graph groups).
func (p Pose) Apply(v [3]float32) [3]float32 {
	x, y, z := v[0]*p.Scale, v[1]*p.Scale, v[2]*p.Scale

	if p.RotationY != 0 {
		c, s := math32.Cos(p.RotationY), math32.Sin(p.RotationY)
		x, z = x*c+z*s, -x*s+z*c
	}
	if p.RotationX != 0 {
		c, s := math32.Cos(p.RotationX), math32.Sin(p.RotationX)
		y, z = y*c-z*s, y*s+z*c
	}
	return [3]float32{x, y, z}
}

// ApplyAll transforms every point into dst, reusing its backing array when large enough.
func (p Pose) ApplyAll(dst [][3]float32, src [][3]float32) [][3]float32 {
	if cap(dst) < len(src) {
		dst = make([][3]float32, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = p.Apply(v)
	}
	return dst
}
