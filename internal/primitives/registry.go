package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is a directional light: Dir points from the scene towards the light.
type Light struct {
	Dir       [3]float32
	Color     rl.Color
	Intensity float32
}

// Lights is the per-frame lighting for lit primitives.
type Lights struct {
	Ambient  float32
	Key      Light
	Fill     Light
	Emissive float32 // fraction of the albedo added regardless of lighting (glow)
	ViewPos  [3]float32
}

// DefaultLights returns ambient 0.4, a white key light from (10,10,5) and a dim
// purple fill from the opposite side, emissive 0.5 so nodes glow.
func DefaultLights() Lights {
	return Lights{
		Ambient:  0.4,
		Key:      Light{Dir: [3]float32{10, 10, 5}, Color: rl.White, Intensity: 1},
		Fill:     Light{Dir: [3]float32{-10, -10, -5}, Color: rl.NewColor(0x7B, 0x61, 0xFF, 0xFF), Intensity: 0.2},
		Emissive: 0.5,
	}
}

// sphereRings and sphereSlices give 16x16 node spheres.
const (
	sphereRings  = 16
	sphereSlices = 16
	// lowRings/lowSlices are used for small spheres such as electrons.
	lowRings  = 8
	lowSlices = 8
)

type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry owns the sphere meshes and the lit material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache  map[string]cached
	lights Lights
}

// NewRegistry returns a registry with no meshes loaded and DefaultLights.
func NewRegistry() *Registry {
	return &Registry{
		cache:  make(map[string]cached),
		lights: DefaultLights(),
	}
}

// SetLights sets lighting and camera position for this frame. Call once per frame before drawing.
func (r *Registry) SetLights(l Lights) {
	r.lights = l
}

func (r *Registry) ensure(key string, rings, slices int) cached {
	if c, ok := r.cache[key]; ok {
		return c
	}
	// Radius 0.5 so a scale of 2r draws a sphere of radius r.
	mesh := rl.GenMeshSphere(0.5, rings, slices)
	mtl := rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	r.cache[key] = c
	return c
}

// DrawSphere draws a lit sphere of the given radius centered at position.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawSphere(position [3]float32, radius float32, color rl.Color) {
	r.drawSphere("sphere", sphereRings, sphereSlices, position, radius, color)
}

// DrawSmallSphere is DrawSphere with a coarser mesh, for many tiny spheres.
func (r *Registry) DrawSmallSphere(position [3]float32, radius float32, color rl.Color) {
	r.drawSphere("sphere-low", lowRings, lowSlices, position, radius, color)
}

func (r *Registry) drawSphere(key string, rings, slices int, position [3]float32, radius float32, color rl.Color) {
	if radius <= 0 {
		return
	}
	c := r.ensure(key, rings, slices)
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setUniforms(c.mtl.Shader)
	d := radius * 2
	transform := rl.MatrixMultiply(rl.MatrixScale(d, d, d), rl.MatrixTranslate(position[0], position[1], position[2]))
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload frees GPU resources. Call before the window closes.
func (r *Registry) Unload() {
	for key, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, key)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: ambient + key and fill directional lights + emissive glow + a tight specular from the key light.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform float ambient;
uniform vec3 keyDir;
uniform vec3 keyColor;
uniform vec3 fillDir;
uniform vec3 fillColor;
uniform float emissive;
out vec4 finalColor;
void main() {
  vec3 base = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 K = normalize(keyDir);
  vec3 F = normalize(fillDir);
  float kd = max(dot(N, K), 0.0);
  float fd = max(dot(N, F), 0.0);
  vec3 H = normalize(K + V);
  float spec = pow(max(dot(N, H), 0.0), 64.0) * 0.4 * (kd > 0.0 ? 1.0 : 0.0);
  vec3 c = base * ambient + base * kd * keyColor + base * fd * fillColor + keyColor * spec + base * emissive;
  finalColor = vec4(min(c, vec3(1.0)), colDiffuse.a);
}
`
)

// setUniforms uploads the current lights to shader (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	l := r.lights
	setVec3(shader, "viewPos", l.ViewPos)
	setFloat(shader, "ambient", l.Ambient)
	setVec3(shader, "keyDir", l.Key.Dir)
	setVec3(shader, "keyColor", scaled(l.Key.Color, l.Key.Intensity))
	setVec3(shader, "fillDir", l.Fill.Dir)
	setVec3(shader, "fillColor", scaled(l.Fill.Color, l.Fill.Intensity))
	setFloat(shader, "emissive", l.Emissive)
}

func setVec3(shader rl.Shader, name string, v [3]float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		vals := [3]float32{v[0], v[1], v[2]}
		rl.SetShaderValueV(shader, loc, vals[:], rl.ShaderUniformVec3, 1)
	}
}

func setFloat(shader rl.Shader, name string, v float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// scaled converts c to linear 0..1 RGB multiplied by intensity.
func scaled(c rl.Color, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}
