package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeProgram struct {
	locations map[string]int32
	used      int
	floats    map[int32]float32
	vec3s     map[int32]mgl32.Vec3
	mat4s     map[int32]mgl32.Mat4
}

func newFakeProgram(names ...string) *fakeProgram {
	p := &fakeProgram{
		locations: make(map[string]int32),
		floats:    make(map[int32]float32),
		vec3s:     make(map[int32]mgl32.Vec3),
		mat4s:     make(map[int32]mgl32.Mat4),
	}
	for i, n := range names {
		p.locations[n] = int32(i)
	}
	return p
}

func (p *fakeProgram) Use() { p.used++ }

func (p *fakeProgram) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}

func (p *fakeProgram) SetFloatAt(loc int32, v float32) {
	if loc >= 0 {
		p.floats[loc] = v
	}
}

func (p *fakeProgram) SetVec3At(loc int32, v mgl32.Vec3) {
	if loc >= 0 {
		p.vec3s[loc] = v
	}
}

func (p *fakeProgram) SetMat4At(loc int32, m mgl32.Mat4) {
	if loc >= 0 {
		p.mat4s[loc] = m
	}
}

func (p *fakeProgram) loc(name string) int32 { return p.locations[name] }

var allUniforms = []string{
	"transformationMatrix", "projectionMatrix", "viewMatrix",
	"lightPosition", "lightColour", "shineDamper", "reflectivity", "ambientStrength",
}

func TestStaticShaderUniforms(t *testing.T) {
	p := newFakeProgram(allUniforms...)
	s := NewStaticShader(p)
	s.Use()

	trans := NewTransformationMatrix(mgl32.Vec3{1, 2, 3}, 0, 0, 0, 2)
	proj := mgl32.Perspective(mgl32.DegToRad(70), 4.0/3.0, 0.1, 1000)
	cam := &Camera{Position: mgl32.Vec3{0, 0, 5}}
	light := Light{Position: mgl32.Vec3{0, 10, 0}, Colour: mgl32.Vec3{1, 0.9, 0.8}}

	s.LoadTransformationMatrix(trans)
	s.LoadProjectionMatrix(proj)
	s.LoadViewMatrix(cam)
	s.LoadLight(light)
	s.LoadSpecularLighting(10, 0.5)
	s.LoadAmbientLighting(0.2)

	if p.used != 1 {
		t.Errorf("Use called %d times, want 1", p.used)
	}
	if got := p.mat4s[p.loc("transformationMatrix")]; got != trans {
		t.Errorf("transformationMatrix = %v", got)
	}
	if got := p.mat4s[p.loc("projectionMatrix")]; got != proj {
		t.Errorf("projectionMatrix = %v", got)
	}
	if got := p.mat4s[p.loc("viewMatrix")]; got != cam.ViewMatrix() {
		t.Errorf("viewMatrix = %v", got)
	}
	if got := p.vec3s[p.loc("lightPosition")]; got != light.Position {
		t.Errorf("lightPosition = %v", got)
	}
	if got := p.vec3s[p.loc("lightColour")]; got != light.Colour {
		t.Errorf("lightColour = %v", got)
	}
	if got := p.floats[p.loc("shineDamper")]; got != 10 {
		t.Errorf("shineDamper = %v", got)
	}
	if got := p.floats[p.loc("reflectivity")]; got != 0.5 {
		t.Errorf("reflectivity = %v", got)
	}
	if got := p.floats[p.loc("ambientStrength")]; got != 0.2 {
		t.Errorf("ambientStrength = %v", got)
	}
}

func TestStaticShaderInactiveUniforms(t *testing.T) {
	// A program whose compiler optimised away the lighting uniforms.
	p := newFakeProgram("transformationMatrix", "projectionMatrix", "viewMatrix")
	s := NewStaticShader(p)
	s.LoadLight(Light{Position: mgl32.Vec3{1, 1, 1}})
	s.LoadSpecularLighting(1, 1)
	s.LoadAmbientLighting(1)
	if len(p.vec3s) != 0 || len(p.floats) != 0 {
		t.Errorf("writes to inactive uniforms: vec3=%v float=%v", p.vec3s, p.floats)
	}
}

func TestAttributes(t *testing.T) {
	want := map[string]uint32{"position": 0, "textureCoords": 1, "normal": 2}
	for name, loc := range want {
		if got, ok := Attributes[name]; !ok || got != loc {
			t.Errorf("Attributes[%q] = %d, %v; want %d", name, got, ok, loc)
		}
	}
}

func TestCameraViewMatrix(t *testing.T) {
	tests := []struct {
		name   string
		camera Camera
		point  mgl32.Vec3
		want   mgl32.Vec3
	}{
		{"identity", Camera{}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
		{"translated", Camera{Position: mgl32.Vec3{0, 0, 5}}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -5}},
		{"yaw 90", Camera{Yaw: 90}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{"pitch 90", Camera{Pitch: 90}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{"roll 90", Camera{Roll: 90}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mgl32.TransformCoordinate(tt.point, tt.camera.ViewMatrix())
			if !vecNear(got, tt.want) {
				t.Errorf("view * %v = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestNewTransformationMatrix(t *testing.T) {
	m := NewTransformationMatrix(mgl32.Vec3{1, 2, 3}, 0, 0, 90, 2)
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	want := mgl32.Vec3{1, 4, 3}
	if !vecNear(got, want) {
		t.Errorf("transform (1,0,0) = %v, want %v", got, want)
	}
}

// vecNear compares component-wise with an absolute tolerance; the relative
// comparison in mgl32 is too strict against zero.
func vecNear(got, want mgl32.Vec3) bool {
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			return false
		}
	}
	return true
}
