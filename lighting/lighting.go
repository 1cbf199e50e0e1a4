// Package lighting holds the forward-lighting shader wrapper: its uniform
// setters, the camera it derives a view matrix from and the point light it
// uploads. It issues no GL calls itself; uniforms go through a UniformWriter.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Attribute locations bound before the static shader program is linked.
var Attributes = map[string]uint32{
	"position":      0,
	"textureCoords": 1,
	"normal":        2,
}

const (
	uniformTransformation = "transformationMatrix"
	uniformProjection     = "projectionMatrix"
	uniformView           = "viewMatrix"
	uniformLightPosition  = "lightPosition"
	uniformLightColour    = "lightColour"
	uniformShineDamper    = "shineDamper"
	uniformReflectivity   = "reflectivity"
	uniformAmbient        = "ambientStrength"
)

// UniformWriter is the program a lighting shader writes its uniforms to.
// A location of -1 means the uniform is not active and writes are ignored.
type UniformWriter interface {
	Use()
	UniformLocation(name string) int32
	SetFloatAt(loc int32, v float32)
	SetVec3At(loc int32, v mgl32.Vec3)
	SetMat4At(loc int32, m mgl32.Mat4)
}

// LightingShader is a shader program that accepts transform and light uniforms.
type LightingShader interface {
	Use()
	LoadTransformationMatrix(m mgl32.Mat4)
	LoadProjectionMatrix(m mgl32.Mat4)
	LoadViewMatrix(camera *Camera)
	LoadLight(light Light)
	LoadSpecularLighting(damper, reflectivity float32)
	LoadAmbientLighting(ambientStrength float32)
}

// Light is a single point light.
type Light struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
}

// Camera is a free-look camera; angles are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Pitch    float32
	Yaw      float32
	Roll     float32
}

// ViewMatrix transforms world space into the camera's eye space.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	view := mgl32.HomogRotate3DZ(mgl32.DegToRad(c.Roll))
	view = view.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch)))
	view = view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw)))
	return view.Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// NewTransformationMatrix builds a model matrix: translation, then rotation
// about X, Y and Z (degrees), then uniform scale.
func NewTransformationMatrix(translation mgl32.Vec3, rx, ry, rz, scale float32) mgl32.Mat4 {
	m := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rx)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(ry)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rz)))
	return m.Mul4(mgl32.Scale3D(scale, scale, scale))
}
