package lighting

import "github.com/go-gl/mathgl/mgl32"

// StaticShader is the lighting shader for static textured models.
type StaticShader struct {
	program UniformWriter

	transMatLocation        int32
	projMatLocation         int32
	viewMatLocation         int32
	lightPositionLocation   int32
	lightColourLocation     int32
	shineDamperLocation     int32
	reflectivityLocation    int32
	ambientStrengthLocation int32
}

// NewStaticShader resolves every uniform location of program once.
func NewStaticShader(program UniformWriter) *StaticShader {
	s := &StaticShader{program: program}
	s.getAllUniformLocations()
	return s
}

func (s *StaticShader) getAllUniformLocations() {
	s.transMatLocation = s.program.UniformLocation(uniformTransformation)
	s.projMatLocation = s.program.UniformLocation(uniformProjection)
	s.viewMatLocation = s.program.UniformLocation(uniformView)
	s.lightPositionLocation = s.program.UniformLocation(uniformLightPosition)
	s.lightColourLocation = s.program.UniformLocation(uniformLightColour)
	s.shineDamperLocation = s.program.UniformLocation(uniformShineDamper)
	s.reflectivityLocation = s.program.UniformLocation(uniformReflectivity)
	s.ambientStrengthLocation = s.program.UniformLocation(uniformAmbient)
}

func (s *StaticShader) Use() {
	s.program.Use()
}

func (s *StaticShader) LoadTransformationMatrix(m mgl32.Mat4) {
	s.program.SetMat4At(s.transMatLocation, m)
}

func (s *StaticShader) LoadProjectionMatrix(m mgl32.Mat4) {
	s.program.SetMat4At(s.projMatLocation, m)
}

func (s *StaticShader) LoadViewMatrix(camera *Camera) {
	s.program.SetMat4At(s.viewMatLocation, camera.ViewMatrix())
}

func (s *StaticShader) LoadLight(light Light) {
	s.program.SetVec3At(s.lightPositionLocation, light.Position)
	s.program.SetVec3At(s.lightColourLocation, light.Colour)
}

func (s *StaticShader) LoadSpecularLighting(damper, reflectivity float32) {
	s.program.SetFloatAt(s.shineDamperLocation, damper)
	s.program.SetFloatAt(s.reflectivityLocation, reflectivity)
}

func (s *StaticShader) LoadAmbientLighting(ambientStrength float32) {
	s.program.SetFloatAt(s.ambientStrengthLocation, ambientStrength)
}

var _ LightingShader = (*StaticShader)(nil)
