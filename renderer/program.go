package renderer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glmix/lighting"
	"github.com/richinsley/glmix/shader"
	"github.com/richinsley/glmix/translator"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	id        uint32
	locations map[string]int32
	// names maps source uniform names to the names in translated code.
	names map[string]string
}

// NewProgram compiles and links a program. attribs are bound to their
// locations before linking; sources written for GLSL ES 3.00 are translated
// to desktop GLSL first.
func NewProgram(vertexSource, fragmentSource string, attribs map[string]uint32) (*Program, error) {
	p := &Program{
		locations: make(map[string]int32),
		names:     make(map[string]string),
	}

	var err error
	vertexSource, err = p.prepare(vertexSource, "vertex")
	if err != nil {
		return nil, err
	}
	fragmentSource, err = p.prepare(fragmentSource, "fragment")
	if err != nil {
		return nil, err
	}

	p.id, err = newProgram(vertexSource, fragmentSource, attribs)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	return p, nil
}

// NewProgramFromFiles reads the shader sources from disk. A file that does
// not exist is replaced by the given built-in source.
func NewProgramFromFiles(vertexPath, fragmentPath, builtinVertex, builtinFragment string) (*Program, error) {
	vs, err := readShaderFile(vertexPath, builtinVertex)
	if err != nil {
		return nil, err
	}
	fs, err := readShaderFile(fragmentPath, builtinFragment)
	if err != nil {
		return nil, err
	}
	return NewProgram(vs, fs, nil)
}

func readShaderFile(path, builtin string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Shader file %s not found, using built-in source", path)
		return builtin, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(data), nil
}

func (p *Program) prepare(source, stage string) (string, error) {
	if !shader.IsESSL(source) {
		return source, nil
	}
	code, names, err := translator.ToDesktop(source, stage)
	if err != nil {
		return "", err
	}
	for k, v := range names {
		p.names[k] = v
	}
	return code, nil
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// UniformLocation returns the location of a uniform, or -1 if the program
// has no active uniform of that name.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	mapped := name
	if m, ok := p.names[name]; ok {
		mapped = m
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(mapped+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	p.SetFloatAt(p.UniformLocation(name), v)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.SetVec3At(p.UniformLocation(name), v)
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.SetMat4At(p.UniformLocation(name), m)
}

func (p *Program) SetFloatAt(loc int32, v float32) {
	if loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3At(loc int32, v mgl32.Vec3) {
	if loc != -1 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetMat4At(loc int32, m mgl32.Mat4) {
	if loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// NewStaticShader builds the lighting shader from the built-in sources.
func NewStaticShader() (*lighting.StaticShader, *Program, error) {
	p, err := NewProgram(shader.StaticVertexShader(), shader.StaticFragmentShader(), lighting.Attributes)
	if err != nil {
		return nil, nil, err
	}
	return lighting.NewStaticShader(p), p, nil
}

var _ lighting.UniformWriter = (*Program)(nil)

func newProgram(vertexShaderSource, fragmentShaderSource string, attribs map[string]uint32) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	for name, loc := range attribs {
		gl.BindAttribLocation(program, loc, gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
