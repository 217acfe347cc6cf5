package graphics

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents a linked OpenGL program
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// NewShader compiles and links a program from vertex and fragment sources
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// LoadShader reads both stages from fsys, e.g. an embedded shader directory
func LoadShader(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}
	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}
	return NewShader(string(vertexSource), string(fragmentSource))
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete frees the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec3 sets a vector3 uniform
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v[0], v[1], v[2])
}

// SetMat4 sets a 4x4 matrix uniform
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

// SetMat3 sets a 3x3 matrix uniform
func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &m[0])
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
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

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
