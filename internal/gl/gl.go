// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gl adapts the OpenGL 3.3 core bindings to the interfaces used by
// the shader and render packages. All functions must be called from the
// thread that owns the current context.
package gl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/db47h/triangle/internal/diag"
	"github.com/db47h/triangle/internal/shader"
)

// Init loads the GL function pointers for the current context.
func Init() error {
	return errors.Wrap(gl.Init(), "failed to init GL")
}

func GetGoString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

// Version returns the GL_VERSION string of the current context.
func Version() string { return GetGoString(gl.VERSION) }

func Vendor() string { return GetGoString(gl.VENDOR) }

func Renderer() string { return GetGoString(gl.RENDERER) }

// Driver implements shader.API, render.BufferAPI and render.Device on top of
// the current GL context.
type Driver struct{}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.Vertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.Fragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	panic("unsupported shader stage " + stage.String())
}

func (Driver) ShaderSource(sh uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
}

func (Driver) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (Driver) CompileStatus(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(sh uint32) string {
	var n int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(sh, n, &n, &buf[0])
	return shader.TrimLog(buf)
}

func (Driver) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (Driver) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }

func (Driver) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }

func (Driver) DetachShader(prog, sh uint32) { gl.DetachShader(prog, sh) }

func (Driver) LinkProgram(prog uint32) { gl.LinkProgram(prog) }

func (Driver) LinkStatus(prog uint32) bool { return programStatus(prog, gl.LINK_STATUS) }

func (Driver) ValidateProgram(prog uint32) { gl.ValidateProgram(prog) }

func (Driver) ValidateStatus(prog uint32) bool { return programStatus(prog, gl.VALIDATE_STATUS) }

func programStatus(prog, pname uint32) bool {
	var status int32
	gl.GetProgramiv(prog, pname, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(prog uint32) string {
	var n int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(prog, n, &n, &buf[0])
	return shader.TrimLog(buf)
}

// UseProgram binds prog for all subsequent draw calls.
func (Driver) UseProgram(prog uint32) { gl.UseProgram(prog) }

func (Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Driver) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Driver) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Driver) BindArrayBuffer(vbo uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, vbo) }

func (Driver) StaticArrayData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Driver) FloatAttrib(index uint32, size int32) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(index)
}

func (Driver) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (Driver) DrawTriangles(first, count int32) { gl.DrawArrays(gl.TRIANGLES, first, count) }

func (Driver) Viewport(width, height int) { gl.Viewport(0, 0, int32(width), int32(height)) }

// EnableDebugOutput turns on synchronous debug output and forwards every
// message to r. The context must support KHR_debug.
func (Driver) EnableDebugOutput(r *diag.Reporter) {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		r.Report(diag.Message{
			Source:   source,
			Type:     gltype,
			ID:       id,
			Severity: severity,
			Text:     message,
		})
	}, nil)
}
