// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shader compiles GLSL stages and links them into program objects.
package shader

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "Vertex"
	case Fragment:
		return "Fragment"
	}
	return "Unknown"
}

// API is the subset of the GL shader and program calls used by Builder.
// Handles are GL object names; zero is never a valid handle.
type API interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	DeleteProgram(program uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ValidateProgram(program uint32)
	ValidateStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
}

// Builder builds program objects from GLSL source text. Every call compiles
// from scratch; nothing is cached.
type Builder struct {
	GL  API
	Log zerolog.Logger
}

// Compile creates a shader object for stage and compiles source into it.
// On failure the shader object is deleted and a *CompileError carrying the
// driver's info log is returned.
func (b *Builder) Compile(stage Stage, source string) (uint32, error) {
	sh := b.GL.CreateShader(stage)
	b.GL.ShaderSource(sh, source)
	b.GL.CompileShader(sh)

	if !b.GL.CompileStatus(sh) {
		log := b.GL.ShaderInfoLog(sh)
		b.GL.DeleteShader(sh)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

// Build compiles the vertex and fragment sources and links them into a
// program. The intermediate shader objects are detached and deleted before
// Build returns. A program that fails to link is deleted and a *LinkError is
// returned.
func (b *Builder) Build(vertex, fragment string) (uint32, error) {
	prog := b.GL.CreateProgram()
	vs, err := b.Compile(Vertex, vertex)
	if err != nil {
		b.GL.DeleteProgram(prog)
		return 0, err
	}
	fs, err := b.Compile(Fragment, fragment)
	if err != nil {
		b.GL.DeleteShader(vs)
		b.GL.DeleteProgram(prog)
		return 0, err
	}
	b.GL.AttachShader(prog, vs)
	b.GL.AttachShader(prog, fs)
	b.GL.LinkProgram(prog)

	if !b.GL.LinkStatus(prog) {
		log := b.GL.ProgramInfoLog(prog)
		b.release(prog, vs, fs)
		b.GL.DeleteProgram(prog)
		return 0, &LinkError{Log: log}
	}

	// validation is informational only
	b.GL.ValidateProgram(prog)
	if !b.GL.ValidateStatus(prog) {
		b.Log.Warn().Uint32("program", prog).Str("log", b.GL.ProgramInfoLog(prog)).Msg("shader program validation failed")
	}

	b.release(prog, vs, fs)
	return prog, nil
}

func (b *Builder) release(prog uint32, shaders ...uint32) {
	for _, sh := range shaders {
		b.GL.DeleteShader(sh)
		b.GL.DetachShader(prog, sh)
	}
}

// TrimLog converts an info log buffer filled by the driver into a string.
// The buffer length reported by GL includes the terminating NUL.
func TrimLog(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimRight(string(buf), "\r\n")
}
