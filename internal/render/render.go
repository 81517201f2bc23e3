// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package render uploads static geometry and runs the frame loop.
package render

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// BufferAPI is the subset of GL calls needed to upload a vertex buffer and
// describe its layout.
type BufferAPI interface {
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// StaticArrayData uploads data to the bound array buffer with
	// STATIC_DRAW usage.
	StaticArrayData(data []float32)
	// FloatAttrib describes attribute index as size tightly packed floats
	// starting at offset 0 of the bound array buffer, and enables it.
	FloatAttrib(index uint32, size int32)
}

// Mesh is geometry resident in GPU memory.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// Upload copies positions into a new array buffer bound to attribute 0 of a
// new vertex array. components is the number of floats per vertex.
func Upload(api BufferAPI, positions []float32, components int32) (Mesh, error) {
	if components <= 0 || components > 4 {
		return Mesh{}, errors.Errorf("invalid vertex size %d", components)
	}
	if len(positions) == 0 || len(positions)%int(components) != 0 {
		return Mesh{}, errors.Errorf("invalid vertex data: %d floats for %d components per vertex", len(positions), components)
	}
	m := Mesh{Count: int32(len(positions)) / components}

	m.VAO = api.GenVertexArray()
	api.BindVertexArray(m.VAO)

	m.VBO = api.GenBuffer()
	api.BindArrayBuffer(m.VBO)
	api.StaticArrayData(positions)

	api.FloatAttrib(0, components)
	return m, nil
}

// Surface is a window with a double buffered drawable.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Device issues the per frame draw commands.
type Device interface {
	Clear()
	DrawTriangles(first, count int32)
}

// Loop draws a mesh until the surface is asked to close.
type Loop struct {
	Surface Surface
	Device  Device
	Log     zerolog.Logger
}

// Run draws m every frame until the close flag of the surface is set and
// returns the number of frames drawn. The close flag is only updated by
// PollEvents, so it is checked once per frame right after event processing.
func (l *Loop) Run(m Mesh) int {
	frames := 0
	for !l.Surface.ShouldClose() {
		l.Device.Clear()
		l.Device.DrawTriangles(0, m.Count)
		l.Surface.SwapBuffers()
		l.Surface.PollEvents()
		frames++
	}
	l.Log.Debug().Int("frames", frames).Msg("window closed")
	return frames
}
