package render

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type fakeBuffers struct {
	recorder
	next uint32
	data []float32
}

func (f *fakeBuffers) GenVertexArray() uint32 {
	f.next++
	f.add("GenVertexArray()=%d", f.next)
	return f.next
}

func (f *fakeBuffers) BindVertexArray(vao uint32) { f.add("BindVertexArray(%d)", vao) }

func (f *fakeBuffers) GenBuffer() uint32 {
	f.next++
	f.add("GenBuffer()=%d", f.next)
	return f.next
}

func (f *fakeBuffers) BindArrayBuffer(vbo uint32) { f.add("BindArrayBuffer(%d)", vbo) }

func (f *fakeBuffers) StaticArrayData(data []float32) {
	f.data = append([]float32(nil), data...)
	f.add("StaticArrayData(%d)", len(data))
}

func (f *fakeBuffers) FloatAttrib(index uint32, size int32) { f.add("FloatAttrib(%d,%d)", index, size) }

// fakeWindow requests closing from PollEvents after a fixed number of frames.
type fakeWindow struct {
	*recorder
	frames int
	closed bool
}

func (w *fakeWindow) ShouldClose() bool {
	w.add("ShouldClose=%v", w.closed)
	return w.closed
}

func (w *fakeWindow) SwapBuffers() { w.add("SwapBuffers") }

func (w *fakeWindow) PollEvents() {
	w.add("PollEvents")
	w.frames--
	if w.frames <= 0 {
		w.closed = true
	}
}

type fakeDevice struct {
	*recorder
}

func (d *fakeDevice) Clear() { d.add("Clear") }

func (d *fakeDevice) DrawTriangles(first, count int32) { d.add("DrawTriangles(%d,%d)", first, count) }

func TestUpload(t *testing.T) {
	var api fakeBuffers
	positions := []float32{-0.5, -0.5, 0, 0.5, 0.5, -0.5}
	m, err := Upload(&api, positions, 2)
	require.NoError(t, err)

	assert.Equal(t, Mesh{VAO: 1, VBO: 2, Count: 3}, m)
	assert.Equal(t, positions, api.data)
	assert.Equal(t, []string{
		"GenVertexArray()=1",
		"BindVertexArray(1)",
		"GenBuffer()=2",
		"BindArrayBuffer(2)",
		"StaticArrayData(6)",
		"FloatAttrib(0,2)",
	}, api.calls)
}

func TestUploadInvalid(t *testing.T) {
	for name, tt := range map[string]struct {
		data       []float32
		components int32
	}{
		"empty":      {nil, 2},
		"partial":    {[]float32{1, 2, 3}, 2},
		"components": {[]float32{1, 2}, 0},
		"too wide":   {[]float32{1, 2, 3, 4, 5}, 5},
	} {
		t.Run(name, func(t *testing.T) {
			var api fakeBuffers
			_, err := Upload(&api, tt.data, tt.components)
			assert.Error(t, err)
			assert.Empty(t, api.calls)
		})
	}
}

func TestLoopSequence(t *testing.T) {
	rec := &recorder{}
	l := Loop{
		Surface: &fakeWindow{recorder: rec, frames: 2},
		Device:  &fakeDevice{rec},
		Log:     zerolog.Nop(),
	}
	n := l.Run(Mesh{Count: 3})
	assert.Equal(t, 2, n)

	frame := []string{"Clear", "DrawTriangles(0,3)", "SwapBuffers", "PollEvents"}
	var want []string
	want = append(want, "ShouldClose=false")
	want = append(want, frame...)
	want = append(want, "ShouldClose=false")
	want = append(want, frame...)
	want = append(want, "ShouldClose=true")
	assert.Equal(t, want, rec.calls)
}

func TestLoopOncePerIteration(t *testing.T) {
	for _, frames := range []int{1, 5, 60} {
		rec := &recorder{}
		l := Loop{
			Surface: &fakeWindow{recorder: rec, frames: frames},
			Device:  &fakeDevice{rec},
			Log:     zerolog.Nop(),
		}
		assert.Equal(t, frames, l.Run(Mesh{Count: 3}))

		counts := map[string]int{}
		for i, c := range rec.calls {
			switch c {
			case "SwapBuffers", "PollEvents", "Clear":
				counts[c]++
			case "ShouldClose=false", "ShouldClose=true":
				counts["ShouldClose"]++
				if i > 0 {
					assert.Equal(t, "PollEvents", rec.calls[i-1], "close flag must be checked after event processing")
				}
			}
		}
		assert.Equal(t, frames, counts["SwapBuffers"])
		assert.Equal(t, frames, counts["PollEvents"])
		assert.Equal(t, frames, counts["Clear"])
		// one check per iteration plus the one observing Closing
		assert.Equal(t, frames+1, counts["ShouldClose"])
	}
}

func TestLoopAlreadyClosing(t *testing.T) {
	rec := &recorder{}
	l := Loop{
		Surface: &fakeWindow{recorder: rec, closed: true},
		Device:  &fakeDevice{rec},
		Log:     zerolog.Nop(),
	}
	assert.Zero(t, l.Run(Mesh{Count: 3}))
	assert.Equal(t, []string{"ShouldClose=true"}, rec.calls)
}
