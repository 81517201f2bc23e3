package shader

import (
	"fmt"
	"strings"
)

// fakeGL is an in-memory stand-in for the driver. A source compiles when it
// has a #version line, a main function and balanced braces. A program links
// when every fragment input is written by the vertex stage.
type fakeGL struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	calls    []string

	// invalid forces ValidateStatus to report failure.
	invalid bool
}

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached map[uint32]bool
	linked   bool
	log      string
	deleted  bool
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (f *fakeGL) call(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) CreateShader(stage Stage) uint32 {
	f.next++
	f.shaders[f.next] = &fakeShader{stage: stage}
	f.call("CreateShader(%s)=%d", stage, f.next)
	return f.next
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.shaders[shader].source = source
}

func (f *fakeGL) CompileShader(shader uint32) {
	s := f.shaders[shader]
	f.call("CompileShader(%d)", shader)
	switch {
	case !strings.Contains(s.source, "#version"):
		s.log = "0:1(1): error: no #version directive"
	case !strings.Contains(s.source, "void main"):
		s.log = "0:1(1): error: main function not found"
	case strings.Count(s.source, "{") != strings.Count(s.source, "}"):
		s.log = "0:6(1): error: syntax error, unexpected end of file"
	default:
		s.compiled = true
	}
}

func (f *fakeGL) CompileStatus(shader uint32) bool { return f.shaders[shader].compiled }
func (f *fakeGL) ShaderInfoLog(shader uint32) string { return f.shaders[shader].log }

func (f *fakeGL) DeleteShader(shader uint32) {
	f.shaders[shader].deleted = true
	f.call("DeleteShader(%d)", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	f.next++
	f.programs[f.next] = &fakeProgram{attached: make(map[uint32]bool)}
	f.call("CreateProgram()=%d", f.next)
	return f.next
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.programs[program].deleted = true
	f.call("DeleteProgram(%d)", program)
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.programs[program].attached[shader] = true
	f.call("AttachShader(%d,%d)", program, shader)
}

func (f *fakeGL) DetachShader(program, shader uint32) {
	delete(f.programs[program].attached, shader)
	f.call("DetachShader(%d,%d)", program, shader)
}

func (f *fakeGL) LinkProgram(program uint32) {
	p := f.programs[program]
	f.call("LinkProgram(%d)", program)
	outputs := map[string]bool{}
	var inputs []string
	for sh := range p.attached {
		s := f.shaders[sh]
		for _, v := range interfaceVars(s.source, "out") {
			if s.stage == Vertex {
				outputs[v] = true
			}
		}
		if s.stage == Fragment {
			inputs = append(inputs, interfaceVars(s.source, "in")...)
		}
	}
	for _, in := range inputs {
		if !outputs[in] {
			p.log = "error: fragment shader input `" + in + "' has no matching output in the previous stage"
			return
		}
	}
	p.linked = true
}

func (f *fakeGL) LinkStatus(program uint32) bool { return f.programs[program].linked }

func (f *fakeGL) ValidateProgram(program uint32) { f.call("ValidateProgram(%d)", program) }

func (f *fakeGL) ValidateStatus(program uint32) bool {
	if f.invalid {
		f.programs[program].log = "validation: no vertex array bound"
	}
	return !f.invalid
}

func (f *fakeGL) ProgramInfoLog(program uint32) string { return f.programs[program].log }

// interfaceVars lists the names of the variables declared with the given
// storage qualifier, ignoring layout qualifiers.
func interfaceVars(src, qualifier string) []string {
	var names []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "layout") {
			if i := strings.IndexByte(line, ')'); i >= 0 {
				line = strings.TrimSpace(line[i+1:])
			}
		}
		fs := strings.Fields(line)
		if len(fs) >= 3 && fs[0] == qualifier {
			names = append(names, strings.TrimSuffix(fs[2], ";"))
		}
	}
	return names
}
