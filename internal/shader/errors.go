// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shader

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return "Failed to compile " + e.Stage.String() + " Shader\nDetailed error message: " + e.Log
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "Failed to link shader program: " + e.Log
}
