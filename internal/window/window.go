// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package window creates the GLFW window and its OpenGL context.
//
// GLFW must be driven from the main thread: callers lock the OS thread in an
// init function before calling Open.
package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/db47h/triangle/internal/config"
)

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	w *glfw.Window
	// Version is the context version granted by the driver.
	Version config.Version
}

// Open initializes GLFW, creates a window as described by cfg, makes its
// context current and calls load to resolve GL function pointers. The
// context version is checked against cfg.Version; a lower version is an
// error.
func Open(cfg config.Config, load func() error) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize GLFW")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version.Minor)
	switch cfg.Profile {
	case config.ProfileCore:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		// required on darwin for 3.2+ core contexts
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case config.ProfileCompat:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	default:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create GLFW window")
	}
	win := &Window{w: w}

	w.MakeContextCurrent()

	if err = load(); err != nil {
		win.Close()
		return nil, err
	}

	win.Version = config.Version{
		Major: w.GetAttrib(glfw.ContextVersionMajor),
		Minor: w.GetAttrib(glfw.ContextVersionMinor),
	}
	if err = win.Version.Require(&cfg.Version); err != nil {
		win.Close()
		return nil, errors.Wrap(err, "unsupported OpenGL context")
	}
	return win, nil
}

// OnResize registers fn to be called with the new framebuffer size.
func (w *Window) OnResize(fn func(width, height int)) {
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// ShouldClose reports whether the window system requested the window to
// close.
func (w *Window) ShouldClose() bool { return w.w.ShouldClose() }

func (w *Window) SwapBuffers() { w.w.SwapBuffers() }

// PollEvents processes pending window events. This is the only place where
// the close flag may change.
func (w *Window) PollEvents() { glfw.PollEvents() }

// ExtensionSupported reports whether the current context supports the named
// GL extension.
func (w *Window) ExtensionSupported(name string) bool {
	return glfw.ExtensionSupported(name)
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.w.Destroy()
	glfw.Terminate()
}

// VersionString returns the GLFW compile-time and runtime version string.
func VersionString() string {
	return glfw.GetVersionString()
}
