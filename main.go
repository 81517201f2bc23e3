// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws a red triangle with OpenGL 3.3
// core until the window is closed.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/db47h/triangle/internal/config"
	"github.com/db47h/triangle/internal/console"
	"github.com/db47h/triangle/internal/diag"
	"github.com/db47h/triangle/internal/gl"
	"github.com/db47h/triangle/internal/mesh"
	"github.com/db47h/triangle/internal/render"
	"github.com/db47h/triangle/internal/shader"
	"github.com/db47h/triangle/internal/window"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called from the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	cfg.Register(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	wait := console.ShouldWait(cfg.Wait, console.Interactive(os.Stdin))
	if err := run(cfg, log); err != nil {
		log.Error().Msg(err.Error())
		if wait {
			console.Acknowledge(os.Stdin, os.Stderr, "abort")
		}
		os.Exit(1)
	}
	if wait {
		console.Acknowledge(os.Stdin, os.Stdout, "terminate")
	}
}

// khrDebug is the first core version that ships debug output.
var khrDebug = config.NewVersion(4, 3)

func run(cfg config.Config, log zerolog.Logger) error {
	win, err := window.Open(cfg, gl.Init)
	if err != nil {
		return err
	}
	defer win.Close()

	var drv gl.Driver
	win.OnResize(drv.Viewport)

	if cfg.Debug {
		if win.Version.Less(khrDebug) && !win.ExtensionSupported("GL_KHR_debug") {
			log.Warn().Stringer("context", &win.Version).Msg("GL debug output not available")
		} else {
			drv.EnableDebugOutput(&diag.Reporter{Log: log})
		}
	}

	fmt.Println(gl.Version())
	log.Debug().
		Str("glfw", window.VersionString()).
		Str("vendor", gl.Vendor()).
		Str("renderer", gl.Renderer()).
		Stringer("context", &win.Version).
		Msg("context ready")

	tri, err := render.Upload(drv, mesh.Flatten(mesh.Triangle()), mesh.Components)
	if err != nil {
		return errors.Wrap(err, "failed to upload triangle")
	}

	b := shader.Builder{GL: drv, Log: log}
	prog, err := b.Build(shader.TriangleVertex, shader.TriangleFragment)
	if err != nil {
		return err
	}
	drv.UseProgram(prog)

	loop := render.Loop{Surface: win, Device: drv, Log: log}
	loop.Run(tri)
	return nil
}
