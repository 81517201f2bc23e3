// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the compiled-in settings of the triangle example and
// the command line flags that override them.
package config

import (
	"flag"

	"github.com/pkg/errors"
)

// OpenGL profiles accepted by the -profile flag.
const (
	ProfileCore   = "core"
	ProfileCompat = "compat"
	ProfileAny    = "any"
)

// Acknowledgment modes accepted by the -wait flag.
const (
	WaitAuto   = "auto"
	WaitAlways = "always"
	WaitNever  = "never"
)

type Config struct {
	Width   int
	Height  int
	Title   string
	Version Version
	Profile string
	// Debug enables GL debug output and installs the message callback.
	Debug   bool
	Wait    string
	Verbose bool
}

// Default returns the settings the example is built with.
func Default() Config {
	return Config{
		Width:   800,
		Height:  600,
		Title:   "Triangle example",
		Version: Version{3, 3},
		Profile: ProfileCore,
		Debug:   true,
		Wait:    WaitAuto,
	}
}

// Register binds the fields of c to flags in fs. Current values of c are used
// as flag defaults.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.Var(&c.Version, "gl", "OpenGL api `version`")
	fs.StringVar(&c.Profile, "profile", c.Profile, "OpenGL `profile`: core, compat or any")
	fs.IntVar(&c.Width, "width", c.Width, "window `width`")
	fs.IntVar(&c.Height, "height", c.Height, "window `height`")
	fs.StringVar(&c.Title, "title", c.Title, "window `title`")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable GL debug output")
	fs.StringVar(&c.Wait, "wait", c.Wait, "wait for <enter> before exiting: auto, always or never")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose output")
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Version.Major <= 0 {
		return errors.Errorf("invalid OpenGL version %s", &c.Version)
	}
	switch c.Profile {
	case ProfileCore, ProfileCompat, ProfileAny:
	default:
		return errors.Errorf("unknown OpenGL profile %q", c.Profile)
	}
	switch c.Wait {
	case WaitAuto, WaitAlways, WaitNever:
	default:
		return errors.Errorf("unknown wait mode %q", c.Wait)
	}
	return nil
}

// CoreProfile reports whether a core (non-legacy) context is requested.
func (c *Config) CoreProfile() bool {
	return c.Profile == ProfileCore
}
