// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package console implements the blocking acknowledgment prompt shown before
// the program exits.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/db47h/triangle/internal/config"
	"golang.org/x/term"
)

// Acknowledge prints "Press <enter> to action..." to out and blocks until a
// line or EOF is read from in.
func Acknowledge(in io.Reader, out io.Writer, action string) {
	fmt.Fprintf(out, "Press <enter> to %s...\n", action)
	bufio.NewReader(in).ReadString('\n')
}

// Interactive reports whether f is connected to a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ShouldWait resolves a -wait mode against whether stdin is interactive.
func ShouldWait(mode string, interactive bool) bool {
	switch mode {
	case config.WaitAlways:
		return true
	case config.WaitNever:
		return false
	}
	return interactive
}
