// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package diag reports messages from the GL debug output.
package diag

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Debug output enums from KHR_debug / OpenGL 4.3.
const (
	TypeError              = 0x824C
	TypeDeprecatedBehavior = 0x824D
	TypeUndefinedBehavior  = 0x824E
	TypePortability        = 0x824F
	TypePerformance        = 0x8250
	TypeOther              = 0x8251

	SeverityHigh         = 0x9146
	SeverityMedium       = 0x9147
	SeverityLow          = 0x9148
	SeverityNotification = 0x826B
)

// Message is one debug output message.
type Message struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity uint32
	Text     string
}

// Label returns the tag printed in front of messages of type typ. Only
// errors are tagged.
func Label(typ uint32) string {
	if typ == TypeError {
		return "** GL ERROR **"
	}
	return ""
}

// Line formats m the way the driver callback prints it.
func Line(m Message) string {
	return fmt.Sprintf("GL CALLBACK: %s type = 0x%x, severity = 0x%x, message = %s", Label(m.Type), m.Type, m.Severity, m.Text)
}

// Level maps a message severity to a log level.
func Level(severity uint32) zerolog.Level {
	switch severity {
	case SeverityHigh:
		return zerolog.ErrorLevel
	case SeverityMedium:
		return zerolog.WarnLevel
	case SeverityLow:
		return zerolog.InfoLevel
	case SeverityNotification:
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// Reporter logs debug output messages.
type Reporter struct {
	Log zerolog.Logger
}

func (r *Reporter) Report(m Message) {
	r.Log.WithLevel(Level(m.Severity)).
		Uint32("source", m.Source).
		Uint32("id", m.ID).
		Msg(Line(m))
}
