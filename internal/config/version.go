// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is an OpenGL context version. It implements flag.Value so that it
// can be set from the command line as "MAJOR[.MINOR]".
type Version struct {
	Major int
	Minor int
}

func NewVersion(major, minor int) *Version {
	return &Version{major, minor}
}

func (v *Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

func (v *Version) Get() interface{} {
	return *v
}

func (v *Version) Set(s string) error {
	end := strings.IndexRune(s, '.')
	if end < 0 {
		end = len(s)
	}

	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid major version in %q", s)
	}
	if n <= 0 {
		return errors.Errorf("invalid major version in %q", s)
	}
	major := int(n)
	minor := 0
	if end < len(s) {
		n, err = strconv.ParseInt(s[end+1:], 10, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid minor version in %q", s)
		}
		if n < 0 {
			return errors.Errorf("invalid minor version in %q", s)
		}
		minor = int(n)
	}
	v.Major, v.Minor = major, minor
	return nil
}

// Less returns true if v < rhs
func (v *Version) Less(rhs *Version) bool {
	if v.Major == rhs.Major {
		return v.Minor < rhs.Minor
	}
	return v.Major < rhs.Major
}

// Require returns an error if v is older than req. It is used to refuse
// contexts that a driver silently downgraded.
func (v *Version) Require(req *Version) error {
	if v.Less(req) {
		return errors.Errorf("OpenGL %s required, got %s", req, v)
	}
	return nil
}
