// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shader

import _ "embed"

// Sources of the solid red triangle program. The vertex stage reads 2D
// positions from attribute location 0.
var (
	//go:embed triangle.vert
	TriangleVertex string
	//go:embed triangle.frag
	TriangleFragment string
)
