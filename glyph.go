// seehuhn.de/go/charstring - a Type 1 and Type 2 charstring interpreter
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package charstring

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Glyph is the result of interpreting one charstring.
type Glyph struct {
	Name string

	// Width is the advance width in character space units.
	Width float64

	// Outline is the glyph outline, in character space.
	Outline Path

	// Accent is set if the glyph is a seac composite.  The outline of
	// such a glyph is filled in by [Font.Consolidate].
	Accent *AccentedCharacter
}

// AccentedCharacter describes a composite glyph built from a base
// glyph and an accent by the seac operator.  The two characters are
// referenced by character code; [Font.SetEncodingResolver] decides
// how the codes map to glyph names (the standard encoding by default).
type AccentedCharacter struct {
	BaseChar   byte
	AccentChar byte
	Adx, Ady   float64
}

// CommandType distinguishes the commands a glyph outline is made of.
type CommandType byte

const (
	// CmdMoveTo starts a new subpath.  One point argument.
	CmdMoveTo CommandType = iota + 1

	// CmdLineTo appends a straight segment.  One point argument.
	CmdLineTo

	// CmdCurveTo appends a cubic Bézier segment.  Three point
	// arguments: two control points and the end point.
	CmdCurveTo

	// CmdClose closes the current subpath.  No arguments.
	CmdClose
)

// Command is a single outline drawing command.  All coordinates are
// absolute.
type Command struct {
	Op   CommandType
	Args []float64
}

// Path is a glyph outline, a sequence of drawing commands.
type Path []Command

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Command{Op: CmdMoveTo, Args: []float64{x, y}})
}

// LineTo appends a straight segment ending at the given point.
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Command{Op: CmdLineTo, Args: []float64{x, y}})
}

// CurveTo appends a cubic Bézier segment with control points
// (x1,y1) and (x2,y2), ending at (x3,y3).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	*p = append(*p, Command{Op: CmdCurveTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath.  Calling Close on an empty path,
// or twice in a row, has no effect.
func (p *Path) Close() {
	n := len(*p)
	if n == 0 || (*p)[n-1].Op == CmdClose {
		return
	}
	*p = append(*p, Command{Op: CmdClose})
}

// Append appends a copy of other to p.
func (p *Path) Append(other Path) {
	for _, cmd := range other {
		var args []float64
		if len(cmd.Args) > 0 {
			args = make([]float64, len(cmd.Args))
			copy(args, cmd.Args)
		}
		*p = append(*p, Command{Op: cmd.Op, Args: args})
	}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	var res Path
	res.Append(p)
	return res
}

// Transform returns a copy of the path with all coordinates mapped
// through M.
func (p Path) Transform(M matrix.Matrix) Path {
	res := make(Path, len(p))
	for i, cmd := range p {
		if len(cmd.Args) == 0 {
			res[i] = Command{Op: cmd.Op}
			continue
		}
		args := make([]float64, len(cmd.Args))
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			x, y := M.Apply(cmd.Args[j], cmd.Args[j+1])
			args[j] = x
			args[j+1] = y
		}
		res[i] = Command{Op: cmd.Op, Args: args}
	}
	return res
}

// BBox returns the bounding box of all path coordinates, control
// points included.  The zero rectangle is returned for paths without
// coordinates.
func (p Path) BBox() rect.Rect {
	var bbox rect.Rect
	first := true
	for _, cmd := range p {
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			x := cmd.Args[j]
			y := cmd.Args[j+1]
			if first {
				bbox = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
				first = false
				continue
			}
			if x < bbox.LLx {
				bbox.LLx = x
			}
			if x > bbox.URx {
				bbox.URx = x
			}
			if y < bbox.LLy {
				bbox.LLy = y
			}
			if y > bbox.URy {
				bbox.URy = y
			}
		}
	}
	return bbox
}
