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

// Package raster converts glyph outlines to bitmaps.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/charstring"
)

// Glyph rasterises an outline in device coordinates, as produced by
// [charstring.Font.BuildChar], into an alpha mask.  The mask starts
// at the origin and is two pixels wider and taller than the bounding
// box of the outline.  The outline is drawn at its own coordinates,
// without a shift, so for BuildChar output, whose top-left corner
// sits at the origin, the extra pixels lie to the right and below.
func Glyph(p charstring.Path) *image.Alpha {
	bbox := p.BBox()
	w := int(math.Ceil(bbox.URx-bbox.LLx)) + 2
	h := int(math.Ceil(bbox.URy-bbox.LLy)) + 2

	r := vector.NewRasterizer(w, h)
	for _, cmd := range p {
		switch cmd.Op {
		case charstring.CmdMoveTo:
			r.MoveTo(float32(cmd.Args[0]), float32(cmd.Args[1]))
		case charstring.CmdLineTo:
			r.LineTo(float32(cmd.Args[0]), float32(cmd.Args[1]))
		case charstring.CmdCurveTo:
			r.CubeTo(float32(cmd.Args[0]), float32(cmd.Args[1]),
				float32(cmd.Args[2]), float32(cmd.Args[3]),
				float32(cmd.Args[4]), float32(cmd.Args[5]))
		case charstring.CmdClose:
			r.ClosePath()
		}
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}

// Char builds the named glyph at the given width and rasterises it.
func Char(F *charstring.Font, name string, width float64, offset vec.Vec2) *image.Alpha {
	return Glyph(F.BuildChar(name, width, offset))
}
