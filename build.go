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
	"seehuhn.de/go/geom/vec"
)

// deviceTransform maps the glyph from character space to device
// space, scaled so that the glyph's advance covers width device
// units.  The Y axis is flipped for rasterisation.
func (f *Font) deviceTransform(g *Glyph, width float64) matrix.Matrix {
	scale := width / (f.FontMatrix[0]*g.Width + f.FontMatrix[4])
	return f.FontMatrix.Mul(matrix.Scale(scale, -scale))
}

// BuildChar returns the named glyph's outline in device space, ready
// for rasterisation: the outline is translated so that its top-left
// corner sits at the origin, scaled to the given width, and shifted
// by the subpixel offset.
//
// An unknown glyph name gives an empty path; rendering nothing is the
// appropriate fallback.
func (f *Font) BuildChar(name string, width float64, offset vec.Vec2) Path {
	g, ok := f.Glyphs[name]
	if !ok {
		return nil
	}

	bbox := g.Outline.BBox()
	M := matrix.Translate(-bbox.LLx, -bbox.URy).
		Mul(f.deviceTransform(g, width)).
		Mul(matrix.Translate(offset.X, offset.Y))
	return g.Outline.Transform(M)
}

// GlyphTranslation returns the offset which BuildChar removed from
// the glyph, mapped to device space.  Text layout uses this to place
// the rendered bitmap relative to the glyph origin.
func (f *Font) GlyphTranslation(name string, width float64) vec.Vec2 {
	g, ok := f.Glyphs[name]
	if !ok {
		return vec.Vec2{}
	}

	bbox := g.Outline.BBox()
	M := f.deviceTransform(g, width)
	x, y := M.Apply(bbox.LLx, bbox.URy)
	return vec.Vec2{X: x, Y: y}
}
