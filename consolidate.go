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

import "seehuhn.de/go/geom/matrix"

// Consolidate fills in the outlines of accented glyphs.
//
// Glyphs built with the seac operator only reference their base and
// accent characters; the references can point at glyphs which are
// added later, so resolution is deferred until the whole font has
// been read.  Consolidate is idempotent: the accent records are kept
// and the outlines are rebuilt from scratch on every call.
//
// A reference to a missing base glyph leaves the composite glyph
// unchanged; a missing accent gives the composite the bare base
// outline.
func (f *Font) Consolidate() {
	for _, g := range f.Glyphs {
		if g.Accent == nil {
			continue
		}
		base, ok := f.Glyphs[f.glyphNameFor(g.Accent.BaseChar)]
		if !ok {
			continue
		}
		outline := base.Outline.Clone()
		if accent, ok := f.Glyphs[f.glyphNameFor(g.Accent.AccentChar)]; ok {
			M := matrix.Translate(g.Accent.Adx, g.Accent.Ady)
			outline.Append(accent.Outline.Transform(M))
		}
		g.Outline = outline
	}
}
