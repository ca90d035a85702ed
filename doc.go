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

// Package charstring interprets Type 1 and Type 2 charstrings.
//
// A charstring is the Adobe bytecode which describes the outline of a
// single glyph.  The interpreter executes such a program and produces
// a vector path made of move, line and cubic Bézier commands, together
// with the glyph's advance width.  Both the original Type 1 dialect
// (used in PFA/PFB font files) and the Type 2 dialect (used in CFF
// fonts) are supported.
//
// Glyph programs are registered with a [Font], which also holds the
// local and global subroutine tables and the font matrix.  After all
// glyphs of a font have been added, [Font.Consolidate] resolves
// accented characters built with the seac mechanism.  The subpackages
// eexec, pfb, type1 and cff provide the file-format plumbing needed
// to fill a Font from real font files; the raster subpackage converts
// the resulting paths to bitmaps.
package charstring
