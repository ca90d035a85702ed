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
	"sort"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/psenc"
)

// Dialect selects the charstring bytecode dialect of a font program.
type Dialect int

const (
	// Type1 is the charstring dialect of PostScript Type 1 fonts.
	Type1 Dialect = iota + 1

	// Type2 is the charstring dialect of CFF fonts.
	Type2
)

// Font holds the glyph programs of one font, interpreted into
// outlines, together with the information shared between them.
//
// Subroutine tables, the font matrix and the width defaults must be
// installed before glyphs are added.
type Font struct {
	Dialect Dialect

	// FontMatrix maps character space to text space.
	FontMatrix matrix.Matrix

	// Glyphs maps glyph names to interpreted glyphs.
	Glyphs map[string]*Glyph

	// DefaultWidthX and NominalWidthX are the Type 2 width defaults
	// from the CFF private dict.  A glyph's width starts out as
	// DefaultWidthX; a width operand found on the first operator is
	// added to NominalWidthX.  Both are zero for Type 1 fonts.
	DefaultWidthX float64
	NominalWidthX float64

	subrs   [][]byte
	gsubrs  [][]byte
	resolve func(byte) string
}

// NewFont returns an empty font using the given charstring dialect.
// The font matrix is initialised to the usual 1000 units per em.
func NewFont(d Dialect) *Font {
	return &Font{
		Dialect:    d,
		FontMatrix: matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		Glyphs:     make(map[string]*Glyph),
	}
}

// SetSubroutines installs the local and global subroutine tables.
// Global subroutines are only used by Type 2 fonts.
func (f *Font) SetSubroutines(local, global [][]byte) {
	f.subrs = local
	f.gsubrs = global
}

// SetEncodingResolver installs the function used to turn the
// character codes stored by the seac operator into glyph names.  If
// no resolver is set, the PostScript standard encoding is used.
func (f *Font) SetEncodingResolver(fn func(code byte) string) {
	f.resolve = fn
}

func (f *Font) glyphNameFor(code byte) string {
	if f.resolve != nil {
		return f.resolve(code)
	}
	return psenc.StandardEncoding[code]
}

// AddGlyph interprets a glyph program and registers the result under
// the given name.  On error the font is left unchanged.
func (f *Font) AddGlyph(name string, code []byte) (*Glyph, error) {
	glyph := &Glyph{
		Name:  name,
		Width: f.DefaultWidthX,
	}
	st := &state{
		firstOp: true,
		glyph:   glyph,
	}
	err := f.interpret(code, st)
	if err != nil {
		return nil, err
	}
	f.Glyphs[name] = glyph
	return glyph, nil
}

// GlyphNames returns the names of all registered glyphs, sorted.
func (f *Font) GlyphNames() []string {
	names := maps.Keys(f.Glyphs)
	sort.Strings(names)
	return names
}
