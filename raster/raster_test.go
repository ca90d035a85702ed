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

package raster

import (
	"testing"

	"seehuhn.de/go/charstring"
)

func TestGlyph(t *testing.T) {
	var p charstring.Path
	p.MoveTo(1, 1)
	p.LineTo(9, 1)
	p.LineTo(9, 9)
	p.LineTo(1, 9)
	p.Close()

	img := Glyph(p)
	b := img.Bounds()
	if b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("bitmap size %dx%d, want 10x10", b.Dx(), b.Dy())
	}
	if a := img.AlphaAt(5, 5).A; a != 255 {
		t.Errorf("interior alpha = %d, want 255", a)
	}
	if a := img.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("margin alpha = %d, want 0", a)
	}
}

func TestGlyphEmpty(t *testing.T) {
	img := Glyph(nil)
	b := img.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bitmap size %dx%d, want 2x2", b.Dx(), b.Dy())
	}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			if a := img.AlphaAt(x, y).A; a != 0 {
				t.Errorf("alpha at (%d,%d) = %d, want 0", x, y, a)
			}
		}
	}
}
