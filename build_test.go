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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// squareFont builds a font with a single square glyph covering
// (100,100) to (200,200), advance width 100, and a font matrix chosen
// so that all device coordinates come out exact.
func squareFont(t *testing.T) *Font {
	t.Helper()

	F := NewFont(Type1)
	F.FontMatrix = matrix.Matrix{0.5, 0, 0, 0.5, 0, 0}
	_, err := F.AddGlyph("square", prog(
		num(0), num(100), op(13), // hsbw
		num(100), num(100), op(21),
		num(100), num(0), op(5),
		num(0), num(100), op(5),
		num(-100), num(0), op(5),
		op(9), op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	return F
}

func TestBuildChar(t *testing.T) {
	F := squareFont(t)

	// scale = 100 / (0.5*100) = 2, so character space maps to device
	// space as (x, y) -> (x, -y)
	got := F.BuildChar("square", 100, vec.Vec2{X: 3, Y: 4})
	want := Path{
		{Op: CmdMoveTo, Args: []float64{3, 104}},
		{Op: CmdLineTo, Args: []float64{103, 104}},
		{Op: CmdLineTo, Args: []float64{103, 4}},
		{Op: CmdLineTo, Args: []float64{3, 4}},
		{Op: CmdClose},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("path mismatch (-want +got):\n%s", d)
	}
}

// A font matrix with skew and translation terms does not commute
// with the device scale, so this pins down the composition order:
// the font matrix applies first, then the uniform scale and Y flip.
func TestBuildCharSkewedMatrix(t *testing.T) {
	F := squareFont(t)
	F.FontMatrix = matrix.Matrix{0.5, 0, 0.25, 0.5, 10, 0}

	// scale = 60 / (0.5*100 + 10) = 1
	got := F.BuildChar("square", 60, vec.Vec2{})
	want := Path{
		{Op: CmdMoveTo, Args: []float64{-15, 50}},
		{Op: CmdLineTo, Args: []float64{35, 50}},
		{Op: CmdLineTo, Args: []float64{60, 0}},
		{Op: CmdLineTo, Args: []float64{10, 0}},
		{Op: CmdClose},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("path mismatch (-want +got):\n%s", d)
	}

	gotT := F.GlyphTranslation("square", 60)
	wantT := vec.Vec2{X: 110, Y: -100}
	if gotT != wantT {
		t.Errorf("translation = %v, want %v", gotT, wantT)
	}
}

func TestBuildCharMissingGlyph(t *testing.T) {
	F := squareFont(t)
	if got := F.BuildChar("no such glyph", 100, vec.Vec2{}); len(got) != 0 {
		t.Errorf("expected empty path, got %v", got)
	}
	if got := F.GlyphTranslation("no such glyph", 100); got != (vec.Vec2{}) {
		t.Errorf("expected zero translation, got %v", got)
	}
}

func TestGlyphTranslation(t *testing.T) {
	F := squareFont(t)
	got := F.GlyphTranslation("square", 100)
	want := vec.Vec2{X: 100, Y: -200}
	if got != want {
		t.Errorf("translation = %v, want %v", got, want)
	}
}

func TestGlyphNames(t *testing.T) {
	F := NewFont(Type2)
	for _, name := range []string{"b", "a", "c"} {
		_, err := F.AddGlyph(name, prog(num(14+len(name)), op(22), op(14)))
		if err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"a", "b", "c"}
	if d := cmp.Diff(want, F.GlyphNames()); d != "" {
		t.Errorf("names mismatch (-want +got):\n%s", d)
	}
}

func TestFailedGlyphNotRegistered(t *testing.T) {
	F := NewFont(Type2)
	_, err := F.AddGlyph("bad", op(2))
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := F.Glyphs["bad"]; ok {
		t.Error("failed glyph was registered")
	}
}
