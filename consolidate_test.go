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
)

// seacFont builds a Type 1 font with glyphs "A", "acute" and a
// composite "Aacute" referencing the two by standard encoding codes.
func seacFont(t *testing.T) *Font {
	t.Helper()

	F := NewFont(Type1)
	_, err := F.AddGlyph("A", prog(
		num(0), num(500), op(13),
		num(100), num(100), op(21),
		num(50), num(0), op(5),
		op(9), op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	_, err = F.AddGlyph("acute", prog(
		num(0), num(200), op(13),
		num(20), num(30), op(21),
		num(5), num(40), op(5),
		op(9), op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	_, err = F.AddGlyph("Aacute", prog(
		num(0), num(500), op(13),
		num(0), num(10), num(300), num(65), num(194), op(12, 6),
		op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	return F
}

func TestConsolidate(t *testing.T) {
	F := seacFont(t)
	F.Consolidate()

	want := Path{
		{Op: CmdMoveTo, Args: []float64{100, 100}},
		{Op: CmdLineTo, Args: []float64{150, 100}},
		{Op: CmdClose},
		{Op: CmdMoveTo, Args: []float64{30, 330}},
		{Op: CmdLineTo, Args: []float64{35, 370}},
		{Op: CmdClose},
	}
	if d := cmp.Diff(want, F.Glyphs["Aacute"].Outline); d != "" {
		t.Errorf("composite outline mismatch (-want +got):\n%s", d)
	}

	// the referenced glyphs are untouched
	if n := len(F.Glyphs["A"].Outline); n != 3 {
		t.Errorf("base outline has %d commands, want 3", n)
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	F := seacFont(t)
	F.Consolidate()
	first := make(map[string]Path)
	for name, g := range F.Glyphs {
		first[name] = g.Outline.Clone()
	}

	F.Consolidate()
	for name, g := range F.Glyphs {
		if d := cmp.Diff(first[name], g.Outline); d != "" {
			t.Errorf("%s changed on second run (-first +second):\n%s", name, d)
		}
	}
}

func TestConsolidateMissingBase(t *testing.T) {
	F := NewFont(Type1)
	_, err := F.AddGlyph("Aacute", prog(
		num(0), num(500), op(13),
		num(0), num(10), num(300), num(65), num(194), op(12, 6),
		op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	F.Consolidate()
	if n := len(F.Glyphs["Aacute"].Outline); n != 0 {
		t.Errorf("outline has %d commands, want 0", n)
	}
}

func TestConsolidateMissingAccent(t *testing.T) {
	F := NewFont(Type1)
	_, err := F.AddGlyph("A", prog(
		num(0), num(500), op(13),
		num(100), num(100), op(21),
		op(9), op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	_, err = F.AddGlyph("Aacute", prog(
		num(0), num(500), op(13),
		num(0), num(10), num(300), num(65), num(194), op(12, 6),
		op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	F.Consolidate()

	want := F.Glyphs["A"].Outline
	if d := cmp.Diff(want, F.Glyphs["Aacute"].Outline); d != "" {
		t.Errorf("composite outline mismatch (-want +got):\n%s", d)
	}
}

func TestCustomEncodingResolver(t *testing.T) {
	F := NewFont(Type1)
	F.SetEncodingResolver(func(code byte) string {
		switch code {
		case 65:
			return "base.alt"
		case 194:
			return "accent.alt"
		}
		return ""
	})
	_, err := F.AddGlyph("base.alt", prog(
		num(0), num(500), op(13),
		num(1), num(2), op(21),
		op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	_, err = F.AddGlyph("accent.alt", prog(
		num(0), num(500), op(13),
		num(3), num(4), op(21),
		op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	_, err = F.AddGlyph("combined", prog(
		num(0), num(500), op(13),
		num(0), num(10), num(20), num(65), num(194), op(12, 6),
		op(14),
	))
	if err != nil {
		t.Fatal(err)
	}
	F.Consolidate()

	want := Path{
		{Op: CmdMoveTo, Args: []float64{1, 2}},
		{Op: CmdMoveTo, Args: []float64{13, 24}},
	}
	if d := cmp.Diff(want, F.Glyphs["combined"].Outline); d != "" {
		t.Errorf("composite outline mismatch (-want +got):\n%s", d)
	}
}
