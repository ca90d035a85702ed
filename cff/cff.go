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

// Package cff reads Compact Font Format data.
//
// CFF data is typically found as the "CFF " table inside OpenType
// font files.  The reader extracts the charstrings, subroutines and
// glyph names and interprets every glyph into an outline.  Only
// simple fonts with Type 2 charstrings are supported; CID-keyed fonts
// and CFF2 are not.
package cff

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/charstring"
)

// Font is a parsed CFF font with all glyphs interpreted.
type Font struct {
	*charstring.Font

	FontName string
}

// Read parses CFF font data.
func Read(data []byte) (*Font, error) {
	if len(data) < 4 {
		return nil, invalidSince("not a CFF font")
	}
	major := data[0]
	minor := data[1]
	hdrSize := int(data[2])
	if major == 2 {
		return nil, notSupported(fmt.Sprintf("CFF version %d.%d", major, minor))
	}
	if major != 1 || hdrSize < 4 || hdrSize > len(data) {
		return nil, invalidSince("not a CFF font")
	}

	fontNames, pos, err := readIndex(data, hdrSize)
	if err != nil {
		return nil, err
	}
	if len(fontNames) != 1 {
		return nil, notSupported("CFF with multiple fonts")
	}

	topDictData, pos, err := readIndex(data, pos)
	if err != nil {
		return nil, err
	}
	if len(topDictData) != 1 {
		return nil, invalidSince("invalid Top DICT INDEX")
	}

	stringIndex, pos, err := readIndex(data, pos)
	if err != nil {
		return nil, err
	}

	gsubrs, _, err := readIndex(data, pos)
	if err != nil {
		return nil, err
	}

	topDict, err := decodeDict(topDictData[0])
	if err != nil {
		return nil, err
	}
	if _, isCID := topDict[opROS]; isCID {
		return nil, notSupported("CID-keyed fonts")
	}
	if t := topDict.getInt(opCharstringType, 2); t != 2 {
		return nil, notSupported(fmt.Sprintf("charstring type %d", t))
	}

	csPos := topDict.getInt(opCharStrings, -1)
	if csPos < 0 {
		return nil, invalidSince("missing CharStrings INDEX")
	}
	charStrings, _, err := readIndex(data, csPos)
	if err != nil {
		return nil, err
	}
	nGlyphs := len(charStrings)
	if nGlyphs == 0 {
		return nil, invalidSince("no glyphs found")
	}

	F := charstring.NewFont(charstring.Type2)
	if m, ok := topDict[opFontMatrix]; ok && len(m) == 6 {
		F.FontMatrix = matrix.Matrix{m[0], m[1], m[2], m[3], m[4], m[5]}
	}

	var subrs [][]byte
	if priv, ok := topDict[opPrivate]; ok && len(priv) == 2 {
		size := int(priv[0])
		offs := int(priv[1])
		if offs < 0 || size < 0 || offs+size > len(data) {
			return nil, invalidSince("Private DICT out of bounds")
		}
		privDict, err := decodeDict(data[offs : offs+size])
		if err != nil {
			return nil, err
		}
		F.DefaultWidthX = privDict.getFloat(opDefaultWidthX, 0)
		F.NominalWidthX = privDict.getFloat(opNominalWidthX, 0)
		if sPos := privDict.getInt(opSubrs, 0); sPos > 0 {
			subrs, _, err = readIndex(data, offs+sPos)
			if err != nil {
				return nil, err
			}
		}
	}
	F.SetSubroutines(subrs, gsubrs)

	names := make([]string, nGlyphs)
	switch csetPos := topDict.getInt(opCharset, 0); csetPos {
	case 0: // ISOAdobe: glyph i has string identifier i
		for i := range names {
			names[i] = sidToName(int32(i), stringIndex)
		}
	case 1, 2:
		return nil, notSupported("predefined expert charsets")
	default:
		sids, err := readCharset(data, csetPos, nGlyphs)
		if err != nil {
			return nil, err
		}
		for i := range names {
			names[i] = sidToName(sids[i], stringIndex)
		}
	}

	res := &Font{
		Font:     F,
		FontName: string(fontNames[0]),
	}
	for i, code := range charStrings {
		_, err := F.AddGlyph(names[i], code)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", names[i], err)
		}
	}
	F.Consolidate()

	return res, nil
}

// NotSupportedError indicates that the font file seems valid but uses
// a CFF feature which is not supported by this package.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "cff: " + err.Feature + " not supported"
}

func notSupported(feature string) error {
	return &NotSupportedError{feature}
}

// InvalidFontError indicates a problem with the font file.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "cff: " + err.Reason
}

func invalidSince(reason string) error {
	return &InvalidFontError{reason}
}
