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

package cff

import "fmt"

// readCharset reads the charset table at pos and returns the string
// identifier for each glyph.  Glyph 0 is always ".notdef" and is not
// stored in the file.
func readCharset(data []byte, pos, nGlyphs int) ([]int32, error) {
	if pos < 0 || pos >= len(data) {
		return nil, invalidSince("charset out of bounds")
	}
	format := data[pos]
	pos++

	charset := make([]int32, 0, nGlyphs)
	charset = append(charset, 0)
	switch format {
	case 0:
		for len(charset) < nGlyphs {
			if pos+2 > len(data) {
				return nil, invalidSince("charset out of bounds")
			}
			sid := int32(data[pos])<<8 | int32(data[pos+1])
			pos += 2
			charset = append(charset, sid)
		}
	case 1, 2:
		for len(charset) < nGlyphs {
			if pos+3 > len(data) {
				return nil, invalidSince("charset out of bounds")
			}
			first := int32(data[pos])<<8 | int32(data[pos+1])
			pos += 2
			var nLeft int32
			if format == 1 {
				nLeft = int32(data[pos])
				pos++
			} else {
				if pos+2 > len(data) {
					return nil, invalidSince("charset out of bounds")
				}
				nLeft = int32(data[pos])<<8 | int32(data[pos+1])
				pos += 2
			}
			for i := int32(0); i <= nLeft && len(charset) < nGlyphs; i++ {
				charset = append(charset, first+i)
			}
		}
	default:
		return nil, notSupported(fmt.Sprintf("charset format %d", format))
	}

	return charset, nil
}

// sidToName resolves a string identifier against the standard strings
// and the font's string INDEX.
func sidToName(sid int32, stringIndex [][]byte) string {
	if sid >= 0 && int(sid) < len(stdStrings) {
		return stdStrings[sid]
	}
	if i := int(sid) - len(stdStrings); i < len(stringIndex) {
		return string(stringIndex[i])
	}
	return fmt.Sprintf("sid%d", sid)
}
