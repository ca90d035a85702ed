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

// readIndex reads the INDEX structure starting at pos.  It returns
// the entries and the position of the first byte after the INDEX.
func readIndex(data []byte, pos int) ([][]byte, int, error) {
	if pos < 0 || pos+2 > len(data) {
		return nil, 0, invalidSince("INDEX out of bounds")
	}
	count := int(data[pos])<<8 | int(data[pos+1])
	pos += 2
	if count == 0 {
		return nil, pos, nil
	}

	if pos >= len(data) {
		return nil, 0, invalidSince("INDEX out of bounds")
	}
	offSize := int(data[pos])
	pos++
	if offSize < 1 || offSize > 4 {
		return nil, 0, invalidSince("invalid INDEX offset size")
	}
	if pos+(count+1)*offSize > len(data) {
		return nil, 0, invalidSince("INDEX out of bounds")
	}

	offsets := make([]int, count+1)
	prev := 1
	for i := range offsets {
		offs := 0
		for j := 0; j < offSize; j++ {
			offs = offs<<8 | int(data[pos])
			pos++
		}
		if offs < prev {
			return nil, 0, invalidSince("invalid INDEX offsets")
		}
		offsets[i] = offs
		prev = offs
	}

	base := pos - 1 // offsets are relative to the byte before the data
	if base+offsets[count] > len(data) {
		return nil, 0, invalidSince("INDEX out of bounds")
	}

	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = data[base+offsets[i] : base+offsets[i+1]]
	}
	return res, base + offsets[count], nil
}
