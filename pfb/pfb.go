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

// Package pfb decodes the PFB container format for Type 1 fonts.
//
// A PFB file wraps the font program in a sequence of sections, each
// introduced by a six byte header giving the section type and length.
// Stripping the headers and concatenating the section payloads
// recovers the raw font program.
package pfb

import (
	"errors"
	"io"
)

// section types
const (
	secASCII  = 1
	secBinary = 2
	secEOF    = 3
)

// IsPFB reports whether data starts with a PFB section header.
func IsPFB(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x80 &&
		data[1] >= secASCII && data[1] <= secEOF
}

// NewReader returns a reader for the font program wrapped in a PFB
// stream.  ASCII and binary sections are passed through unchanged, in
// file order.
func NewReader(r io.Reader) io.Reader {
	return &reader{r: r}
}

type reader struct {
	r    io.Reader
	len  int64
	done bool
}

func (r *reader) Read(b []byte) (n int, err error) {
	for len(b) > 0 {
		if r.done {
			return n, io.EOF
		}

		if r.len == 0 { // start of a new section
			var buf [6]byte
			k, err := io.ReadFull(r.r, buf[:2])
			if err != nil {
				if k > 0 && err == io.ErrUnexpectedEOF {
					err = ErrInvalidPFB
				}
				return n, err
			}
			if buf[0] != 0x80 || buf[1] < secASCII || buf[1] > secEOF {
				return n, ErrInvalidPFB
			}
			if buf[1] == secEOF {
				r.done = true
				continue
			}
			if _, err := io.ReadFull(r.r, buf[2:]); err != nil {
				if err == io.ErrUnexpectedEOF {
					err = ErrInvalidPFB
				}
				return n, err
			}
			r.len = int64(buf[2]) | int64(buf[3])<<8 |
				int64(buf[4])<<16 | int64(buf[5])<<24
			continue
		}

		k := len(b)
		if int64(k) > r.len {
			k = int(r.len)
		}
		k, err = r.r.Read(b[:k])
		r.len -= int64(k)
		n += k
		b = b[k:]
		if err == io.EOF && r.len > 0 {
			err = ErrInvalidPFB
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Decode strips the section structure from a PFB file and returns the
// raw font program.
func Decode(data []byte) ([]byte, error) {
	var res []byte
	for len(data) > 0 {
		if len(data) < 2 || data[0] != 0x80 {
			return nil, ErrInvalidPFB
		}
		switch data[1] {
		case secASCII, secBinary:
			if len(data) < 6 {
				return nil, ErrInvalidPFB
			}
			l := int64(data[2]) | int64(data[3])<<8 |
				int64(data[4])<<16 | int64(data[5])<<24
			if l < 0 || l > int64(len(data)-6) {
				return nil, ErrInvalidPFB
			}
			res = append(res, data[6:6+l]...)
			data = data[6+l:]
		case secEOF:
			return res, nil
		default:
			return nil, ErrInvalidPFB
		}
	}
	return res, nil
}

// ErrInvalidPFB indicates a malformed PFB section structure.
var ErrInvalidPFB = errors.New("pfb: invalid file structure")
