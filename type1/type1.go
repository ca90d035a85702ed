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

// Package type1 reads PostScript Type 1 font programs.
//
// The reader understands both the plain PFA form and the PFB
// container, decrypts the eexec section and the charstrings, and
// interprets every glyph program into an outline.
package type1

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/psenc"

	"seehuhn.de/go/charstring"
	"seehuhn.de/go/charstring/eexec"
	"seehuhn.de/go/charstring/pfb"
)

// Font is a parsed Type 1 font program with all glyphs interpreted.
type Font struct {
	*charstring.Font

	FontName string

	// Encoding maps character codes to glyph names.  Codes not used
	// by the font hold the empty string.
	Encoding [256]string
}

// Read parses a Type 1 font program in PFA or PFB form.
func Read(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a Type 1 font program in PFA or PFB form.
func Parse(data []byte) (*Font, error) {
	if pfb.IsPFB(data) {
		var err error
		data, err = pfb.Decode(data)
		if err != nil {
			return nil, err
		}
	}

	idx := bytes.Index(data, []byte("eexec"))
	if idx < 0 {
		return nil, invalidSince("missing eexec section")
	}
	clearText := data[:idx]
	enc := skipSpace(data[idx+len("eexec"):])

	if eexec.IsHex(enc) {
		var err error
		enc, err = eexec.DecodeHex(hexPrefix(enc))
		if err != nil {
			return nil, err
		}
	}
	if len(enc) < 4 {
		return nil, invalidSince("eexec section too short")
	}
	// the first four plaintext bytes are random padding
	private := eexec.Decrypt(eexec.EExecKey, enc)[4:]

	res := &Font{
		Font: charstring.NewFont(charstring.Type1),
	}
	res.parseClear(clearText)

	lenIV := 4
	if v, ok := intAfter(private, "/lenIV"); ok {
		lenIV = v
	}

	subrs, err := parseSubrs(private, lenIV)
	if err != nil {
		return nil, err
	}
	res.SetSubroutines(subrs, nil)

	charstrings, err := parseCharstrings(private, lenIV)
	if err != nil {
		return nil, err
	}
	if len(charstrings) == 0 {
		return nil, invalidSince("no charstrings found")
	}

	enc2 := res.Encoding
	res.SetEncodingResolver(func(code byte) string {
		return enc2[code]
	})

	for _, cs := range charstrings {
		_, err := res.AddGlyph(cs.name, cs.code)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", cs.name, err)
		}
	}
	res.Consolidate()

	return res, nil
}

// parseClear extracts the font name, font matrix and encoding from
// the cleartext part of the font program.
func (f *Font) parseClear(data []byte) {
	if name, ok := nameAfter(data, "/FontName"); ok {
		f.FontName = name
	}
	if m, ok := matrixAfter(data, "/FontMatrix"); ok {
		f.FontMatrix = m
	}
	f.parseEncoding(data)
}

func (f *Font) parseEncoding(data []byte) {
	idx := bytes.Index(data, []byte("/Encoding"))
	if idx < 0 {
		// fall back to the standard encoding
		copy(f.Encoding[:], psenc.StandardEncoding[:])
		return
	}
	rest := data[idx+len("/Encoding"):]

	// The built-in encoding is either a reference to the standard
	// encoding or a sequence of "dup code /name put" entries.
	end := bytes.Index(rest, []byte("def"))
	if end < 0 {
		end = len(rest)
	}
	if bytes.Contains(rest[:end], []byte("StandardEncoding")) {
		copy(f.Encoding[:], psenc.StandardEncoding[:])
		return
	}

	for {
		d := bytes.Index(rest, []byte("dup "))
		if d < 0 {
			return
		}
		rest = skipSpace(rest[d+4:])

		code, n := parseInt(rest)
		if n == 0 {
			return
		}
		rest = skipSpace(rest[n:])

		if len(rest) == 0 || rest[0] != '/' {
			return
		}
		name, n := parseName(rest)
		rest = rest[n:]

		if code >= 0 && code < 256 {
			f.Encoding[code] = name
		}
	}
}

type namedCode struct {
	name string
	code []byte
}

// parseCharstrings extracts and decrypts the entries of the
// /CharStrings dictionary.  Entries have the form
//
//	/name length RD <binary> ND
func parseCharstrings(data []byte, lenIV int) ([]namedCode, error) {
	idx := bytes.Index(data, []byte("/CharStrings"))
	if idx < 0 {
		return nil, invalidSince("missing /CharStrings")
	}
	rest := data[idx:]
	d := bytes.Index(rest, []byte("begin"))
	if d < 0 {
		return nil, invalidSince("malformed /CharStrings")
	}
	rest = rest[d+len("begin"):]

	var res []namedCode
	for {
		rest = skipSpace(rest)
		if len(rest) == 0 || bytes.HasPrefix(rest, []byte("end")) {
			break
		}
		if rest[0] != '/' {
			break
		}
		name, n := parseName(rest)
		rest = skipSpace(rest[n:])

		length, n := parseInt(rest)
		if n == 0 || length < lenIV {
			return nil, invalidSince("malformed charstring entry")
		}
		rest = rest[n:]

		bin, tail, err := binaryAfterRD(rest, length)
		if err != nil {
			return nil, err
		}
		rest = tail

		plain, err := eexec.DecryptCharstring(bin, lenIV)
		if err != nil {
			return nil, err
		}
		res = append(res, namedCode{name: name, code: plain})

		// skip the closing ND / |- token
		rest = skipToken(rest)
	}
	return res, nil
}

// parseSubrs extracts and decrypts the /Subrs array.  Entries have
// the form
//
//	dup index length RD <binary> NP
func parseSubrs(data []byte, lenIV int) ([][]byte, error) {
	idx := bytes.Index(data, []byte("/Subrs"))
	if idx < 0 {
		return nil, nil
	}
	rest := skipSpace(data[idx+len("/Subrs"):])

	count, n := parseInt(rest)
	if n == 0 || count < 0 {
		return nil, invalidSince("malformed /Subrs")
	}
	rest = rest[n:]

	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		d := bytes.Index(rest, []byte("dup "))
		if d < 0 {
			break
		}
		rest = skipSpace(rest[d+4:])

		index, n := parseInt(rest)
		if n == 0 {
			return nil, invalidSince("malformed subroutine entry")
		}
		rest = skipSpace(rest[n:])

		length, n := parseInt(rest)
		if n == 0 || length < lenIV {
			return nil, invalidSince("malformed subroutine entry")
		}
		rest = rest[n:]

		bin, tail, err := binaryAfterRD(rest, length)
		if err != nil {
			return nil, err
		}
		rest = tail

		plain, err := eexec.DecryptCharstring(bin, lenIV)
		if err != nil {
			return nil, err
		}
		if index >= 0 && index < count {
			res[index] = plain
		}
	}
	return res, nil
}

// binaryAfterRD skips the RD token (or its -| alias) and the single
// space after it, and returns the following length bytes.
func binaryAfterRD(data []byte, length int) (bin, rest []byte, err error) {
	data = skipSpace(data)
	switch {
	case bytes.HasPrefix(data, []byte("RD ")), bytes.HasPrefix(data, []byte("-| ")):
		data = data[3:]
	default:
		return nil, nil, invalidSince("missing RD token")
	}
	if length > len(data) {
		return nil, nil, invalidSince("truncated binary data")
	}
	return data[:length], data[length:], nil
}

func skipSpace(data []byte) []byte {
	for len(data) > 0 {
		switch data[0] {
		case ' ', '\t', '\r', '\n', '\f':
			data = data[1:]
		default:
			return data
		}
	}
	return data
}

func skipToken(data []byte) []byte {
	data = skipSpace(data)
	for len(data) > 0 && !isDelim(data[0]) {
		data = data[1:]
	}
	return data
}

func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '/', '[', ']', '{', '}', '(', ')':
		return true
	}
	return false
}

// parseName reads a /name token and returns the name without the
// slash, together with the number of bytes consumed.
func parseName(data []byte) (string, int) {
	n := 1
	for n < len(data) && !isDelim(data[n]) {
		n++
	}
	return string(data[1:n]), n
}

func parseInt(data []byte) (int, int) {
	n := 0
	if n < len(data) && (data[n] == '-' || data[n] == '+') {
		n++
	}
	for n < len(data) && data[n] >= '0' && data[n] <= '9' {
		n++
	}
	v, err := strconv.Atoi(string(data[:n]))
	if err != nil {
		return 0, 0
	}
	return v, n
}

// intAfter finds the first occurrence of key and parses the integer
// following it.
func intAfter(data []byte, key string) (int, bool) {
	idx := bytes.Index(data, []byte(key))
	if idx < 0 {
		return 0, false
	}
	v, n := parseInt(skipSpace(data[idx+len(key):]))
	if n == 0 {
		return 0, false
	}
	return v, true
}

// nameAfter finds the first occurrence of key and parses the /name
// following it.
func nameAfter(data []byte, key string) (string, bool) {
	idx := bytes.Index(data, []byte(key))
	if idx < 0 {
		return "", false
	}
	rest := skipSpace(data[idx+len(key):])
	if len(rest) == 0 || rest[0] != '/' {
		return "", false
	}
	name, _ := parseName(rest)
	return name, true
}

// matrixAfter parses the six-element array following key.
func matrixAfter(data []byte, key string) (matrix.Matrix, bool) {
	idx := bytes.Index(data, []byte(key))
	if idx < 0 {
		return matrix.Matrix{}, false
	}
	rest := skipSpace(data[idx+len(key):])
	if len(rest) == 0 || rest[0] != '[' {
		return matrix.Matrix{}, false
	}
	rest = rest[1:]

	var M matrix.Matrix
	for i := range M {
		rest = skipSpace(rest)
		n := 0
		for n < len(rest) && (rest[n] == '-' || rest[n] == '+' ||
			rest[n] == '.' || rest[n] == 'e' || rest[n] == 'E' ||
			rest[n] >= '0' && rest[n] <= '9') {
			n++
		}
		v, err := strconv.ParseFloat(string(rest[:n]), 64)
		if err != nil {
			return matrix.Matrix{}, false
		}
		M[i] = v
		rest = rest[n:]
	}
	return M, true
}

// hexPrefix returns the leading part of data consisting of
// hexadecimal digits and white space.  This cuts off the cleartomark
// trailer of PFA files, except for its leading "c", which is itself a
// hexadecimal digit.
func hexPrefix(data []byte) []byte {
	n := 0
	for n < len(data) {
		b := data[n]
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' ||
			b >= '0' && b <= '9' ||
			b >= 'a' && b <= 'f' ||
			b >= 'A' && b <= 'F' {
			n++
			continue
		}
		break
	}
	return data[:n]
}

// InvalidFontError indicates a problem with the font file.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "type1: " + err.Reason
}

func invalidSince(reason string) error {
	return &InvalidFontError{reason}
}
