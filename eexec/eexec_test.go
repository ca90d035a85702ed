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

package eexec

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	plain := []byte("0000/CharStrings 1 dict dup begin end")
	for _, key := range []uint16{EExecKey, CharstringKey} {
		cipher := Encrypt(key, plain)
		if bytes.Equal(cipher, plain) {
			t.Error("encryption did not change the data")
		}
		back := Decrypt(key, cipher)
		if !bytes.Equal(back, plain) {
			t.Errorf("round trip failed: %q != %q", back, plain)
		}
	}
}

func TestDecryptCharstring(t *testing.T) {
	body := []byte{139, 139, 13, 14} // 0 0 hsbw endchar
	cipher := Encrypt(CharstringKey, append([]byte("pad."), body...))

	got, err := DecryptCharstring(cipher, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, body) {
		t.Errorf("got % x, want % x", got, body)
	}

	_, err = DecryptCharstring(cipher[:2], 4)
	if !errors.Is(err, ErrShortData) {
		t.Errorf("err = %v, want ErrShortData", err)
	}
}

func TestHex(t *testing.T) {
	if !IsHex([]byte("1b2F 3c\n4d886a")) {
		t.Error("hex data not recognised")
	}
	if IsHex([]byte{0x1b, 0x2f, 0x00, 0x99}) {
		t.Error("binary data mistaken for hex")
	}

	got, err := DecodeHex([]byte("1b 2F\n3c"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x1b, 0x2f, 0x3c}) {
		t.Errorf("got % x", got)
	}

	if _, err := DecodeHex([]byte("12xy")); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("err = %v, want ErrInvalidHex", err)
	}
}
