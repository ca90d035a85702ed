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
	"fmt"
	"math"
)

// interpret executes one charstring program.  Subroutine calls
// re-enter this function with the same state.
func (f *Font) interpret(code []byte, st *state) error {
	isT2 := f.Dialect == Type2
	path := &st.glyph.Outline

	moveTo := func(dx, dy float64) {
		st.x += dx
		st.y += dy
		if isT2 {
			path.Close()
		}
		if st.flexActive {
			// Inside a flex the intermediate moves only collect
			// reference points.
			if st.flexIndex+1 < flexLen {
				st.flex[st.flexIndex] = st.x
				st.flex[st.flexIndex+1] = st.y
			}
			st.flexIndex += 2
		} else {
			path.MoveTo(st.x, st.y)
		}
	}

	lineTo := func(dx, dy float64) {
		st.x += dx
		st.y += dy
		path.LineTo(st.x, st.y)
	}

	curveTo := func(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
		x1 := st.x + dx1
		y1 := st.y + dy1
		x2 := x1 + dx2
		y2 := y1 + dy2
		st.x = x2 + dx3
		st.y = y2 + dy3
		path.CurveTo(x1, y1, x2, y2, st.x, st.y)
	}

	rLineTo := func() error {
		dx, err := st.popFront()
		if err != nil {
			return err
		}
		dy, err := st.popFront()
		if err != nil {
			return err
		}
		lineTo(dx, dy)
		return nil
	}

	rrCurveTo := func() error {
		var d [6]float64
		for i := range d {
			v, err := st.popFront()
			if err != nil {
				return err
			}
			d[i] = v
		}
		curveTo(d[0], d[1], d[2], d[3], d[4], d[5])
		return nil
	}

	hvLineTo := func(horizontal bool) error {
		for st.sp > 0 {
			d, err := st.popFront()
			if err != nil {
				return err
			}
			if horizontal {
				lineTo(d, 0)
			} else {
				lineTo(0, d)
			}
			horizontal = !horizontal
		}
		return nil
	}

	hvCurveTo := func(horizontal bool) error {
		for st.sp > 0 {
			var d [4]float64
			for i := range d {
				v, err := st.popFront()
				if err != nil {
					return err
				}
				d[i] = v
			}
			d1, dx2, dy2, d3 := d[0], d[1], d[2], d[3]
			var d4 float64
			if st.sp == 1 {
				d4, _ = st.popFront()
			}
			if horizontal {
				curveTo(d1, 0, dx2, dy2, d4, d3)
			} else {
				curveTo(0, d1, dx2, dy2, d3, d4)
			}
			horizontal = !horizontal
		}
		return nil
	}

	// In Type 2 charstrings the advance width may be prepended to the
	// arguments of the first operator.  It is present when the
	// argument count has the wrong parity for the operator.
	maybeReadWidth := func(odd bool) {
		if !isT2 || !st.firstOp {
			return
		}
		want := 0
		if odd {
			want = 1
		}
		if st.sp == 0 || st.sp%2 != want {
			return
		}
		w, _ := st.popFront()
		st.glyph.Width = f.NominalWidthX + w
	}

	for len(code) > 0 {
		b := code[0]

		// inline numbers
		switch {
		case b >= 32 && b <= 246:
			if err := st.push(float64(int32(b) - 139)); err != nil {
				return err
			}
			code = code[1:]
			continue
		case b >= 247 && b <= 250:
			if len(code) < 2 {
				return ErrMalformedProgram
			}
			v := (int32(b)-247)*256 + int32(code[1]) + 108
			if err := st.push(float64(v)); err != nil {
				return err
			}
			code = code[2:]
			continue
		case b >= 251 && b <= 254:
			if len(code) < 2 {
				return ErrMalformedProgram
			}
			v := -(int32(b)-251)*256 - int32(code[1]) - 108
			if err := st.push(float64(v)); err != nil {
				return err
			}
			code = code[2:]
			continue
		case b == 28:
			if !isT2 {
				return ErrInvalidDialect
			}
			if len(code) < 3 {
				return ErrMalformedProgram
			}
			v := int16(uint16(code[1])<<8 | uint16(code[2]))
			if err := st.push(float64(v)); err != nil {
				return err
			}
			code = code[3:]
			continue
		case b == 255:
			if len(code) < 5 {
				return ErrMalformedProgram
			}
			v := int32(uint32(code[1])<<24 | uint32(code[2])<<16 |
				uint32(code[3])<<8 | uint32(code[4]))
			x := float64(v)
			if isT2 {
				// a 16.16 fixed point number
				x /= 65536
			}
			if err := st.push(x); err != nil {
				return err
			}
			code = code[5:]
			continue
		}

		op := csOp(b)
		if op == opEscape {
			if len(code) < 2 {
				return ErrMalformedProgram
			}
			op = op<<8 | csOp(code[1])
			code = code[2:]
		} else {
			code = code[1:]
		}

		switch op {
		case opHStem, opVStem:
			maybeReadWidth(true)
			st.clear()

		case opHStemHM, opVStemHM:
			maybeReadWidth(true)
			st.nHints += st.sp / 2
			st.clear()

		case opHintMask, opCntrMask:
			maybeReadWidth(true)
			st.nHints += st.sp / 2
			n := (st.nHints + 7) / 8
			if len(code) < n {
				return ErrMalformedProgram
			}
			code = code[n:]
			st.clear()

		case opRMoveTo:
			maybeReadWidth(true)
			dy, err := st.pop()
			if err != nil {
				return err
			}
			dx, err := st.pop()
			if err != nil {
				return err
			}
			moveTo(dx, dy)
			st.clear()

		case opHMoveTo:
			maybeReadWidth(false)
			dx, err := st.pop()
			if err != nil {
				return err
			}
			moveTo(dx, 0)
			st.clear()

		case opVMoveTo:
			maybeReadWidth(false)
			dy, err := st.pop()
			if err != nil {
				return err
			}
			moveTo(0, dy)
			st.clear()

		case opRLineTo:
			for st.sp >= 2 {
				if err := rLineTo(); err != nil {
					return err
				}
			}
			st.clear()

		case opHLineTo:
			if err := hvLineTo(true); err != nil {
				return err
			}
			st.clear()

		case opVLineTo:
			if err := hvLineTo(false); err != nil {
				return err
			}
			st.clear()

		case opRRCurveTo:
			for st.sp >= 6 {
				if err := rrCurveTo(); err != nil {
					return err
				}
			}
			st.clear()

		case opClosePath:
			path.Close()
			st.clear()

		case opCallSubr:
			if err := f.callSubr(st, false); err != nil {
				return err
			}

		case opCallGSubr:
			if err := f.callSubr(st, true); err != nil {
				return err
			}

		case opReturn:
			// nothing to do: the recursion unwinds when the
			// subroutine body is exhausted

		case opHSbW:
			if isT2 {
				return fmt.Errorf("%w: %s", ErrUnhandledOperator, op)
			}
			wx, err := st.pop()
			if err != nil {
				return err
			}
			sbx, err := st.pop()
			if err != nil {
				return err
			}
			st.glyph.Width = wx
			st.x = sbx
			st.y = 0
			st.clear()

		case opEndChar:
			maybeReadWidth(true)
			if isT2 {
				path.Close()
			}

		case opVHCurveTo:
			if err := hvCurveTo(false); err != nil {
				return err
			}
			st.clear()

		case opHVCurveTo:
			if err := hvCurveTo(true); err != nil {
				return err
			}
			st.clear()

		case opVVCurveTo:
			var dx1 float64
			if st.sp%2 == 1 {
				dx1, _ = st.popFront()
			}
			for {
				var d [4]float64
				for i := range d {
					v, err := st.popFront()
					if err != nil {
						return err
					}
					d[i] = v
				}
				curveTo(dx1, d[0], d[1], d[2], 0, d[3])
				dx1 = 0
				if st.sp < 4 {
					break
				}
			}
			st.clear()

		case opHHCurveTo:
			var dy1 float64
			if st.sp%2 == 1 {
				dy1, _ = st.popFront()
			}
			for {
				var d [4]float64
				for i := range d {
					v, err := st.popFront()
					if err != nil {
						return err
					}
					d[i] = v
				}
				curveTo(d[0], dy1, d[1], d[2], d[3], 0)
				dy1 = 0
				if st.sp < 4 {
					break
				}
			}
			st.clear()

		case opRCurveLine:
			for st.sp >= 8 {
				if err := rrCurveTo(); err != nil {
					return err
				}
			}
			if err := rLineTo(); err != nil {
				return err
			}
			st.clear()

		case opRLineCurve:
			for st.sp >= 8 {
				if err := rLineTo(); err != nil {
					return err
				}
			}
			if err := rrCurveTo(); err != nil {
				return err
			}
			st.clear()

		case opDotSection, opVStem3, opHStem3:
			st.clear()

		case opSeac:
			achar, err := st.pop()
			if err != nil {
				return err
			}
			bchar, err := st.pop()
			if err != nil {
				return err
			}
			ady, err := st.pop()
			if err != nil {
				return err
			}
			adx, err := st.pop()
			if err != nil {
				return err
			}
			// The Type 1 form has an asb argument below adx; it is
			// cleared together with the rest of the stack.
			st.glyph.Accent = &AccentedCharacter{
				BaseChar:   byte(int(bchar)),
				AccentChar: byte(int(achar)),
				Adx:        adx,
				Ady:        ady,
			}
			st.clear()

		case opDiv:
			num2, err := st.pop()
			if err != nil {
				return err
			}
			num1, err := st.pop()
			if err != nil {
				return err
			}
			var q float64
			if num2 != 0 {
				q = num1 / num2
			}
			if err := st.push(q); err != nil {
				return err
			}

		case opCallOtherSubr:
			_, err := st.pop() // the othersubr number, ignored
			if err != nil {
				return err
			}
			count, err := st.pop()
			if err != nil {
				return err
			}
			for i := 0; i < int(count); i++ {
				v, err := st.pop()
				if err != nil {
					return err
				}
				if st.psSP >= maxPostScript {
					return ErrStackOverflow
				}
				st.psStack[st.psSP] = v
				st.psSP++
			}

		case opPop:
			if st.psSP == 0 {
				return ErrStackUnderflow
			}
			st.psSP--
			if err := st.push(st.psStack[st.psSP]); err != nil {
				return err
			}

		case opSetCurrentPoint:
			y, err := st.pop()
			if err != nil {
				return err
			}
			x, err := st.pop()
			if err != nil {
				return err
			}
			st.x = x
			st.y = y
			path.MoveTo(x, y)
			st.clear()

		case opHFlex:
			if st.sp >= 7 {
				s := st.stack[:]
				curveTo(s[0], 0, s[1], s[2], s[3], 0)
				curveTo(s[4], 0, s[5], -s[2], s[6], 0)
			}
			st.clear()

		case opFlex:
			if st.sp >= 13 {
				s := st.stack[:]
				curveTo(s[0], s[1], s[2], s[3], s[4], s[5])
				curveTo(s[6], s[7], s[8], s[9], s[10], s[11])
			}
			st.clear()

		case opHFlex1:
			if st.sp >= 9 {
				s := st.stack[:]
				curveTo(s[0], s[1], s[2], s[3], s[4], 0)
				dy := s[1] + s[3] + s[7]
				curveTo(s[5], 0, s[6], s[7], s[8], -dy)
			}
			st.clear()

		case opFlex1:
			if st.sp >= 11 {
				s := st.stack[:]
				curveTo(s[0], s[1], s[2], s[3], s[4], s[5])
				dx := s[0] + s[2] + s[4] + s[6] + s[8]
				dy := s[1] + s[3] + s[5] + s[7] + s[9]
				if math.Abs(dx) > math.Abs(dy) {
					curveTo(s[6], s[7], s[8], s[9], s[10], 0)
				} else {
					curveTo(s[6], s[7], s[8], s[9], 0, s[10])
				}
			}
			st.clear()

		default:
			return fmt.Errorf("%w: %s", ErrUnhandledOperator, op)
		}

		st.firstOp = false
	}

	return nil
}
