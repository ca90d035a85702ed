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

// bias is the offset added to Type 2 subroutine operands.  Small
// tables use the negative half of the number space to keep operands
// short.
func bias(nSubrs int) int {
	if nSubrs < 1240 {
		return 107
	} else if nSubrs < 33900 {
		return 1131
	}
	return 32768
}

// callSubr executes a callsubr or callgsubr operator.  The subroutine
// number is taken from the top of the operand stack; the rest of the
// stack is passed through to the subroutine body.
func (f *Font) callSubr(st *state, global bool) error {
	if global && f.Dialect != Type2 {
		return ErrInvalidDialect
	}
	table := f.subrs
	if global {
		table = f.gsubrs
	}

	num, err := st.pop()
	if err != nil {
		return err
	}
	idx := int(num)
	if f.Dialect == Type2 {
		idx += bias(len(table))
	}
	if idx < 0 || idx >= len(table) {
		return ErrSubroutineOutOfRange
	}

	if f.Dialect == Type1 && !global {
		// Type 1 fonts express the flex feature through the fixed
		// subroutines 0 to 2: subroutine 1 opens the flex, each
		// reference point arrives as an rmoveto followed by
		// subroutine 2, and subroutine 0 closes the flex.
		//
		// TODO(voss): dispatch through the callothersubr bodies of
		// these subroutines instead, for fonts which place unrelated
		// code at indices 0-2.
		switch idx {
		case 0:
			if st.flexIndex != flexLen {
				// incomplete flex, drop it
				return nil
			}
			path := &st.glyph.Outline
			path.CurveTo(st.flex[2], st.flex[3],
				st.flex[4], st.flex[5],
				st.flex[6], st.flex[7])
			path.CurveTo(st.flex[8], st.flex[9],
				st.flex[10], st.flex[11],
				st.flex[12], st.flex[13])
			st.flexActive = false
			st.clear()
			return nil
		case 1:
			st.flexActive = true
			st.flexIndex = 0
			st.clear()
			return nil
		case 2:
			st.clear()
			return nil
		}
	}

	body := table[idx]
	if len(body) == 0 {
		return ErrEmptySubroutine
	}

	st.depth++
	if st.depth > maxCallDepth {
		return ErrRecursionTooDeep
	}
	err = f.interpret(body, st)
	st.depth--
	return err
}
