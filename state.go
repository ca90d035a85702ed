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

const (
	// maxOperands is the operand stack capacity (Type 2 limit).
	maxOperands = 48

	// maxPostScript is the capacity of the othersubr scratch stack.
	maxPostScript = 24

	// maxCallDepth is the subroutine nesting limit (Type 2 limit).
	maxCallDepth = 10

	// flexLen is the number of coordinates collected for one Type 1
	// flex feature: the reference point plus six curve points.
	flexLen = 14
)

// state carries the interpreter state for one top-level glyph.  The
// same state flows through all nested subroutine calls.
type state struct {
	stack [maxOperands]float64
	sp    int

	// current point, in character space
	x, y float64

	// nHints counts the stem hints declared by hstemhm, vstemhm and
	// the operands of hintmask and cntrmask (hstem and vstem are not
	// counted); it determines the length of the mask data bytes.
	nHints int

	flexActive bool
	flexIndex  int
	flex       [flexLen]float64

	// scratch stack for the Type 1 othersubr mechanism
	psStack [maxPostScript]float64
	psSP    int

	// firstOp is true until the first operator of the top-level
	// program has executed.  Entering a subroutine does not reset it.
	firstOp bool

	depth int

	glyph *Glyph
}

func (s *state) push(v float64) error {
	if s.sp >= len(s.stack) {
		return ErrStackOverflow
	}
	s.stack[s.sp] = v
	s.sp++
	return nil
}

func (s *state) pop() (float64, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.stack[s.sp], nil
}

// popFront removes and returns the bottom stack entry.  This is used
// by the variadic operators, which consume their arguments in program
// order.
func (s *state) popFront() (float64, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	v := s.stack[0]
	s.sp--
	copy(s.stack[:s.sp], s.stack[1:s.sp+1])
	return v, nil
}

func (s *state) clear() {
	s.sp = 0
}
