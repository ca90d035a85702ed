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

import "fmt"

// A csOp is an operator byte, or 0x0c00 plus the second byte for the
// two-byte escaped operators.
type csOp uint16

const (
	opHStem      csOp = 0x0001
	opVStem      csOp = 0x0003
	opVMoveTo    csOp = 0x0004
	opRLineTo    csOp = 0x0005
	opHLineTo    csOp = 0x0006
	opVLineTo    csOp = 0x0007
	opRRCurveTo  csOp = 0x0008
	opClosePath  csOp = 0x0009
	opCallSubr   csOp = 0x000a
	opReturn     csOp = 0x000b
	opHSbW       csOp = 0x000d
	opEndChar    csOp = 0x000e
	opHStemHM    csOp = 0x0012
	opHintMask   csOp = 0x0013
	opCntrMask   csOp = 0x0014
	opRMoveTo    csOp = 0x0015
	opHMoveTo    csOp = 0x0016
	opVStemHM    csOp = 0x0017
	opRCurveLine csOp = 0x0018
	opRLineCurve csOp = 0x0019
	opVVCurveTo  csOp = 0x001a
	opHHCurveTo  csOp = 0x001b
	opShortInt   csOp = 0x001c
	opCallGSubr  csOp = 0x001d
	opVHCurveTo  csOp = 0x001e
	opHVCurveTo  csOp = 0x001f

	opEscape csOp = 0x000c

	opDotSection      csOp = 0x0c00
	opVStem3          csOp = 0x0c01
	opHStem3          csOp = 0x0c02
	opSeac            csOp = 0x0c06
	opDiv             csOp = 0x0c0c
	opCallOtherSubr   csOp = 0x0c10
	opPop             csOp = 0x0c11
	opSetCurrentPoint csOp = 0x0c21
	opHFlex           csOp = 0x0c22
	opFlex            csOp = 0x0c23
	opHFlex1          csOp = 0x0c24
	opFlex1           csOp = 0x0c25
)

func (op csOp) String() string {
	switch op {
	case opHStem:
		return "hstem"
	case opVStem:
		return "vstem"
	case opVMoveTo:
		return "vmoveto"
	case opRLineTo:
		return "rlineto"
	case opHLineTo:
		return "hlineto"
	case opVLineTo:
		return "vlineto"
	case opRRCurveTo:
		return "rrcurveto"
	case opClosePath:
		return "closepath"
	case opCallSubr:
		return "callsubr"
	case opReturn:
		return "return"
	case opHSbW:
		return "hsbw"
	case opEndChar:
		return "endchar"
	case opHStemHM:
		return "hstemhm"
	case opHintMask:
		return "hintmask"
	case opCntrMask:
		return "cntrmask"
	case opRMoveTo:
		return "rmoveto"
	case opHMoveTo:
		return "hmoveto"
	case opVStemHM:
		return "vstemhm"
	case opRCurveLine:
		return "rcurveline"
	case opRLineCurve:
		return "rlinecurve"
	case opVVCurveTo:
		return "vvcurveto"
	case opHHCurveTo:
		return "hhcurveto"
	case opCallGSubr:
		return "callgsubr"
	case opVHCurveTo:
		return "vhcurveto"
	case opHVCurveTo:
		return "hvcurveto"
	case opDotSection:
		return "dotsection"
	case opVStem3:
		return "vstem3"
	case opHStem3:
		return "hstem3"
	case opSeac:
		return "seac"
	case opDiv:
		return "div"
	case opCallOtherSubr:
		return "callothersubr"
	case opPop:
		return "pop"
	case opSetCurrentPoint:
		return "setcurrentpoint"
	case opHFlex:
		return "hflex"
	case opFlex:
		return "flex"
	case opHFlex1:
		return "hflex1"
	case opFlex1:
		return "flex1"
	}
	if op >= 0x0c00 {
		return fmt.Sprintf("op(12 %d)", byte(op))
	}
	return fmt.Sprintf("op(%d)", byte(op))
}
