// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeFields(t *testing.T) {
	ins := instructions.Decode(0xd12f)
	test.ExpectEquality(t, ins.Operator, instructions.DRW)
	test.ExpectEquality(t, ins.Word, 0xd12f)
	test.ExpectEquality(t, ins.X, 0x1)
	test.ExpectEquality(t, ins.Y, 0x2)
	test.ExpectEquality(t, ins.N, 0xf)
	test.ExpectEquality(t, ins.KK, 0x2f)
	test.ExpectEquality(t, ins.NNN, 0x12f)
}

func TestDecodeOperators(t *testing.T) {
	var decodes = []struct {
		word uint16
		op   instructions.Operator
	}{
		{0x00e0, instructions.CLS},
		{0x00ee, instructions.RET},
		{0x1234, instructions.JP},
		{0x2456, instructions.CALL},
		{0x3a05, instructions.SEImm},
		{0x4a05, instructions.SNEImm},
		{0x5ab0, instructions.SEReg},
		{0x6a05, instructions.LDImm},
		{0x7a05, instructions.ADDImm},
		{0x8ab0, instructions.LDReg},
		{0x8ab1, instructions.OR},
		{0x8ab2, instructions.AND},
		{0x8ab3, instructions.XOR},
		{0x8ab4, instructions.ADDReg},
		{0x8ab5, instructions.SUB},
		{0x8ab6, instructions.SHR},
		{0x8ab7, instructions.SUBN},
		{0x8abe, instructions.SHL},
		{0x9ab0, instructions.SNEReg},
		{0xa123, instructions.LDI},
		{0xb123, instructions.JPV0},
		{0xca0f, instructions.RND},
		{0xdab5, instructions.DRW},
		{0xea9e, instructions.SKP},
		{0xeaa1, instructions.SKNP},
		{0xfa07, instructions.LDVxDT},
		{0xfa0a, instructions.LDKey},
		{0xfa15, instructions.LDDTVx},
		{0xfa18, instructions.LDSTVx},
		{0xfa1e, instructions.ADDI},
		{0xfa29, instructions.LDF},
		{0xfa33, instructions.BCD},
		{0xfa55, instructions.STRegs},
		{0xfa65, instructions.LDRegs},

		// unrecognised words
		{0x0000, instructions.Unrecognised},
		{0x0123, instructions.Unrecognised},
		{0x00e1, instructions.Unrecognised},
		{0x5ab1, instructions.Unrecognised},
		{0x8ab8, instructions.Unrecognised},
		{0x8abf, instructions.Unrecognised},
		{0x9ab1, instructions.Unrecognised},
		{0xea9f, instructions.Unrecognised},
		{0xfa00, instructions.Unrecognised},
		{0xfaff, instructions.Unrecognised},
	}

	seen := make(map[instructions.Operator]bool)
	for _, d := range decodes {
		ins := instructions.Decode(d.word)
		test.ExpectEquality(t, ins.Operator, d.op, d.word)
		seen[ins.Operator] = true
	}

	// every operator has been decoded at least once
	for op := instructions.Unrecognised; op < instructions.NumOperators; op++ {
		test.ExpectSuccess(t, seen[op], op)
	}
}

func TestCategory(t *testing.T) {
	for op := instructions.Unrecognised + 1; op < instructions.NumOperators; op++ {
		test.ExpectInequality(t, op.Category(), instructions.Unknown, op)
		test.ExpectInequality(t, op.Mnemonic(), "???", op)
		test.ExpectInequality(t, op.String(), "Unrecognised", op)
	}
	test.ExpectEquality(t, instructions.Unrecognised.Category(), instructions.Unknown)
	test.ExpectEquality(t, instructions.DRW.Category().String(), "Display")
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, instructions.Decode(0x00e0).String(), "CLS")
	test.ExpectEquality(t, instructions.Decode(0x1234).String(), "JP 0x234")
	test.ExpectEquality(t, instructions.Decode(0x6a05).String(), "LD VA, 0x05")
	test.ExpectEquality(t, instructions.Decode(0x8ab4).String(), "ADD VA, VB")
	test.ExpectEquality(t, instructions.Decode(0xd125).String(), "DRW V1, V2, 5")
	test.ExpectEquality(t, instructions.Decode(0xf355).String(), "LD [I], V3")
	test.ExpectEquality(t, instructions.Decode(0x0123).String(), "??? 0123")
}
