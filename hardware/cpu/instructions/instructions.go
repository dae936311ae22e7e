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

package instructions

import "fmt"

// Instruction is a decoded instruction word.
type Instruction struct {
	Operator Operator

	// the undecoded instruction word
	Word uint16

	// register indexes in the second and third nibbles
	X uint8
	Y uint8

	// the lowest nibble, byte and twelve bits of the word
	N   uint8
	KK  uint8
	NNN uint16
}

// Decode the instruction word.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0x0f,
		Y:    uint8(word>>4) & 0x0f,
		N:    uint8(word) & 0x0f,
		KK:   uint8(word),
		NNN:  word & 0x0fff,
	}
	ins.Operator = decodeOperator(word, ins.N, ins.KK)
	return ins
}

func decodeOperator(word uint16, n uint8, kk uint8) Operator {
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SEImm
	case 0x4:
		return SNEImm
	case 0x5:
		if n == 0x0 {
			return SEReg
		}
	case 0x6:
		return LDImm
	case 0x7:
		return ADDImm
	case 0x8:
		switch n {
		case 0x0:
			return LDReg
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADDReg
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xe:
			return SHL
		}
	case 0x9:
		if n == 0x0 {
			return SNEReg
		}
	case 0xa:
		return LDI
	case 0xb:
		return JPV0
	case 0xc:
		return RND
	case 0xd:
		return DRW
	case 0xe:
		switch kk {
		case 0x9e:
			return SKP
		case 0xa1:
			return SKNP
		}
	case 0xf:
		switch kk {
		case 0x07:
			return LDVxDT
		case 0x0a:
			return LDKey
		case 0x15:
			return LDDTVx
		case 0x18:
			return LDSTVx
		case 0x1e:
			return ADDI
		case 0x29:
			return LDF
		case 0x33:
			return BCD
		case 0x55:
			return STRegs
		case 0x65:
			return LDRegs
		}
	}
	return Unrecognised
}

// String returns the instruction in assembler form.
func (ins Instruction) String() string {
	m := ins.Operator.Mnemonic()
	switch ins.Operator {
	case CLS, RET:
		return m
	case JP, CALL:
		return fmt.Sprintf("%s %#03x", m, ins.NNN)
	case SEImm, SNEImm, LDImm, ADDImm:
		return fmt.Sprintf("%s V%X, %#02x", m, ins.X, ins.KK)
	case SEReg, SNEReg, LDReg, OR, AND, XOR, ADDReg, SUB, SUBN:
		return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
	case SHR, SHL:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case LDI:
		return fmt.Sprintf("%s I, %#03x", m, ins.NNN)
	case JPV0:
		return fmt.Sprintf("%s V0, %#03x", m, ins.NNN)
	case RND:
		return fmt.Sprintf("%s V%X, %#02x", m, ins.X, ins.KK)
	case DRW:
		return fmt.Sprintf("%s V%X, V%X, %d", m, ins.X, ins.Y, ins.N)
	case SKP, SKNP:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case LDVxDT:
		return fmt.Sprintf("%s V%X, DT", m, ins.X)
	case LDKey:
		return fmt.Sprintf("%s V%X, K", m, ins.X)
	case LDDTVx:
		return fmt.Sprintf("%s DT, V%X", m, ins.X)
	case LDSTVx:
		return fmt.Sprintf("%s ST, V%X", m, ins.X)
	case ADDI:
		return fmt.Sprintf("%s I, V%X", m, ins.X)
	case LDF:
		return fmt.Sprintf("%s F, V%X", m, ins.X)
	case BCD:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case STRegs:
		return fmt.Sprintf("%s [I], V%X", m, ins.X)
	case LDRegs:
		return fmt.Sprintf("%s V%X, [I]", m, ins.X)
	}
	return fmt.Sprintf("%s %04x", m, ins.Word)
}
