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

// Operator identifies the operation of an instruction.
type Operator int

// List of valid Operator values.
const (
	Unrecognised Operator = iota
	CLS
	RET
	JP
	CALL
	SEImm
	SNEImm
	SEReg
	LDImm
	ADDImm
	LDReg
	OR
	AND
	XOR
	ADDReg
	SUB
	SHR
	SUBN
	SHL
	SNEReg
	LDI
	JPV0
	RND
	DRW
	SKP
	SKNP
	LDVxDT
	LDKey
	LDDTVx
	LDSTVx
	ADDI
	LDF
	BCD
	STRegs
	LDRegs

	// the number of operators, including Unrecognised
	NumOperators
)

// Mnemonic returns the conventional assembler mnemonic for the operator.
// Several operators share a mnemonic.
func (op Operator) Mnemonic() string {
	switch op {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case JP, JPV0:
		return "JP"
	case CALL:
		return "CALL"
	case SEImm, SEReg:
		return "SE"
	case SNEImm, SNEReg:
		return "SNE"
	case LDImm, LDReg, LDI, LDVxDT, LDKey, LDDTVx, LDSTVx, LDF, STRegs, LDRegs:
		return "LD"
	case ADDImm, ADDReg, ADDI:
		return "ADD"
	case OR:
		return "OR"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case SUB:
		return "SUB"
	case SHR:
		return "SHR"
	case SUBN:
		return "SUBN"
	case SHL:
		return "SHL"
	case RND:
		return "RND"
	case DRW:
		return "DRW"
	case SKP:
		return "SKP"
	case SKNP:
		return "SKNP"
	case BCD:
		return "BCD"
	}
	return "???"
}

func (op Operator) String() string {
	switch op {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case JP:
		return "JP"
	case CALL:
		return "CALL"
	case SEImm:
		return "SEImm"
	case SNEImm:
		return "SNEImm"
	case SEReg:
		return "SEReg"
	case LDImm:
		return "LDImm"
	case ADDImm:
		return "ADDImm"
	case LDReg:
		return "LDReg"
	case OR:
		return "OR"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case ADDReg:
		return "ADDReg"
	case SUB:
		return "SUB"
	case SHR:
		return "SHR"
	case SUBN:
		return "SUBN"
	case SHL:
		return "SHL"
	case SNEReg:
		return "SNEReg"
	case LDI:
		return "LDI"
	case JPV0:
		return "JPV0"
	case RND:
		return "RND"
	case DRW:
		return "DRW"
	case SKP:
		return "SKP"
	case SKNP:
		return "SKNP"
	case LDVxDT:
		return "LDVxDT"
	case LDKey:
		return "LDKey"
	case LDDTVx:
		return "LDDTVx"
	case LDSTVx:
		return "LDSTVx"
	case ADDI:
		return "ADDI"
	case LDF:
		return "LDF"
	case BCD:
		return "BCD"
	case STRegs:
		return "STRegs"
	case LDRegs:
		return "LDRegs"
	}
	return "Unrecognised"
}
