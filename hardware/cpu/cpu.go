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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// the index of the flag register.
const vf = 0xf

// CPU implements the instruction set of the interpreter.
type CPU struct {
	PC registers.ProgramCounter
	I  registers.ProgramCounter
	V  [NumRegisters]registers.Register

	Stack Stack

	// result of the most recent cycle
	LastResult execution.Result

	mem  Memory
	disp Display
	keys Keypad
	tmrs Timers
	rnd  Random

	// permission used for all log entries made by the CPU
	perm logger.Permission
}

// NewCPU is the preferred method of initialisation for the CPU type. A nil
// permission is the same as logger.Allow.
func NewCPU(perm logger.Permission, mem Memory, disp Display, keys Keypad, tmrs Timers, rnd Random) *CPU {
	if perm == nil {
		perm = logger.Allow
	}
	mc := &CPU{
		mem:  mem,
		disp: disp,
		keys: keys,
		tmrs: tmrs,
		rnd:  rnd,
		perm: perm,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", mc.PC, mc.I))
	for i := range mc.V {
		s.WriteString(fmt.Sprintf(" %s", mc.V[i]))
	}
	s.WriteString(fmt.Sprintf(" %s", &mc.Stack))
	return s.String()
}

// Reset all registers and the stack. The program counter is set to the
// program origin.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(memory.ProgramOrigin, "PC")
	mc.I = registers.NewProgramCounter(0, "I")
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Stack.Reset()
	mc.LastResult.Reset()
}

// ExecuteInstruction fetches, decodes and executes one instruction.
//
// Only stack errors are returned. When an error is returned the program
// counter is restored to the address of the instruction and no other state
// has changed.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()

	address := mc.PC.Value()
	word := uint16(mc.mem.Read(address))<<8 | uint16(mc.mem.Read(address+1))
	mc.PC.Add(2)

	ins := instructions.Decode(word)
	mc.LastResult.Address = address
	mc.LastResult.Instruction = ins

	if err := mc.execute(ins); err != nil {
		mc.PC.Load(address)
		return err
	}

	mc.LastResult.Final = true
	return nil
}

// skip the next instruction if the condition is true.
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC.Add(2)
		mc.LastResult.Skipped = true
	}
}

// keyPressed returns the state of the key in register x. an invalid key
// value is logged and is treated as not pressed.
func (mc *CPU) keyPressed(x uint8) bool {
	pressed, err := mc.keys.IsPressed(mc.V[x].Value())
	if err != nil {
		logger.Logf(mc.perm, "cpu", "%v in V%X at %#03x", err, x, mc.LastResult.Address)
		return false
	}
	return pressed
}

func (mc *CPU) flag(set bool) {
	if set {
		mc.V[vf].Load(1)
	} else {
		mc.V[vf].Load(0)
	}
}

func (mc *CPU) execute(ins instructions.Instruction) error {
	x := ins.X
	y := ins.Y

	switch ins.Operator {
	case instructions.CLS:
		mc.disp.Clear()

	case instructions.RET:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.JP:
		mc.PC.Load(ins.NNN)

	case instructions.CALL:
		if err := mc.Stack.Push(mc.PC.Value()); err != nil {
			return err
		}
		mc.PC.Load(ins.NNN)

	case instructions.SEImm:
		mc.skip(mc.V[x].Value() == ins.KK)

	case instructions.SNEImm:
		mc.skip(mc.V[x].Value() != ins.KK)

	case instructions.SEReg:
		mc.skip(mc.V[x].Value() == mc.V[y].Value())

	case instructions.SNEReg:
		mc.skip(mc.V[x].Value() != mc.V[y].Value())

	case instructions.LDImm:
		mc.V[x].Load(ins.KK)

	case instructions.ADDImm:
		mc.V[x].Add(ins.KK)

	case instructions.LDReg:
		mc.V[x].Load(mc.V[y].Value())

	case instructions.OR:
		mc.V[x].OR(mc.V[y].Value())

	case instructions.AND:
		mc.V[x].AND(mc.V[y].Value())

	case instructions.XOR:
		mc.V[x].XOR(mc.V[y].Value())

	// for the following instructions the flag is written after the result so
	// that the flag wins when x is VF
	case instructions.ADDReg:
		mc.flag(mc.V[x].Add(mc.V[y].Value()))

	case instructions.SUB:
		mc.flag(mc.V[x].Subtract(mc.V[y].Value()))

	case instructions.SUBN:
		mc.flag(mc.V[x].SubtractFrom(mc.V[y].Value()))

	case instructions.SHR:
		mc.flag(mc.V[x].SHR())

	case instructions.SHL:
		mc.flag(mc.V[x].SHL())

	case instructions.LDI:
		mc.I.Load(ins.NNN)

	case instructions.JPV0:
		mc.PC.Load(uint16(mc.V[0].Value()) + ins.NNN)

	case instructions.RND:
		mc.V[x].Load(mc.rnd.Byte() & ins.KK)

	case instructions.DRW:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			sprite[i] = mc.mem.Read(mc.I.Value() + uint16(i))
		}
		mc.flag(mc.disp.DrawSprite(mc.V[x].Value(), mc.V[y].Value(), sprite))

	case instructions.SKP:
		mc.skip(mc.keyPressed(x))

	case instructions.SKNP:
		mc.skip(!mc.keyPressed(x))

	case instructions.LDVxDT:
		mc.V[x].Load(mc.tmrs.Delay())

	case instructions.LDKey:
		if k, ok := mc.keys.LowestPressed(); ok {
			mc.V[x].Load(k)
		} else {
			mc.PC.Subtract(2)
			mc.LastResult.KeyWait = true
		}

	case instructions.LDDTVx:
		mc.tmrs.SetDelay(mc.V[x].Value())

	case instructions.LDSTVx:
		mc.tmrs.SetSound(mc.V[x].Value())

	case instructions.ADDI:
		mc.I.Add(uint16(mc.V[x].Value()))

	case instructions.LDF:
		mc.I.Load(memory.GlyphAddress(mc.V[x].Value()))

	case instructions.BCD:
		v := mc.V[x].Value()
		mc.mem.Write(mc.I.Value(), v/100)
		mc.mem.Write(mc.I.Value()+1, (v/10)%10)
		mc.mem.Write(mc.I.Value()+2, v%10)

	case instructions.STRegs:
		for n := uint8(0); n <= x; n++ {
			mc.mem.Write(mc.I.Value()+uint16(n), mc.V[n].Value())
		}

	case instructions.LDRegs:
		for n := uint8(0); n <= x; n++ {
			mc.V[n].Load(mc.mem.Read(mc.I.Value() + uint16(n)))
		}

	default:
		mc.LastResult.Unrecognised = true
		logger.Logf(mc.perm, "cpu", "unrecognised instruction %04x at %#03x", ins.Word, mc.LastResult.Address)
	}

	return nil
}
