// Package instr holds the instructions produced by the code generator.
package instr

import (
	"fmt"
	"strings"

	"github.com/sarchlab/stackc/program"
)

// Inst is one stack machine instruction.
type Inst struct {
	Op       program.Opcode
	Operands []Operand
}

// New creates an instruction and checks it against the default ISA. A
// mismatch is a programming error and panics.
func New(op program.Opcode, operands ...Operand) Inst {
	arity, found := program.DefaultISA().Arity(op)
	if !found {
		panic("unknown opcode " + op.String())
	}

	if arity != len(operands) {
		panic(fmt.Sprintf("%s expects %d operand(s), but %d are provided",
			op, arity, len(operands)))
	}

	return Inst{Op: op, Operands: operands}
}

// Clone returns a copy that does not share operands with i.
func (i Inst) Clone() Inst {
	c := Inst{Op: i.Op}
	if len(i.Operands) > 0 {
		c.Operands = append([]Operand(nil), i.Operands...)
	}

	return c
}

// Arg returns the first operand value, if there is one.
func (i Inst) Arg() (int, bool) {
	if len(i.Operands) == 0 {
		return 0, false
	}

	return i.Operands[0].Value, true
}

// IsJump tells if the instruction transfers control to its operand.
func (i Inst) IsJump() bool {
	switch i.Op {
	case program.JMP, program.JZ, program.CALL:
		return true
	}

	return false
}

func (i Inst) String() string {
	if len(i.Operands) == 0 {
		return i.Op.String()
	}

	args := make([]string, len(i.Operands))
	for n, o := range i.Operands {
		args[n] = o.String()
	}

	return i.Op.String() + " " + strings.Join(args, ", ")
}

// Seq is the instruction sequence generated for one term.
type Seq []Inst

// Clone deep-copies a sequence.
func (s Seq) Clone() Seq {
	if s == nil {
		return nil
	}

	c := make(Seq, len(s))
	for n, i := range s {
		c[n] = i.Clone()
	}

	return c
}
