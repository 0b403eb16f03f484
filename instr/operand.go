package instr

import (
	"fmt"
	"strconv"
)

// OperandKind tells how the value of an operand is to be read.
type OperandKind int

const (
	// Immediate is a constant, final value.
	Immediate OperandKind = iota
	// Absolute is a term index that address fixup turns into an
	// instruction index.
	Absolute
	// Relative is an offset from the position at which the instruction is
	// emitted.
	Relative
	// Placeholder is a jump target not yet known to the code generator.
	Placeholder
)

func (k OperandKind) String() string {
	switch k {
	case Immediate:
		return "const"
	case Absolute:
		return "addr"
	case Relative:
		return "addr_rel"
	case Placeholder:
		return "undefined"
	default:
		return fmt.Sprintf("OperandKind(%d)", int(k))
	}
}

// Operand is a single instruction argument.
type Operand struct {
	Kind  OperandKind
	Value int

	// Raw holds literal text that could not be read as a number. It is only
	// set when literal checking is turned off.
	Raw string
}

// Imm creates an immediate operand.
func Imm(value int) Operand {
	return Operand{Kind: Immediate, Value: value}
}

// RawImm creates an immediate operand from unchecked literal text.
func RawImm(text string) Operand {
	if v, err := strconv.Atoi(text); err == nil {
		return Imm(v)
	}

	return Operand{Kind: Immediate, Raw: text}
}

// Abs creates a reference to the first instruction of a term.
func Abs(term int) Operand {
	return Operand{Kind: Absolute, Value: term}
}

// Rel creates an offset from the emission point.
func Rel(offset int) Operand {
	return Operand{Kind: Relative, Value: offset}
}

// Unresolved creates a placeholder operand.
func Unresolved() Operand {
	return Operand{Kind: Placeholder}
}

// IsNumeric tells if the operand value is a number.
func (o Operand) IsNumeric() bool {
	return o.Raw == ""
}

func (o Operand) String() string {
	switch {
	case o.Kind == Placeholder:
		return "?"
	case !o.IsNumeric():
		return strconv.Quote(o.Raw)
	case o.Kind == Absolute:
		return fmt.Sprintf("@%d", o.Value)
	case o.Kind == Relative:
		return fmt.Sprintf("%+d", o.Value)
	default:
		return strconv.Itoa(o.Value)
	}
}
