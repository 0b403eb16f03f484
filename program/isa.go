// Package program describes the target stack machine: its instruction
// alphabet and the on-disk record format of a compiled program.
package program

import "fmt"

// Opcode is the lowercase mnemonic of a stack machine instruction.
type Opcode string

// The target alphabet.
const (
	ADD  Opcode = "add"
	SUB  Opcode = "sub"
	MUL  Opcode = "mul"
	DIV  Opcode = "div"
	MOD  Opcode = "mod"
	EQ   Opcode = "eq"
	MORE Opcode = "more"
	LESS Opcode = "less"
	DROP Opcode = "drop"
	SWAP Opcode = "swap"
	OVER Opcode = "over"
	DUP  Opcode = "dup"
	EMIT Opcode = "emit"
	READ Opcode = "read"
	EI   Opcode = "ei"
	DI   Opcode = "di"

	LD   Opcode = "ld"
	ST   Opcode = "st"
	JMP  Opcode = "jmp"
	RPOP Opcode = "rpop" // return stack -> data stack
	POP  Opcode = "pop"  // data stack -> return stack
	JZ   Opcode = "jz"
	CALL Opcode = "call"
	RET  Opcode = "ret"
	PUSH Opcode = "push"
	HLT  Opcode = "hlt"
)

func (o Opcode) String() string {
	return string(o)
}

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from mnemonic to the number of operands the instruction takes.
	nameToArity map[Opcode]int
	order       []Opcode
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:     name,
		nameToArity: make(map[Opcode]int),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// registerNewInst registers a new instruction to the ISA.
func (isa *ISA) registerNewInst(name Opcode, arity int) {
	if _, found := isa.nameToArity[name]; found {
		panic(fmt.Sprintf("instruction %s registered twice in %s", name, isa.isaName))
	}

	isa.nameToArity[name] = arity
	isa.order = append(isa.order, name)
}

// Arity returns the operand count of the instruction and whether the
// instruction is part of the ISA.
func (isa *ISA) Arity(name Opcode) (int, bool) {
	arity, found := isa.nameToArity[name]
	return arity, found
}

// Lookup finds an opcode by its mnemonic.
func (isa *ISA) Lookup(mnemonic string) (Opcode, bool) {
	op := Opcode(mnemonic)
	_, found := isa.nameToArity[op]

	return op, found
}

// Opcodes lists the registered instructions in registration order.
func (isa *ISA) Opcodes() []Opcode {
	return append([]Opcode(nil), isa.order...)
}
