package program

var defaultISA = newDefaultISA()

// DefaultISA returns the instruction set of the stack machine.
func DefaultISA() *ISA {
	return defaultISA
}

func newDefaultISA() *ISA {
	isa := NewISA("Stack Machine ISA")

	for _, op := range []Opcode{
		ADD, SUB, MUL, DIV, MOD,
		EQ, MORE, LESS,
		DROP, SWAP, OVER, DUP,
		EMIT, READ,
		EI, DI,
		LD, ST,
		RPOP, POP,
		RET, HLT,
	} {
		isa.registerNewInst(op, 0)
	}

	// Control transfer and literal push carry one operand.
	for _, op := range []Opcode{JMP, JZ, CALL, PUSH} {
		isa.registerNewInst(op, 1)
	}

	return isa
}
