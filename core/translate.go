package core

import (
	"fmt"

	"github.com/sarchlab/stackc/instr"
	"github.com/sarchlab/stackc/program"
	"github.com/sarchlab/stackc/verify"
)

// Translate compiles source text. Nothing is returned unless every phase
// succeeds.
func Translate(c *Compilation, src string) (*Program, error) {
	terms, err := Lex(src)
	if err != nil {
		return nil, err
	}

	c.trace("source split", "terms", len(terms))

	if err := Validate(c, terms); err != nil {
		return nil, err
	}

	if err := Resolve(c, terms); err != nil {
		return nil, err
	}

	ordered := Reorder(c, terms)

	seqs, err := Generate(c, ordered)
	if err != nil {
		return nil, err
	}

	insts, err := Fixup(seqs)
	if err != nil {
		return nil, err
	}

	prog := EmitProgram(c, insts)
	prog.Functions = functionEntries(c, ordered, seqs)

	if issues := verify.RunLint(prog.Insts, program.DefaultISA()); len(issues) > 0 {
		for _, issue := range issues {
			c.log.Error("lint", "index", issue.Index, "type", issue.Type, "message", issue.Message)
		}

		return nil, fmt.Errorf("%w: %d issue(s), first: %s",
			ErrLint, len(issues), issues[0].Message)
	}

	c.trace("translation done", "instructions", prog.Len())

	return prog, nil
}

// EmitProgram terminates the instruction list with hlt.
func EmitProgram(c *Compilation, insts []instr.Inst) *Program {
	return &Program{
		Insts:     append(insts, instr.New(program.HLT)),
		Variables: c.Symbols.Variables(),
		Functions: map[string]int{},
	}
}

// functionEntries maps every function to the index of its first
// instruction.
func functionEntries(c *Compilation, ordered []*Term, seqs []instr.Seq) map[string]int {
	sums := prefixSums(seqs)

	entries := make(map[string]int, len(c.Symbols.functions))
	for name, entry := range c.Symbols.functions {
		entries[name] = sums[indexOfPos(ordered, entry)]
	}

	return entries
}

// indexOfPos finds where the term at source position pos ended up.
func indexOfPos(ordered []*Term, pos int) int {
	for n, t := range ordered {
		if t.Pos == pos {
			return n
		}
	}

	return len(ordered)
}
