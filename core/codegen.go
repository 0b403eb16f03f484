package core

import (
	"fmt"

	"github.com/sarchlab/stackc/instr"
	"github.com/sarchlab/stackc/program"
)

func op(o program.Opcode, operands ...instr.Operand) instr.Inst {
	return instr.New(o, operands...)
}

func jump(o program.Opcode) instr.Inst {
	return instr.New(o, instr.Unresolved())
}

// expansion returns the instructions of a construct kind. Placeholders are
// filled from the target of the term.
func expansion(tag Tag) instr.Seq {
	switch tag {
	case Add:
		return instr.Seq{op(program.ADD)}
	case Sub:
		return instr.Seq{op(program.SUB)}
	case Mul:
		return instr.Seq{op(program.MUL)}
	case Div:
		return instr.Seq{op(program.DIV)}
	case Mod:
		return instr.Seq{op(program.MOD)}
	case Eq:
		return instr.Seq{op(program.EQ)}
	case More:
		return instr.Seq{op(program.MORE)}
	case Less:
		return instr.Seq{op(program.LESS)}
	case Drop:
		return instr.Seq{op(program.DROP)}
	case Swap:
		return instr.Seq{op(program.SWAP)}
	case Over:
		return instr.Seq{op(program.OVER)}
	case Dup:
		return instr.Seq{op(program.DUP)}
	case Emit:
		return instr.Seq{op(program.EMIT)}
	case Read:
		return instr.Seq{op(program.READ)}
	case EnableInt:
		return instr.Seq{op(program.EI)}
	case DisableInt:
		return instr.Seq{op(program.DI)}
	case Store:
		return instr.Seq{op(program.ST)}
	case Load:
		return instr.Seq{op(program.LD)}
	case Return:
		return instr.Seq{op(program.RET)}

	case EntryPoint, Else, Define:
		return instr.Seq{jump(program.JMP)}
	case If, Until:
		return instr.Seq{jump(program.JZ)}
	case Call:
		return instr.Seq{jump(program.CALL)}

	case Do:
		// ( n i -- ) R( -- i n )
		return instr.Seq{
			op(program.DI),
			op(program.POP),
			op(program.POP),
			op(program.EI),
		}
	case Loop:
		return instr.Seq{
			op(program.DI),
			op(program.RPOP),               // n
			op(program.RPOP),               // n i
			op(program.PUSH, instr.Imm(1)), // n i 1
			op(program.ADD),                // n i+1
			op(program.OVER),               // n i+1 n
			op(program.OVER),               // n i+1 n i+1
			op(program.EQ),                 // n i+1 flag
			jump(program.JZ),               // n i+1, back to do while not done
			op(program.DROP),               // n
			op(program.DROP),               //
			op(program.EI),
		}
	case LoopIndex:
		return instr.Seq{
			op(program.DI),
			op(program.RPOP),
			op(program.RPOP),
			op(program.OVER),
			op(program.OVER),
			op(program.POP),
			op(program.POP),
			op(program.SWAP),
			op(program.DROP),
			op(program.EI),
		}

	case Variable, Allot, Then, DefineInterrupt, Begin, String:
		return nil
	case Unresolved:
		// Literals carry their own value, see literal.
		return nil
	}

	panic(fmt.Sprintf("no expansion for %s", tag))
}

var expansions = buildExpansions()

func buildExpansions() [numTags]instr.Seq {
	var table [numTags]instr.Seq
	for tag := Tag(0); tag < numTags; tag++ {
		table[tag] = expansion(tag)
	}

	return table
}

// Generate maps every term to its instructions. Jump operands refer to term
// indices until Fixup turns them into instruction indices.
func Generate(c *Compilation, terms []*Term) ([]instr.Seq, error) {
	seqs := make([]instr.Seq, len(terms))

	for n, t := range terms {
		seq, err := generate(c, t)
		if err != nil {
			return nil, err
		}

		seqs[n] = seq
	}

	c.trace("code generated", "terms", len(terms))

	return seqs, nil
}

func generate(c *Compilation, t *Term) (instr.Seq, error) {
	switch {
	case t.Consumed:
		return nil, nil
	case t.Tag == Unresolved:
		return literal(t), nil
	case t.Tag == String:
		// TODO: string literals need a data segment and a print loop before
		// they can emit code.
		c.log.Warn("string literal emits no code", "pos", t.Pos, "text", t.Text)
		return nil, nil
	}

	seq := expansions[t.Tag].Clone()

	for i := range seq {
		for j, o := range seq[i].Operands {
			if o.Kind != instr.Placeholder {
				continue
			}

			pos, ok := t.Target.Get()
			if !ok {
				return nil, fmt.Errorf("term %d (%s) has no jump target", t.Pos, t.Tag)
			}

			seq[i].Operands[j] = instr.Abs(pos)
		}
	}

	return seq, nil
}

func literal(t *Term) instr.Seq {
	return instr.Seq{op(program.PUSH, instr.RawImm(t.Text))}
}
