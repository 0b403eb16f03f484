package core

import (
	"fmt"

	"github.com/sarchlab/stackc/instr"
)

// prefixSums returns, for every term index, the number of instructions
// emitted before that term. The last entry is the total.
func prefixSums(seqs []instr.Seq) []int {
	sums := make([]int, len(seqs)+1)
	for n, seq := range seqs {
		sums[n+1] = sums[n] + len(seq)
	}

	return sums
}

// Fixup flattens the per-term sequences and turns term references into
// instruction indices.
func Fixup(seqs []instr.Seq) ([]instr.Inst, error) {
	sums := prefixSums(seqs)
	out := make([]instr.Inst, 0, sums[len(seqs)]+1)

	for n, seq := range seqs {
		for _, inst := range seq {
			inst = inst.Clone()

			for j, o := range inst.Operands {
				switch o.Kind {
				case instr.Absolute:
					if o.Value < 0 || o.Value >= len(sums) {
						return nil, fmt.Errorf(
							"term %d refers to term %d outside the program", n, o.Value)
					}

					inst.Operands[j] = instr.Imm(sums[o.Value])
				case instr.Relative:
					inst.Operands[j] = instr.Imm(len(out) + o.Value)
				case instr.Placeholder:
					return nil, fmt.Errorf("term %d has an unresolved operand", n)
				}
			}

			out = append(out, inst)
		}
	}

	return out, nil
}
