package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/instr"
	"github.com/sarchlab/stackc/program"
)

var _ = Describe("Generate", func() {
	var c *Compilation

	BeforeEach(func() {
		c = NewCompilation(config.DefaultOptions(), nil)
	})

	It("should have an expansion for every tag", func() {
		for tag := Tag(0); tag < numTags; tag++ {
			Expect(func() { expansion(tag) }).ToNot(Panic(), tag.String())
		}

		Expect(func() { expansion(numTags) }).To(Panic())
	})

	It("should emit one instruction for simple words", func() {
		for word, tag := range reservedWords {
			seq := expansions[tag]
			switch tag {
			case Do, Loop, LoopIndex:
				Expect(len(seq)).To(BeNumerically(">", 1), word)
			case Variable, Allot, Then, Begin, DefineInterrupt:
				Expect(seq).To(BeEmpty(), word)
			default:
				Expect(seq).To(HaveLen(1), word)
			}
		}
	})

	It("should fill placeholders from the term target", func() {
		seqs, err := Generate(c, []*Term{
			{Pos: 0, Tag: EntryPoint, Target: TargetOf(1)},
			{Pos: 1, Tag: Loop, Target: TargetOf(0)},
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(seqs[0]).To(Equal(instr.Seq{instr.New(program.JMP, instr.Abs(1))}))
		Expect(seqs[1]).To(HaveLen(12))
		Expect(seqs[1][8]).To(Equal(instr.New(program.JZ, instr.Abs(0))))
		Expect(expansions[Loop][8].Operands[0].Kind).To(Equal(instr.Placeholder))
	})

	It("should fail when a jump has no target", func() {
		_, err := Generate(c, []*Term{{Pos: 3, Tag: If}})

		Expect(err).To(MatchError(ContainSubstring("term 3 (if) has no jump target")))
	})

	It("should skip consumed terms and string literals", func() {
		seqs, err := Generate(c, []*Term{
			{Pos: 1, Tag: Unresolved, Text: "x", Consumed: true},
			{Pos: 2, Tag: String, Text: `."hi"`},
			{Pos: 3, Tag: Unresolved, Text: "7"},
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(seqs[0]).To(BeEmpty())
		Expect(seqs[1]).To(BeEmpty())
		Expect(seqs[2]).To(Equal(instr.Seq{instr.New(program.PUSH, instr.Imm(7))}))
	})
})
