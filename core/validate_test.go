package core

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/stackc/config"
)

func mustLex(src string) []*Term {
	terms, err := Lex(src)
	Expect(err).ToNot(HaveOccurred())

	return terms
}

func targetOf(t *Term) int {
	pos, ok := t.Target.Get()
	ExpectWithOffset(1, ok).To(BeTrue(), "term %s has no target", t)

	return pos
}

var _ = Describe("Validate", func() {
	var c *Compilation

	BeforeEach(func() {
		c = NewCompilation(config.DefaultOptions(), nil)
	})

	Context("conditionals", func() {
		It("should point if past then", func() {
			terms := mustLex("1 if 2 then 3")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[2])).To(Equal(5))
		})

		It("should point if past else and else past then", func() {
			terms := mustLex("1 if 2 else 3 then")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[2])).To(Equal(5))
			Expect(targetOf(terms[4])).To(Equal(7))
		})

		It("should match nested conditionals innermost first", func() {
			terms := mustLex("if if then else then")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[2])).To(Equal(4))
			Expect(targetOf(terms[1])).To(Equal(5))
			Expect(targetOf(terms[4])).To(Equal(6))
		})
	})

	Context("loops", func() {
		It("should point loop back at do", func() {
			terms := mustLex("3 0 do 3 0 do loop loop")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[7])).To(Equal(6))
			Expect(targetOf(terms[8])).To(Equal(3))

			_, ok := terms[3].Target.Get()
			Expect(ok).To(BeFalse())
		})

		It("should point until back at begin", func() {
			terms := mustLex("begin 1 until")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[3])).To(Equal(1))
		})

		It("should not check loops against conditionals", func() {
			terms := mustLex("do 1 if loop then")

			Expect(Validate(c, terms)).To(Succeed())
		})
	})

	Context("functions", func() {
		It("should register the name and skip the body", func() {
			terms := mustLex(": double dup + ; 5 double")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[1])).To(Equal(6))
			Expect(terms[2].Consumed).To(BeTrue())

			entry, found := c.Symbols.Function("double")
			Expect(found).To(BeTrue())
			Expect(entry).To(Equal(2))
		})

		It("should accept a nameless interrupt handler", func() {
			terms := mustLex(":intr 1 . ; 2 .")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(targetOf(terms[1])).To(Equal(5))
			Expect(c.Symbols.Functions()).To(BeEmpty())
		})
	})

	Context("variables", func() {
		It("should allocate from 1024", func() {
			terms := mustLex("variable x variable y")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(c.Symbols.Variables()).To(Equal(map[string]int{"x": 1024, "y": 1025}))
			Expect(terms[2].Consumed).To(BeTrue())
			Expect(terms[4].Consumed).To(BeTrue())
		})

		It("should reserve array cells", func() {
			terms := mustLex("variable arr 10 allot variable x")

			Expect(Validate(c, terms)).To(Succeed())
			Expect(terms[3].Consumed).To(BeTrue())
			Expect(c.Symbols.Variables()).To(Equal(map[string]int{"arr": 1024, "x": 1035}))
		})

		It("should accept the bounds of the array range", func() {
			Expect(Validate(c, mustLex("variable a 2 allot variable b 99 allot"))).
				To(Succeed())
			Expect(c.Symbols.NextAddress()).To(Equal(1024 + 3 + 100))
		})

		It("should reserve nothing for an out-of-range size when lenient", func() {
			opts, err := config.NewBuilder().WithLenientArraySize().Build()
			Expect(err).ToNot(HaveOccurred())
			c = NewCompilation(opts, nil)

			Expect(Validate(c, mustLex("variable a 100 allot variable b"))).To(Succeed())
			Expect(c.Symbols.Variables()).To(Equal(map[string]int{"a": 1024, "b": 1025}))
		})
	})

	DescribeTable("should reject",
		func(src string, want error, pos int) {
			err := Validate(c, mustLex(src))

			Expect(err).To(MatchError(want))

			var ce *CompileError
			Expect(errors.As(err, &ce)).To(BeTrue())
			Expect(ce.Pos).To(Equal(pos))
		},
		Entry("then before if", "1 then", ErrUnmatchedThen, 2),
		Entry("else without if", "else then", ErrUnmatchedElse, 1),
		Entry("two elses", "if else else then", ErrUnmatchedElse, 3),
		Entry("open if", "if 1 if then", ErrUnclosedConditional, 1),
		Entry("open else", "if else", ErrUnclosedConditional, 1),
		Entry("loop before do", "loop", ErrUnmatchedLoopClose, 1),
		Entry("open do", "do do loop", ErrUnclosedLoop, 1),
		Entry("until before begin", "1 until", ErrUnmatchedLoopClose, 2),
		Entry("open begin", "begin", ErrUnclosedLoop, 1),
		Entry("colon at the end", ":", ErrMissingFunctionName, 1),
		Entry("reserved function name", ": dup ;", ErrInvalidFunctionName, 2),
		Entry("duplicate function", ": f ; : f ;", ErrDuplicateFunction, 5),
		Entry("nested definition", ": f : g ; ;", ErrUnclosedFunction, 1),
		Entry("open definition", ": f 1", ErrUnclosedFunction, 1),
		Entry("handler inside a definition", ": f :intr ; ;", ErrUnclosedFunction, 1),
		Entry("return outside", "1 ;", ErrReturnOutsideFunction, 2),
		Entry("variable at the end", "variable", ErrMissingVariableName, 1),
		Entry("numeric variable name", "variable 1x", ErrInvalidVariableName, 2),
		Entry("reserved variable name", "variable dup", ErrInvalidVariableName, 2),
		Entry("duplicate variable", "variable x variable x", ErrDuplicateVariable, 4),
		Entry("array too small", "variable a 1 allot", ErrInvalidArraySize, 3),
		Entry("array too large", "variable a 100 allot", ErrInvalidArraySize, 3),
		Entry("array size not a number", "variable a n allot", ErrInvalidArraySize, 3),
	)

	It("should stop at the first pass that fails", func() {
		err := Validate(c, mustLex("then loop"))

		Expect(err).To(MatchError(ErrUnmatchedThen))
		Expect(err.Error()).To(Equal("term 1 (then): then without a matching if"))
	})
})
