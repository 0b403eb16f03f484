package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/stackc/config"
)

var _ = Describe("Resolve", func() {
	prepare := func(opts config.Options, src string) (*Compilation, []*Term) {
		c := NewCompilation(opts, nil)
		terms := mustLex(src)
		Expect(Validate(c, terms)).To(Succeed())

		return c, terms
	}

	It("should replace variable names with addresses", func() {
		c, terms := prepare(config.DefaultOptions(), "variable x 5 x !")

		Expect(Resolve(c, terms)).To(Succeed())
		Expect(terms[4].Tag).To(Equal(Unresolved))
		Expect(terms[4].Text).To(Equal("1024"))
		Expect(terms[2].Text).To(Equal("x"))
	})

	It("should turn function names into calls", func() {
		c, terms := prepare(config.DefaultOptions(), ": f 1 ; f f")

		Expect(Resolve(c, terms)).To(Succeed())
		for _, t := range terms[5:] {
			Expect(t.Tag).To(Equal(Call))
			Expect(targetOf(t)).To(Equal(2))
		}
		Expect(terms[2].Tag).To(Equal(Unresolved))
	})

	It("should prefer variables over functions", func() {
		c, terms := prepare(config.DefaultOptions(), ": a ; variable a a")

		Expect(Resolve(c, terms)).To(Succeed())
		Expect(terms[6].Tag).To(Equal(Unresolved))
		Expect(terms[6].Text).To(Equal("1024"))
	})

	It("should leave numbers alone", func() {
		c, terms := prepare(config.DefaultOptions(), "12 -3")

		Expect(Resolve(c, terms)).To(Succeed())
		Expect(terms[1].Text).To(Equal("12"))
		Expect(terms[2].Text).To(Equal("-3"))
	})

	It("should reject unknown words", func() {
		c, terms := prepare(config.DefaultOptions(), ": double dup + ; 5 dobule")

		Expect(Resolve(c, terms)).To(MatchError(ErrInvalidLiteral))
	})

	It("should let unknown words through when lenient", func() {
		opts, err := config.NewBuilder().WithLenientLiterals().Build()
		Expect(err).ToNot(HaveOccurred())
		c, terms := prepare(opts, "5 dobule")

		Expect(Resolve(c, terms)).To(Succeed())
		Expect(terms[2].Tag).To(Equal(Unresolved))
	})
})
