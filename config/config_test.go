package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Options", func() {
	It("should start from 1024 and the [2, 99] array range", func() {
		opts := DefaultOptions()

		Expect(opts.VariableBase).To(Equal(1024))
		Expect(opts.ArraySizeMin).To(Equal(2))
		Expect(opts.ArraySizeMax).To(Equal(99))
		Expect(opts.EnforceArraySize).To(BeTrue())
		Expect(opts.StrictLiterals).To(BeTrue())
		Expect(opts.Validate()).To(Succeed())
	})

	It("should keep defaults for missing keys", func() {
		opts, err := Parse([]byte("variable_base: 2048\nstrict_literals: false\n"))

		Expect(err).ToNot(HaveOccurred())
		Expect(opts.VariableBase).To(Equal(2048))
		Expect(opts.StrictLiterals).To(BeFalse())
		Expect(opts.ArraySizeMax).To(Equal(99))
		Expect(opts.EnforceArraySize).To(BeTrue())
	})

	It("should reject an inverted array range", func() {
		_, err := Parse([]byte("array_size_min: 10\narray_size_max: 3\n"))

		Expect(err).To(MatchError(ContainSubstring("invalid config")))
	})

	It("should reject malformed YAML", func() {
		_, err := Parse([]byte("variable_base: [1"))

		Expect(err).To(MatchError(ContainSubstring("failed to parse config")))
	})

	It("should load a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "stackc.yaml")
		Expect(os.WriteFile(path, []byte("enforce_array_size: false\n"), 0o644)).
			To(Succeed())

		opts, err := LoadFile(path)

		Expect(err).ToNot(HaveOccurred())
		Expect(opts.EnforceArraySize).To(BeFalse())
	})

	It("should report a missing file", func() {
		_, err := LoadFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))

		Expect(err).To(MatchError(ContainSubstring("failed to read config")))
	})
})

var _ = Describe("Builder", func() {
	It("should chain options", func() {
		opts, err := NewBuilder().
			WithVariableBase(0).
			WithArraySizeRange(1, 8).
			WithLenientArraySize().
			WithLenientLiterals().
			Build()

		Expect(err).ToNot(HaveOccurred())
		Expect(opts).To(Equal(Options{
			VariableBase:     0,
			ArraySizeMin:     1,
			ArraySizeMax:     8,
			EnforceArraySize: false,
			StrictLiterals:   false,
		}))
	})

	It("should refuse a negative base", func() {
		_, err := NewBuilder().WithVariableBase(-1).Build()

		Expect(err).To(MatchError(ContainSubstring("negative")))
	})
})
