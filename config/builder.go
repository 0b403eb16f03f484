package config

// Builder can build Options.
type Builder struct {
	opts Options
}

// NewBuilder creates a builder that starts from the default options.
func NewBuilder() Builder {
	return Builder{opts: DefaultOptions()}
}

// WithVariableBase sets the address of the first variable.
func (b Builder) WithVariableBase(base int) Builder {
	b.opts.VariableBase = base
	return b
}

// WithArraySizeRange sets the accepted array sizes, both ends included.
func (b Builder) WithArraySizeRange(min, max int) Builder {
	b.opts.ArraySizeMin = min
	b.opts.ArraySizeMax = max
	return b
}

// WithLenientArraySize accepts any array size and reserves nothing for
// out-of-range ones.
func (b Builder) WithLenientArraySize() Builder {
	b.opts.EnforceArraySize = false
	return b
}

// WithLenientLiterals lets unknown words through as raw literal text.
func (b Builder) WithLenientLiterals() Builder {
	b.opts.StrictLiterals = false
	return b
}

// Build validates and returns the options.
func (b Builder) Build() (Options, error) {
	if err := b.opts.Validate(); err != nil {
		return Options{}, err
	}

	return b.opts, nil
}
