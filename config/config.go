// Package config provides the options that steer a translation run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls the translator. The zero value is not usable; start from
// DefaultOptions or a Builder.
type Options struct {
	// VariableBase is the address of the first declared variable.
	VariableBase int `yaml:"variable_base"`

	// ArraySizeMin and ArraySizeMax bound the size accepted by
	// `variable name <size> allot`.
	ArraySizeMin int `yaml:"array_size_min"`
	ArraySizeMax int `yaml:"array_size_max"`

	// EnforceArraySize rejects out-of-range array sizes. When false, an
	// out-of-range size reserves nothing beyond the variable itself.
	EnforceArraySize bool `yaml:"enforce_array_size"`

	// StrictLiterals rejects unknown words that are not decimal integers.
	// When false, such words are pushed as raw text.
	StrictLiterals bool `yaml:"strict_literals"`
}

// DefaultOptions returns the standard options.
func DefaultOptions() Options {
	return Options{
		VariableBase:     1024,
		ArraySizeMin:     2,
		ArraySizeMax:     99,
		EnforceArraySize: true,
		StrictLiterals:   true,
	}
}

// Validate checks that the options are consistent.
func (o Options) Validate() error {
	if o.VariableBase < 0 {
		return fmt.Errorf("variable base %d is negative", o.VariableBase)
	}

	if o.ArraySizeMin < 1 {
		return fmt.Errorf("minimum array size %d is less than 1", o.ArraySizeMin)
	}

	if o.ArraySizeMin > o.ArraySizeMax {
		return errors.New("minimum array size exceeds maximum array size")
	}

	return nil
}

// Parse reads options from YAML. Keys that are not given keep their default
// value.
func Parse(data []byte) (Options, error) {
	opts := DefaultOptions()

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid config: %w", err)
	}

	return opts, nil
}

// LoadFile reads options from a YAML file.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}
