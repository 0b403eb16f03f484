package core

import (
	"strconv"
)

// Resolve rewrites the remaining unknown words. A variable name becomes its
// address, a function name becomes a call. Anything else must be a decimal
// integer unless literal checking is turned off.
func Resolve(c *Compilation, terms []*Term) error {
	calls := 0

	for _, t := range terms {
		if t.Tag != Unresolved || t.Consumed {
			continue
		}

		if addr, found := c.Symbols.Variable(t.Text); found {
			t.Text = strconv.Itoa(addr)
			continue
		}

		if entry, found := c.Symbols.Function(t.Text); found {
			t.Tag = Call
			t.Target = TargetOf(entry)
			calls++

			continue
		}

		if _, err := strconv.Atoi(t.Text); err != nil {
			if c.Opts.StrictLiterals {
				return newError(ErrInvalidLiteral, t)
			}

			c.log.Warn("word is neither a symbol nor a number",
				"pos", t.Pos, "word", t.Text)
		}
	}

	c.trace("references resolved",
		"variables", len(c.Symbols.variables),
		"functions", len(c.Symbols.functions),
		"calls", calls)

	return nil
}
