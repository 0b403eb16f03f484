package core

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Validate runs the structural passes in order and stops at the first
// violation. Each pass only checks its own construct; constructs of
// different kinds are not checked against each other.
func Validate(c *Compilation, terms []*Term) error {
	passes := []struct {
		name string
		run  func(*Compilation, []*Term) error
	}{
		{"conditional", checkConditionals},
		{"counted loop", checkCountedLoops},
		{"indefinite loop", checkIndefiniteLoops},
		{"function", checkFunctions},
		{"variable", checkVariables},
	}

	for _, p := range passes {
		if err := p.run(c, terms); err != nil {
			c.log.Debug("validation failed", "pass", p.name, "error", err)
			return err
		}

		c.trace("pass done", "pass", p.name)
	}

	return nil
}

// checkConditionals backpatches if and else with the term after the
// branch they skip.
func checkConditionals(_ *Compilation, terms []*Term) error {
	var pending []*Term

	for _, t := range terms {
		switch t.Tag {
		case If, Else:
			pending = append(pending, t)
		case Then:
			if len(pending) == 0 {
				return newError(ErrUnmatchedThen, t)
			}

			last := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			if last.Tag == If {
				last.Target = TargetOf(t.Pos + 1)
				continue
			}

			if len(pending) == 0 || pending[len(pending)-1].Tag != If {
				return newError(ErrUnmatchedElse, last)
			}

			opener := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			last.Target = TargetOf(t.Pos + 1)
			opener.Target = TargetOf(last.Pos + 1)
		}
	}

	if len(pending) > 0 {
		return newError(ErrUnclosedConditional, pending[0])
	}

	return nil
}

func checkCountedLoops(_ *Compilation, terms []*Term) error {
	return matchLoops(terms, Do, Loop)
}

func checkIndefiniteLoops(_ *Compilation, terms []*Term) error {
	return matchLoops(terms, Begin, Until)
}

// matchLoops points every closer back at its opener.
func matchLoops(terms []*Term, open, close Tag) error {
	depth := 0
	var openers []*Term

	for _, t := range terms {
		switch t.Tag {
		case open:
			depth++
			openers = append(openers, t)
		case close:
			depth--
			if depth < 0 {
				return newError(ErrUnmatchedLoopClose, t)
			}

			opener := openers[len(openers)-1]
			openers = openers[:len(openers)-1]
			t.Target = TargetOf(opener.Pos)
		}
	}

	if depth != 0 {
		return newError(ErrUnclosedLoop, openers[0])
	}

	return nil
}

// checkFunctions registers function names and points each definition at
// the term after its return. Definitions do not nest. An interrupt handler
// is a definition without a name.
func checkFunctions(c *Compilation, terms []*Term) error {
	var open *Term

	for _, t := range terms {
		switch t.Tag {
		case Define, DefineInterrupt:
			if open != nil {
				return newError(ErrUnclosedFunction, open)
			}

			if t.Tag == Define {
				if err := registerFunction(c, terms, t); err != nil {
					return err
				}
			}

			open = t
		case Return:
			if open == nil {
				return newError(ErrReturnOutsideFunction, t)
			}

			open.Target = TargetOf(t.Pos + 1)
			open = nil
		}
	}

	if open != nil {
		return newError(ErrUnclosedFunction, open)
	}

	return nil
}

func registerFunction(c *Compilation, terms []*Term, def *Term) error {
	if def.Pos+1 >= len(terms) {
		return newError(ErrMissingFunctionName, def)
	}

	name := terms[def.Pos+1]
	if name.Tag != Unresolved {
		return newError(ErrInvalidFunctionName, name)
	}

	if err := c.Symbols.RegisterFunction(name.Text, def.Pos+1); err != nil {
		return newError(ErrDuplicateFunction, name)
	}

	name.Consumed = true
	c.log.Debug("function defined", "name", name.Text, "entry", def.Pos+1)

	return nil
}

// checkVariables allocates addresses for `variable name` and
// `variable name <size> allot` declarations.
func checkVariables(c *Compilation, terms []*Term) error {
	for _, t := range terms {
		if t.Tag != Variable {
			continue
		}

		if t.Pos+1 >= len(terms) {
			return newError(ErrMissingVariableName, t)
		}

		name := terms[t.Pos+1]
		if !isVariableName(name) {
			return newError(ErrInvalidVariableName, name)
		}

		addr, err := c.Symbols.AllocateVariable(name.Text)
		if err != nil {
			return newError(ErrDuplicateVariable, name)
		}

		name.Consumed = true
		c.log.Debug("variable declared", "name", name.Text, "address", addr)

		if name.Pos+2 < len(terms) && terms[name.Pos+2].Tag == Allot {
			if err := reserveArray(c, terms[name.Pos+1]); err != nil {
				return err
			}
		}
	}

	return nil
}

func isVariableName(t *Term) bool {
	if t.Tag != Unresolved || t.Consumed {
		return false
	}

	r, _ := utf8.DecodeRuneInString(t.Text)

	return unicode.IsLetter(r)
}

func reserveArray(c *Compilation, sizeTerm *Term) error {
	sizeTerm.Consumed = true

	size, err := strconv.Atoi(sizeTerm.Text)
	if err != nil {
		return newError(ErrInvalidArraySize, sizeTerm)
	}

	if size < c.Opts.ArraySizeMin || size > c.Opts.ArraySizeMax {
		if c.Opts.EnforceArraySize {
			return newError(ErrInvalidArraySize, sizeTerm)
		}

		c.log.Warn("array size out of range, nothing reserved",
			"pos", sizeTerm.Pos, "size", size)

		return nil
	}

	c.Symbols.Reserve(size)

	return nil
}
