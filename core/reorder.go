package core

// span is a half-open range of term indices.
type span struct {
	start, end int
}

func (s span) contains(pos int) bool {
	return pos >= s.start && pos < s.end
}

func (s span) len() int {
	return s.end - s.start
}

// findHandler locates the first top-level interrupt handler: the terms from
// `:intr` up to and including its `;`.
func findHandler(terms []*Term) (span, bool) {
	for n := 1; n < len(terms); n++ {
		if terms[n].Tag != DefineInterrupt {
			continue
		}

		for m := n + 1; m < len(terms); m++ {
			if terms[m].Tag == Return {
				return span{start: n, end: m + 1}, true
			}
		}

		return span{}, false
	}

	return span{}, false
}

// Reorder moves the interrupt handler right after the entry term and makes
// the entry term jump over it. Targets are rewritten to indices in the new
// order. A target in the main program that points into the handler moves
// to the first term after the handler. Only the first handler is moved.
func Reorder(c *Compilation, terms []*Term) []*Term {
	handler, found := findHandler(terms)
	if !found {
		terms[0].Target = TargetOf(1)
		return terms
	}

	// newIndex[p] is the index of original term p after reordering. The
	// extra slot maps the end of the program onto itself.
	newIndex := make([]int, len(terms)+1)
	ordered := make([]*Term, 0, len(terms))

	ordered = append(ordered, terms[0])
	for p := handler.start; p < handler.end; p++ {
		newIndex[p] = len(ordered)
		ordered = append(ordered, terms[p])
	}

	for p := 1; p < len(terms); p++ {
		if handler.contains(p) {
			continue
		}

		newIndex[p] = len(ordered)
		ordered = append(ordered, terms[p])
	}

	newIndex[len(terms)] = len(terms)

	for p := 1; p < len(terms); p++ {
		t := terms[p]

		pos, ok := t.Target.Get()
		if !ok {
			continue
		}

		if !handler.contains(p) && handler.contains(pos) {
			pos = handler.end
		}

		t.Target = TargetOf(newIndex[pos])
	}

	terms[0].Target = TargetOf(1 + handler.len())

	c.trace("interrupt handler moved",
		"from", handler.start, "terms", handler.len())

	return ordered
}
