package core

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/stackc/instr"
	"github.com/sarchlab/stackc/program"
)

// Program is the result of a translation.
type Program struct {
	Insts []instr.Inst

	// Variables maps variable names to addresses and Functions maps function
	// names to the index of their first instruction.
	Variables map[string]int
	Functions map[string]int
}

// Len returns the number of instructions, the final hlt included.
func (p *Program) Len() int {
	return len(p.Insts)
}

// Records converts the program to its export form.
func (p *Program) Records() ([]program.Record, error) {
	records := make([]program.Record, len(p.Insts))

	for n, inst := range p.Insts {
		rec := program.NewRecord(n, inst.Op)

		if len(inst.Operands) > 0 {
			o := inst.Operands[0]
			if o.Kind != instr.Immediate || !o.IsNumeric() {
				return nil, fmt.Errorf("instruction %d (%s): operand %s is not a number",
					n, inst, o)
			}

			rec = rec.WithArg(o.Value)
		}

		records[n] = rec
	}

	return records, nil
}

// RenderListing renders the program as a table.
func (p *Program) RenderListing() string {
	labels := make(map[int]string, len(p.Functions))
	for name, at := range p.Functions {
		labels[at] = name
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Index", "Label", "Command", "Arg"})

	for n, inst := range p.Insts {
		arg := ""
		if len(inst.Operands) > 0 {
			arg = inst.Operands[0].String()
		}

		t.AppendRow(table.Row{n, labels[n], inst.Op.String(), arg})
	}

	t.AppendFooter(table.Row{"", "", "total", len(p.Insts)})

	return t.Render()
}
