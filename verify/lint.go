package verify

import (
	"fmt"

	"github.com/sarchlab/stackc/instr"
	"github.com/sarchlab/stackc/program"
)

// RunLint performs static checks on an emitted program.
// Returns a list of issues found, or empty list if no issues.
func RunLint(insts []instr.Inst, isa *program.ISA) []Issue {
	var issues []Issue

	if len(insts) == 0 {
		return []Issue{{
			Type:    IssueStruct,
			Index:   -1,
			Message: "program is empty",
		}}
	}

	for n, inst := range insts {
		issues = append(issues, checkInst(n, inst, len(insts), isa)...)
	}

	// STRUCT: the program ends with hlt
	last := insts[len(insts)-1]
	if last.Op != program.HLT {
		issues = append(issues, Issue{
			Type:    IssueStruct,
			Index:   len(insts) - 1,
			Message: fmt.Sprintf("program ends with %s instead of hlt", last.Op),
			Details: map[string]interface{}{"opcode": last.Op.String()},
		})
	}

	return issues
}

func checkInst(n int, inst instr.Inst, size int, isa *program.ISA) []Issue {
	var issues []Issue

	// STRUCT: opcode and arity
	arity, found := isa.Arity(inst.Op)
	if !found {
		return []Issue{{
			Type:    IssueStruct,
			Index:   n,
			Message: fmt.Sprintf("unknown opcode %q", inst.Op),
			Details: map[string]interface{}{"opcode": inst.Op.String()},
		}}
	}

	if arity != len(inst.Operands) {
		issues = append(issues, Issue{
			Type:  IssueStruct,
			Index: n,
			Message: fmt.Sprintf("%s takes %d operand(s), got %d",
				inst.Op, arity, len(inst.Operands)),
			Details: map[string]interface{}{
				"opcode":   inst.Op.String(),
				"expected": arity,
				"actual":   len(inst.Operands),
			},
		})
	}

	// OPERAND: everything is a number once addresses are fixed
	for _, o := range inst.Operands {
		if o.Kind != instr.Immediate || !o.IsNumeric() {
			issues = append(issues, Issue{
				Type:    IssueOperand,
				Index:   n,
				Message: fmt.Sprintf("%s has operand %s of kind %s", inst.Op, o, o.Kind),
				Details: map[string]interface{}{"kind": o.Kind.String()},
			})
		}
	}

	// TARGET: jumps stay inside the program
	if target, ok := inst.Arg(); ok && inst.IsJump() {
		if target < 0 || target >= size {
			issues = append(issues, Issue{
				Type:    IssueTarget,
				Index:   n,
				Message: fmt.Sprintf("%s target %d outside [0, %d)", inst.Op, target, size),
				Details: map[string]interface{}{"target": target, "size": size},
			})
		}
	}

	return issues
}
