// Package verify checks emitted stack machine programs.
//
// RunLint (lint.go) looks at a finished instruction list and reports every
// place where it breaks the rules a loader relies on:
//
//   - STRUCT: unknown opcode, wrong operand count, missing final hlt
//   - OPERAND: an operand that is not a plain number after address fixup
//   - TARGET: a jmp, jz or call whose target is outside the program
//
// The translator runs the lint on every program it emits, so an issue always
// points at a translator bug rather than at the source text.
//
// # Usage Example
//
//	issues := verify.RunLint(prog.Insts, program.DefaultISA())
//	if len(issues) > 0 {
//	    report := verify.NewReport("prog.fs", len(prog.Insts), issues)
//	    report.WriteReport(os.Stderr)
//	}
package verify

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct  IssueType = "STRUCT"  // Opcode or program shape error
	IssueOperand IssueType = "OPERAND" // Operand left unresolved or non-numeric
	IssueTarget  IssueType = "TARGET"  // Control transfer outside the program
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT, OPERAND or TARGET
	Index   int                    // Instruction index or -1
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}
