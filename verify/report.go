package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report is the outcome of linting one program.
type Report struct {
	Source       string
	Instructions int
	Issues       []Issue
}

// NewReport creates a report.
func NewReport(source string, instructions int, issues []Issue) *Report {
	return &Report{
		Source:       source,
		Instructions: instructions,
		Issues:       issues,
	}
}

// Passed tells if no issue was found.
func (r *Report) Passed() bool {
	return len(r.Issues) == 0
}

// CountByType counts issues per category.
func (r *Report) CountByType() map[IssueType]int {
	counts := make(map[IssueType]int)
	for _, issue := range r.Issues {
		counts[issue.Type]++
	}

	return counts
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "PROGRAM VERIFICATION REPORT: %s\n", r.Source)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Instructions: %d\n", r.Instructions)

	if r.Passed() {
		fmt.Fprintln(w, "✓ No lint issues found!")
		return
	}

	counts := r.CountByType()
	fmt.Fprintf(w, "⚠ Found %d lint issues (%d STRUCT, %d OPERAND, %d TARGET)\n\n",
		len(r.Issues), counts[IssueStruct], counts[IssueOperand], counts[IssueTarget])

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Type", "Index", "Message"})

	for i, issue := range r.Issues {
		t.AppendRow(table.Row{i + 1, issue.Type, issue.Index, issue.Message})
	}

	t.Render()
}

// SaveReportToFile saves the report to a file
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
