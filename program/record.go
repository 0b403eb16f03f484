package program

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Record is the exported form of one instruction.
type Record struct {
	Index   int    `json:"index"`
	Command Opcode `json:"command"`
	Arg     *int   `json:"arg,omitempty"`
}

// NewRecord creates a record without an operand.
func NewRecord(index int, command Opcode) Record {
	return Record{Index: index, Command: command}
}

// WithArg returns a copy of the record that carries the operand.
func (r Record) WithArg(arg int) Record {
	r.Arg = &arg
	return r
}

// HasArg tells if the record carries an operand.
func (r Record) HasArg() bool {
	return r.Arg != nil
}

// Encode writes records as a JSON array, one record per line.
func Encode(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("["); err != nil {
		return err
	}

	for i, rec := range records {
		if i > 0 {
			if _, err := bw.WriteString(",\n "); err != nil {
				return err
			}
		}

		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}

		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("]"); err != nil {
		return err
	}

	return bw.Flush()
}

// Decode reads a JSON array of records and checks it against the ISA.
func Decode(r io.Reader, isa *ISA) ([]Record, error) {
	var records []Record

	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	for i, rec := range records {
		if rec.Index != i {
			return nil, fmt.Errorf("record %d has index %d", i, rec.Index)
		}

		arity, found := isa.Arity(rec.Command)
		if !found {
			return nil, fmt.Errorf("record %d: unknown command %q", i, rec.Command)
		}

		if (arity == 1) != rec.HasArg() {
			return nil, fmt.Errorf("record %d: command %s takes %d operand(s)",
				i, rec.Command, arity)
		}
	}

	return records, nil
}

// WriteFile saves records to a file.
func WriteFile(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create program file: %w", err)
	}

	if err := Encode(file, records); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// ReadFile loads records written by WriteFile.
func ReadFile(path string, isa *ISA) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open program file: %w", err)
	}
	defer file.Close()

	return Decode(file, isa)
}
