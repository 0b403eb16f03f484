package api

import (
	"fmt"
	"os"

	"github.com/sarchlab/stackc/program"
)

// FileSource reads source text from a file.
type FileSource struct {
	Path string
}

// Name returns the path.
func (s FileSource) Name() string {
	return s.Path
}

// Read loads the file.
func (s FileSource) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// StringSource serves source text held in memory.
type StringSource struct {
	Label string
	Text  string
}

// Name returns the label.
func (s StringSource) Name() string {
	return s.Label
}

// Read returns the text.
func (s StringSource) Read() (string, error) {
	return s.Text, nil
}

// FileSink writes records to a JSON file.
type FileSink struct {
	Path string
}

// Write saves the records.
func (s FileSink) Write(records []program.Record) error {
	if err := program.WriteFile(s.Path, records); err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}

	return nil
}
