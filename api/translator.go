// Package api defines how source files are turned into program files.
package api

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/core"
	"github.com/sarchlab/stackc/program"
)

// Source provides the text to translate.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string

	// Read returns the whole source text.
	Read() (string, error)
}

// Sink receives a translated program.
type Sink interface {
	// Write stores the exported records. It is only called when the
	// translation succeeds.
	Write(records []program.Record) error
}

// Translator compiles sources into programs.
type Translator interface {
	// Translate reads the source, compiles it and hands the records to the
	// sink. On failure the sink is not touched.
	Translate(src Source, dst Sink) (*Result, error)
}

// Result describes a finished translation.
type Result struct {
	Program     *core.Program
	SourceLines int
}

type translatorImpl struct {
	opts   config.Options
	logger *slog.Logger
}

func (t *translatorImpl) Translate(src Source, dst Sink) (*Result, error) {
	text, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}

	logger := t.logger.With("source", src.Name())
	c := core.NewCompilation(t.opts, logger)

	prog, err := core.Translate(c, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}

	records, err := prog.Records()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}

	if err := dst.Write(records); err != nil {
		return nil, fmt.Errorf("failed to write program: %w", err)
	}

	res := &Result{
		Program:     prog,
		SourceLines: len(strings.Split(text, "\n")),
	}

	logger.Debug("translated",
		"lines", res.SourceLines,
		"instructions", prog.Len(),
		"variables", len(prog.Variables),
		"functions", len(prog.Functions))

	return res, nil
}
