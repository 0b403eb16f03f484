package core

import (
	"context"
	"io"
	"log/slog"

	"github.com/sarchlab/stackc/config"
)

// Compilation holds the state of one translation run. Every phase takes it
// explicitly; a new one is needed for every run.
type Compilation struct {
	Opts    config.Options
	Symbols *SymbolTable

	log *slog.Logger
}

// NewCompilation creates a fresh compilation. A nil logger discards logs.
func NewCompilation(opts config.Options, logger *slog.Logger) *Compilation {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Compilation{
		Opts:    opts,
		Symbols: NewSymbolTable(opts.VariableBase),
		log:     logger,
	}
}

// Logger returns the logger of the compilation.
func (c *Compilation) Logger() *slog.Logger {
	return c.log
}

func (c *Compilation) trace(msg string, args ...any) {
	c.log.Log(context.Background(), LevelTrace, msg, args...)
}
