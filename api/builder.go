package api

import (
	"io"
	"log/slog"

	"github.com/sarchlab/stackc/config"
)

// TranslatorBuilder creates a new instance of Translator.
type TranslatorBuilder struct {
	opts   *config.Options
	logger *slog.Logger
}

// WithOptions sets the translation options.
func (b TranslatorBuilder) WithOptions(opts config.Options) TranslatorBuilder {
	b.opts = &opts
	return b
}

// WithLogger sets the logger.
func (b TranslatorBuilder) WithLogger(logger *slog.Logger) TranslatorBuilder {
	b.logger = logger
	return b
}

// Build creates a translator.
func (b TranslatorBuilder) Build() Translator {
	t := &translatorImpl{
		opts:   config.DefaultOptions(),
		logger: b.logger,
	}

	if b.opts != nil {
		t.opts = *b.opts
	}

	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return t
}
