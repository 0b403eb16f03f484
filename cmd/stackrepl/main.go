// Command stackrepl compiles stack-language snippets interactively and prints
// the resulting listing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/core"
	"github.com/tebeka/atexit"
)

const prompt = "stackc> "

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".stackc_history")
}

// compileLine translates one snippet on its own. Nothing carries over between
// lines.
func compileLine(opts config.Options, logger *slog.Logger, line string) (string, error) {
	c := core.NewCompilation(opts, logger)

	prog, err := core.Translate(c, line)
	if err != nil {
		return "", err
	}

	return prog.RenderListing(), nil
}

func run(opts config.Options, logger *slog.Logger) int {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	defer func() {
		if hist == "" {
			return
		}
		if f, err := os.Create(hist); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if line == ":quit" {
			return 0
		}

		listing, err := compileLine(opts, logger, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Println(listing)
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file with translation options")
	verbose := flag.Bool("v", false, "log every compilation phase")
	flag.Parse()

	opts := config.DefaultOptions()
	if *configPath != "" {
		var err error
		opts, err = config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level}))

	atexit.Exit(run(opts, logger))
}
