// Command translator compiles a stack-language source file into a JSON
// program file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/stackc/api"
	"github.com/sarchlab/stackc/config"
	"github.com/sarchlab/stackc/program"
	"github.com/sarchlab/stackc/verify"
	"github.com/tebeka/atexit"
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"usage: %s [-config file] [-listing] [-report file] [-v] [-log-json] <input> <output>\n",
		os.Args[0])
	flag.PrintDefaults()
}

func newLogger(verbose, asJSON bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	hopts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, hopts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, hopts))
}

func loadOptions(path string) (config.Options, error) {
	if path == "" {
		return config.DefaultOptions(), nil
	}

	return config.LoadFile(path)
}

func main() {
	configPath := flag.String("config", "", "YAML file with translation options")
	listing := flag.Bool("listing", false, "print the annotated program listing")
	verbose := flag.Bool("v", false, "log every compilation phase")
	logJSON := flag.Bool("log-json", false, "emit logs as JSON")
	reportPath := flag.String("report", "", "save the lint report to this file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		atexit.Exit(2)
	}

	logger := newLogger(*verbose, *logJSON)

	opts, err := loadOptions(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	translator := api.TranslatorBuilder{}.
		WithOptions(opts).
		WithLogger(logger).
		Build()

	res, err := translator.Translate(
		api.FileSource{Path: flag.Arg(0)},
		api.FileSink{Path: flag.Arg(1)},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	if *reportPath != "" {
		issues := verify.RunLint(res.Program.Insts, program.DefaultISA())
		report := verify.NewReport(flag.Arg(0), res.Program.Len(), issues)
		if err := report.SaveReportToFile(*reportPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
	}

	if *listing {
		fmt.Println(res.Program.RenderListing())
	}

	fmt.Printf("source LoC: %d code instr: %d\n", res.SourceLines, res.Program.Len())
	atexit.Exit(0)
}
