// Command stbase64 encodes and decodes Base64.
//
//	stbase64 encode [FILE]
//	stbase64 decode [--skip-invalid] [FILE]
//
// FILE defaults to stdin. The whole input is read before it is
// encoded or decoded.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/sttalbot/stbase64/base64"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// CLI is the command line. Flags may also be set from the
// environment.
type CLI struct {
	Verbose   int    `short:"v" type:"counter" help:"Increase log verbosity (repeatable: info, debug)"`
	LogFormat string `help:"Log output format" enum:"text,json" default:"text" env:"STBASE64_LOG_FORMAT"`
	NoColor   bool   `help:"Disable colored log output" env:"NO_COLOR"`

	Encode EncodeCLI `cmd:"" help:"Encode a file or stdin as Base64"`
	Decode DecodeCLI `cmd:"" help:"Decode Base64 from a file or stdin"`
}

// streams are the process's standard streams, bound into each
// command's Run method.
type streams struct {
	in  io.Reader
	out io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("stbase64"),
		kong.Description("Encode and decode Base64 using the standard alphabet."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return exitUsage
	}

	logger := newLogger(stderr, cli.Verbose, cli.LogFormat, cli.NoColor)
	command := kctx.Selected().Name
	logger.Debug("command called", "command", command, "args", kctx.Args)

	if err := kctx.Run(logger, &streams{in: stdin, out: stdout}); err != nil {
		attrs := []any{"command", command, "error", err}
		var codecErr *base64.Error
		if errors.As(err, &codecErr) {
			attrs = append(attrs, "kind", codecErr.Kind.String())
		}
		logger.Error("command failed", attrs...)
		return exitError
	}
	return exitOK
}

// newLogger returns a logger writing to w. verbose raises the
// level from warn to info (1) or debug (2 or more).
func newLogger(w io.Writer, verbose int, format string, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose == 1:
		level = slog.LevelInfo
	case verbose >= 2:
		level = slog.LevelDebug
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}
