package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/sttalbot/stbase64/base64"
)

// DecodeCLI decodes Base64 text.
type DecodeCLI struct {
	File        string `arg:"" optional:"" default:"-" help:"File to decode (- for stdin)"`
	Output      string `short:"o" default:"-" help:"Write the decoded bytes to this file (- for stdout)"`
	SkipInvalid bool   `short:"i" name:"skip-invalid" env:"STBASE64_SKIP_INVALID" help:"Drop bytes outside the Base64 alphabet, line breaks included, instead of failing"`
}

func (d *DecodeCLI) Run(logger *slog.Logger, s *streams) error {
	data, err := readInput(d.File, s, logger)
	if err != nil {
		return err
	}

	opts := base64.Strict
	if d.SkipInvalid {
		opts |= base64.SkipInvalidInputBytes
	} else {
		// Accept the line ending that encode, and most tools,
		// append to their output.
		data = bytes.TrimSuffix(data, []byte{'\n'})
		data = bytes.TrimSuffix(data, []byte{'\r'})
	}

	dec, err := base64.DecodeBytes(data, opts)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", inputName(d.File), err)
	}
	logger.Info("decoded", "in", len(data), "out", len(dec), "options", opts.String())

	return writeOutput(d.Output, s, dec, logger)
}

func inputName(path string) string {
	if path == "" || path == stdioPath {
		return "stdin"
	}
	return path
}
