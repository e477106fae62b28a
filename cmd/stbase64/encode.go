package main

import (
	"bytes"
	"log/slog"
	"slices"

	"github.com/sttalbot/stbase64/base64"
)

// EncodeCLI encodes its input as Base64 text.
type EncodeCLI struct {
	File   string `arg:"" optional:"" default:"-" help:"File to encode (- for stdin)"`
	Output string `short:"o" default:"-" help:"Write the encoding to this file (- for stdout)"`
	Wrap   int    `short:"w" default:"0" help:"Break encoded lines after this many characters (0 disables wrapping)"`
}

func (e *EncodeCLI) Run(logger *slog.Logger, s *streams) error {
	data, err := readInput(e.File, s, logger)
	if err != nil {
		return err
	}

	enc := base64.EncodeToBytes(data)
	logger.Info("encoded", "in", len(data), "out", len(enc))

	return writeOutput(e.Output, s, wrapLines(enc, e.Wrap), logger)
}

// wrapLines breaks b into lines of at most n bytes, each ending
// in a newline. A non-positive n yields a single line.
func wrapLines(b []byte, n int) []byte {
	if len(b) == 0 {
		return b
	}
	if n <= 0 {
		return append(b, '\n')
	}
	var lines [][]byte
	for line := range slices.Chunk(b, n) {
		lines = append(lines, line)
	}
	lines = append(lines, nil)
	return bytes.Join(lines, []byte{'\n'})
}
