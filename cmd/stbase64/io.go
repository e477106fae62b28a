package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// stdioPath selects the standard stream instead of a file.
const stdioPath = "-"

func readInput(path string, s *streams, logger *slog.Logger) ([]byte, error) {
	if path == "" || path == stdioPath {
		data, err := io.ReadAll(s.in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		logger.Debug("read input", "path", "stdin", "bytes", len(data))
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}
	logger.Debug("read input", "path", path, "bytes", len(data))
	return data, nil
}

func writeOutput(path string, s *streams, data []byte, logger *slog.Logger) error {
	if path == "" || path == stdioPath {
		if _, err := s.out.Write(data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	logger.Info("wrote output", "path", path, "bytes", len(data))
	return nil
}
