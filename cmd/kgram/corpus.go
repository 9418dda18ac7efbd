package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadCorpus reads the training file, trimming surrounding whitespace
// from each line and joining the results with newlines.
func loadCorpus(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open training file: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read training file: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}
