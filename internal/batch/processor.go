// Package batch reads texts to be spelled out from files and streams.
package batch

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one text read from a batch file
type Entry struct {
	Line int    // 1-based line number in the source file
	Text string // Text to spell out, without surrounding spaces and tabs
}

// ReadBatchFile reads one text per line. Surrounding spaces and tabs are
// trimmed, blank lines are skipped and Windows line endings are accepted.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line = strings.Trim(line, " \t"); line == "" {
			continue
		}
		entries = append(entries, Entry{Line: i + 1, Text: line})
	}

	return entries, nil
}

// ReadText reads the whole stream as a single text. Inner newlines are kept;
// one trailing line ending, as added by echo or an editor, is dropped.
func ReadText(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	text := string(content)
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n"), nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}
