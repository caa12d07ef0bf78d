// Package batch reads concept files for non-interactive runs: one
// concept per line, with an optional per-line item count override.
package batch

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Entry represents one concept to generate a word list for
type Entry struct {
	Concept string
	// ItemCount overrides the run-wide item count when > 0
	ItemCount int
}

// ReadConceptFile reads concepts from a file.
// Supported formats:
//   - Concept only: "ordering food"
//   - With item count: "ordering food | 15"
//   - Lines starting with '#' are comments and skipped
func ReadConceptFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read concept file: %w", err)
	}

	var entries []Entry

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Concept: line}

		if idx := strings.LastIndex(line, "|"); idx >= 0 {
			concept := strings.TrimSpace(line[:idx])
			countStr := strings.TrimSpace(line[idx+1:])

			count, err := strconv.Atoi(countStr)
			if err != nil || count <= 0 {
				return nil, fmt.Errorf("line %d: invalid item count %q", i+1, countStr)
			}
			if concept == "" {
				return nil, fmt.Errorf("line %d: missing concept", i+1)
			}

			entry.Concept = concept
			entry.ItemCount = count
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
