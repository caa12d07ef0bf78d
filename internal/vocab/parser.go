package vocab

import (
	"fmt"
	"strings"
)

// The response grammar is one vocabulary entry per line:
//
//	source — target
//	source — target [phonetic]
//
// The separator is an em dash or a hyphen surrounded by spaces. Markdown
// code fences, list bullets and numbering are stripped before matching.
// Lines that do not match are dropped.

// separators accepted between source and target, tried in order.
var separators = []string{" — ", " – ", " - "}

// ParseResponse parses the raw model response into a word list of exactly
// itemCount entries. Malformed lines are skipped; surplus valid lines are
// ignored. If fewer than itemCount valid entries remain, it fails with
// GenerationError{Reason: ReasonIncomplete}.
func ParseResponse(text string, itemCount int) (WordList, error) {
	list := make(WordList, 0, itemCount)

	for _, line := range strings.Split(text, "\n") {
		if len(list) == itemCount {
			break
		}
		item, ok := parseLine(line)
		if ok {
			list = append(list, item)
		}
	}

	if len(list) < itemCount {
		return nil, &GenerationError{
			Reason: ReasonIncomplete,
			Err:    fmt.Errorf("expected %d entries, parsed %d valid lines", itemCount, len(list)),
		}
	}

	return list, nil
}

// parseLine parses a single response line into a word item.
func parseLine(line string) (WordItem, bool) {
	line = stripDecoration(line)
	if line == "" {
		return WordItem{}, false
	}

	var source, rest string
	for _, sep := range separators {
		if idx := strings.Index(line, sep); idx > 0 {
			source = strings.TrimSpace(line[:idx])
			rest = strings.TrimSpace(line[idx+len(sep):])
			break
		}
	}
	if source == "" || rest == "" {
		return WordItem{}, false
	}

	target, phonetic := splitPhonetic(rest)
	if target == "" {
		return WordItem{}, false
	}

	return WordItem{Source: source, Target: target, Phonetic: phonetic}, true
}

// splitPhonetic extracts a trailing [phonetic] hint from the target part.
func splitPhonetic(s string) (target, phonetic string) {
	if !strings.HasSuffix(s, "]") {
		return s, ""
	}
	open := strings.LastIndex(s, "[")
	if open <= 0 {
		return s, ""
	}
	target = strings.TrimSpace(s[:open])
	phonetic = strings.TrimSpace(s[open+1 : len(s)-1])
	return target, phonetic
}

// stripDecoration removes markdown fences, bullets and list numbering that
// models habitually wrap around plain-text output.
func stripDecoration(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "```") {
		return ""
	}
	for _, bullet := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, bullet) {
			line = strings.TrimSpace(line[len(bullet):])
			break
		}
	}
	// Strip "1. " / "12) " style numbering.
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = strings.TrimSpace(line[i+1:])
	}
	return line
}
