package vocab

import (
	"fmt"
	"strings"
)

// systemPrompt pins the model to the line-delimited response contract that
// ParseResponse understands.
const systemPrompt = "You are a multilingual language tutor proficient in English " +
	"and multiple other languages. You respond with plain text only: one " +
	"vocabulary entry per line, no headers, no commentary, no markdown."

// BuildPrompt builds the user prompt for one generation request. The
// requested format matches the parsing grammar in parser.go exactly.
func BuildPrompt(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Provide a bilingual vocabulary list to teach %s, related to the concept '%s'.\n",
		p.Language.DisplayName(), strings.TrimSpace(p.Concept))
	fmt.Fprintf(&b, "Generate exactly %d entries.\n", p.ItemCount)
	b.WriteString("The entries can be words, phrases, or sentences, depending on the concept. ")
	b.WriteString("Provide letters as entries if an alphabet is requested.\n")
	fmt.Fprintf(&b, "Difficulty level: %s. Adjust your choice of entries accordingly.\n",
		p.Difficulty.DisplayName())
	b.WriteString("Format each line as:\n")
	fmt.Fprintf(&b, "english term — %s term [phonetic hint]\n", strings.ToLower(p.Language.DisplayName()))
	b.WriteString("Use an em dash between the two terms. The phonetic hint in square " +
		"brackets is optional. Output nothing but these lines.")

	return b.String()
}
