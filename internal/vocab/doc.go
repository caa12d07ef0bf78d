// Package vocab builds prompts for the language-generation service and
// parses its free-text responses into structured bilingual word lists.
// It defines the Generator interface with OpenAI and Gemini backed
// implementations.
package vocab
