package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		itemCount int
		want      WordList
		wantErr   bool
	}{
		{
			name:      "em dash pairs",
			text:      "hello — hola\ngoodbye — adiós\nthanks — gracias",
			itemCount: 3,
			want: WordList{
				{Source: "hello", Target: "hola"},
				{Source: "goodbye", Target: "adiós"},
				{Source: "thanks", Target: "gracias"},
			},
		},
		{
			name:      "hyphen separator",
			text:      "water - agua\nbread - pan",
			itemCount: 2,
			want: WordList{
				{Source: "water", Target: "agua"},
				{Source: "bread", Target: "pan"},
			},
		},
		{
			name:      "phonetic hints",
			text:      "hello — привет [pree-VYET]\ngoodbye — пока [pa-KA]",
			itemCount: 2,
			want: WordList{
				{Source: "hello", Target: "привет", Phonetic: "pree-VYET"},
				{Source: "goodbye", Target: "пока", Phonetic: "pa-KA"},
			},
		},
		{
			name:      "malformed lines dropped",
			text:      "hello — hola\ngoodbye — adiós\nthanks — gracias\nthis line has no separator",
			itemCount: 3,
			want: WordList{
				{Source: "hello", Target: "hola"},
				{Source: "goodbye", Target: "adiós"},
				{Source: "thanks", Target: "gracias"},
			},
		},
		{
			name:      "bullets numbering and fences stripped",
			text:      "```\n1. hello — hola\n- goodbye — adiós\n* thanks — gracias\n```",
			itemCount: 3,
			want: WordList{
				{Source: "hello", Target: "hola"},
				{Source: "goodbye", Target: "adiós"},
				{Source: "thanks", Target: "gracias"},
			},
		},
		{
			name:      "surplus lines truncated",
			text:      "one — uno\ntwo — dos\nthree — tres",
			itemCount: 2,
			want: WordList{
				{Source: "one", Target: "uno"},
				{Source: "two", Target: "dos"},
			},
		},
		{
			name:      "incomplete response fails",
			text:      "hello — hola\nnot a valid line",
			itemCount: 2,
			wantErr:   true,
		},
		{
			name:      "empty response fails",
			text:      "",
			itemCount: 1,
			wantErr:   true,
		},
		{
			name:      "hyphenated words are not separators",
			text:      "well-known — bien conocido",
			itemCount: 1,
			want: WordList{
				{Source: "well-known", Target: "bien conocido"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.text, tt.itemCount)
			if tt.wantErr {
				require.Error(t, err)
				var genErr *GenerationError
				require.True(t, errors.As(err, &genErr))
				assert.Equal(t, ReasonIncomplete, genErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.itemCount)
		})
	}
}

func TestParseResponseIdempotent(t *testing.T) {
	text := "hello — hola\ngoodbye — adiós [ah-DYOS]\nthanks — gracias"

	first, err := ParseResponse(text, 3)
	require.NoError(t, err)

	second, err := ParseResponse(text, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseResponseOrderPreserved(t *testing.T) {
	text := "one — uno\ntwo — dos\nthree — tres"

	list, err := ParseResponse(text, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"uno", "dos", "tres"}, list.Targets())
}

func TestSplitPhonetic(t *testing.T) {
	tests := []struct {
		in       string
		target   string
		phonetic string
	}{
		{"hola", "hola", ""},
		{"hola [OH-la]", "hola", "OH-la"},
		{"привет [pree-VYET]", "привет", "pree-VYET"},
		{"[only brackets]", "[only brackets]", ""},
	}

	for _, tt := range tests {
		target, phonetic := splitPhonetic(tt.in)
		assert.Equal(t, tt.target, target, "input %q", tt.in)
		assert.Equal(t, tt.phonetic, phonetic, "input %q", tt.in)
	}
}
