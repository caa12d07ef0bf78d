// Package session holds the application state machine: one tutoring
// session moving between input, listing, playback, testing, and error
// screens under a single-operation-at-a-time rule.
package session

import "github.com/stvsever/LearnLanguage/internal/vocab"

// Session is the mutable state of one tutoring run. The Controller owns
// it; callers receive copies via Snapshot.
type Session struct {
	Params  vocab.Params
	List    vocab.WordList
	Screen  Screen
	Answers map[int]string
	LastErr string

	// PlayingIndex is the word being spoken while Screen is
	// ScreenPlaying, -1 otherwise.
	PlayingIndex int
}

func newSession() *Session {
	return &Session{
		Screen:       ScreenInput,
		Answers:      map[int]string{},
		PlayingIndex: -1,
	}
}

func (s *Session) clone() *Session {
	c := *s
	c.List = append(vocab.WordList(nil), s.List...)
	c.Answers = make(map[int]string, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = v
	}
	return &c
}
