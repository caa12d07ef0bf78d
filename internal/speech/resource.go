package speech

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// Resource is a synthesized audio artifact on disk. Providers return one
// per successful synthesis; callers release it when playback is done.
type Resource struct {
	Path     string
	Text     string
	Language vocab.Language

	mu       sync.Mutex
	released bool
}

// NewResource wraps an existing audio file
func NewResource(path, text string, lang vocab.Language) *Resource {
	return &Resource{Path: path, Text: text, Language: lang}
}

// Release deletes the underlying file. Safe to call more than once and
// on resources whose file is already gone.
func (r *Resource) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return nil
	}
	r.released = true

	err := os.Remove(r.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Released reports whether Release has been called
func (r *Resource) Released() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}
