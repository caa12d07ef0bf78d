package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/stvsever/LearnLanguage/internal/speech"
	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// ErrBusy is returned when an operation is rejected because another one
// is still in flight. Only one generation or playback runs at a time.
var ErrBusy = errors.New("an operation is already in progress")

// AudioPlayer plays an audio file and blocks until done.
type AudioPlayer interface {
	Play(ctx context.Context, path string) error
}

// Controller drives the session state machine. Its blocking methods
// (Submit, Play, PlayAll) are meant to be called from their own
// goroutine; observers get notified through the OnChange callback.
type Controller struct {
	mu   sync.Mutex
	busy bool
	sess *Session

	gen    vocab.Generator
	tts    speech.Provider
	player AudioPlayer
	log    *zap.Logger

	onChange func(*Session)
}

// NewController creates a controller in the input state
func NewController(gen vocab.Generator, tts speech.Provider, player AudioPlayer, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		sess:   newSession(),
		gen:    gen,
		tts:    tts,
		player: player,
		log:    log,
	}
}

// SetOnChange registers a callback invoked after every state change.
// The callback receives a snapshot and may be called from any goroutine.
func (c *Controller) SetOnChange(fn func(*Session)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current session state
func (c *Controller) Snapshot() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.clone()
}

// Busy reports whether a blocking operation is in flight
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Submit generates a new word list for the given parameters. On success
// the session moves to the listing screen with cleared answers; on
// failure it moves to the error screen and the previous list is kept.
func (c *Controller) Submit(ctx context.Context, params vocab.Params) error {
	if err := c.begin(ScreenInput); err != nil {
		return err
	}

	c.log.Info("generating word list",
		zap.String("concept", params.Concept),
		zap.Int("items", params.ItemCount),
		zap.String("language", string(params.Language)),
		zap.String("difficulty", string(params.Difficulty)))

	list, err := c.gen.Generate(ctx, params)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.log.Error("generation failed", zap.Error(err))
		c.sess.Screen = ScreenError
		c.sess.LastErr = err.Error()
	} else {
		c.sess.Params = params
		c.sess.List = list
		c.sess.Answers = map[int]string{}
		c.sess.Screen = ScreenListing
		c.sess.LastErr = ""
	}
	c.notifyLocked()
	c.mu.Unlock()

	return err
}

// Play synthesizes and plays the target term at the given index,
// blocking until playback finishes.
func (c *Controller) Play(ctx context.Context, index int) error {
	if err := c.begin(ScreenListing); err != nil {
		return err
	}

	c.mu.Lock()
	if index < 0 || index >= len(c.sess.List) {
		c.busy = false
		c.mu.Unlock()
		return fmt.Errorf("no word at index %d", index)
	}
	item := c.sess.List[index]
	lang := c.sess.Params.Language
	c.sess.Screen = ScreenPlaying
	c.sess.PlayingIndex = index
	c.notifyLocked()
	c.mu.Unlock()

	err := c.speak(ctx, item.Target, lang)
	c.finishPlayback(err)
	return err
}

// PlayAll plays every target term in list order, stopping at the first
// failure.
func (c *Controller) PlayAll(ctx context.Context) error {
	if err := c.begin(ScreenListing); err != nil {
		return err
	}

	c.mu.Lock()
	list := append(vocab.WordList(nil), c.sess.List...)
	lang := c.sess.Params.Language
	c.sess.Screen = ScreenPlaying
	c.mu.Unlock()

	var err error
	for i, item := range list {
		c.mu.Lock()
		c.sess.PlayingIndex = i
		c.notifyLocked()
		c.mu.Unlock()

		if err = c.speak(ctx, item.Target, lang); err != nil {
			break
		}
	}
	c.finishPlayback(err)
	return err
}

// StartTest moves to the testing screen with a clean answer sheet
func (c *Controller) StartTest() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	if c.sess.Screen != ScreenListing {
		return fmt.Errorf("cannot start a test from the %s screen", c.sess.Screen)
	}
	if len(c.sess.List) == 0 {
		return fmt.Errorf("no word list to test")
	}

	c.sess.Answers = map[int]string{}
	c.sess.Screen = ScreenTesting
	c.notifyLocked()
	return nil
}

// SubmitAnswer records the answer for one quiz item
func (c *Controller) SubmitAnswer(index int, answer string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Screen != ScreenTesting {
		return fmt.Errorf("cannot answer from the %s screen", c.sess.Screen)
	}
	if index < 0 || index >= len(c.sess.List) {
		return fmt.Errorf("no word at index %d", index)
	}

	c.sess.Answers[index] = answer
	return nil
}

// FinishTest grades the answers and returns to the listing screen
func (c *Controller) FinishTest() (TestReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Screen != ScreenTesting {
		return TestReport{}, fmt.Errorf("cannot finish a test from the %s screen", c.sess.Screen)
	}

	report := grade(c.sess.List, c.sess.Answers)
	c.sess.Screen = ScreenListing
	c.notifyLocked()

	c.log.Info("test finished",
		zap.Int("score", report.Score),
		zap.Int("total", report.Total))

	return report, nil
}

// Acknowledge dismisses the error screen and starts over with a fresh
// session on the input screen.
func (c *Controller) Acknowledge() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Screen != ScreenError {
		return fmt.Errorf("cannot acknowledge from the %s screen", c.sess.Screen)
	}

	c.sess = newSession()
	c.notifyLocked()
	return nil
}

// Reset discards the session and returns to the input screen
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}

	c.sess = newSession()
	c.notifyLocked()
	return nil
}

// begin reserves the controller for a blocking operation starting from
// the given screen.
func (c *Controller) begin(from Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	if c.sess.Screen != from {
		return fmt.Errorf("cannot do that from the %s screen", c.sess.Screen)
	}
	c.busy = true
	return nil
}

// speak synthesizes one term and plays it, releasing the audio artifact
// on every path.
func (c *Controller) speak(ctx context.Context, text string, lang vocab.Language) error {
	res, err := c.tts.Synthesize(ctx, text, lang)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := res.Release(); rerr != nil {
			c.log.Warn("failed to release audio artifact",
				zap.String("path", res.Path), zap.Error(rerr))
		}
	}()

	return c.player.Play(ctx, res.Path)
}

// finishPlayback returns to the listing screen, or to the error screen
// if playback failed. The word list is never modified by playback.
func (c *Controller) finishPlayback(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.busy = false
	c.sess.PlayingIndex = -1
	if err != nil {
		c.log.Error("playback failed", zap.Error(err))
		c.sess.Screen = ScreenError
		c.sess.LastErr = err.Error()
	} else {
		c.sess.Screen = ScreenListing
	}
	c.notifyLocked()
}

// notifyLocked invokes the change callback with a snapshot. Callers
// must hold c.mu.
func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.sess.clone())
	}
}
