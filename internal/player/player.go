// Package player plays audio files through OS-level playback commands.
package player

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// linuxPlayers lists playback commands in order of preference. mpg123
// first since it handles MP3 files best.
var linuxPlayers = [][]string{
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"play", "-q"},
	{"paplay"},
	{"aplay", "-q"},
}

// Player runs platform playback commands and blocks until they finish.
type Player struct {
	log      *zap.Logger
	goos     string
	lookPath func(string) (string, error)
}

// New creates a Player for the current platform
func New(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		log:      log,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

// Play plays the audio file and blocks until playback completes or the
// context is canceled.
func (p *Player) Play(ctx context.Context, path string) error {
	name, args, err := p.command(path)
	if err != nil {
		return err
	}

	p.log.Debug("starting playback",
		zap.String("command", name),
		zap.String("file", path))

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("playback command %s failed: %w", name, err)
	}
	return nil
}

// Available checks whether a playback command exists on this system
func (p *Player) Available() error {
	_, _, err := p.command("probe.mp3")
	return err
}

// command selects the platform playback command for the given file
func (p *Player) command(path string) (string, []string, error) {
	switch p.goos {
	case "darwin":
		return "afplay", []string{path}, nil
	case "linux":
		for _, candidate := range linuxPlayers {
			if _, err := p.lookPath(candidate[0]); err == nil {
				args := append(append([]string{}, candidate[1:]...), path)
				return candidate[0], args, nil
			}
		}
		return "", nil, fmt.Errorf("no audio player found. Install mpg123, ffplay, sox, paplay, or aplay")
	case "windows":
		return "cmd", []string{"/c", "start", "/min", "/wait", path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", p.goos)
	}
}
