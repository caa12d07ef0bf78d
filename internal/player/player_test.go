package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandDarwin(t *testing.T) {
	p := New(nil)
	p.goos = "darwin"

	name, args, err := p.command("/tmp/word.mp3")
	require.NoError(t, err)
	assert.Equal(t, "afplay", name)
	assert.Equal(t, []string{"/tmp/word.mp3"}, args)
}

func TestCommandLinuxPreferenceOrder(t *testing.T) {
	p := New(nil)
	p.goos = "linux"
	p.lookPath = func(name string) (string, error) {
		if name == "ffplay" || name == "aplay" {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}

	name, args, err := p.command("/tmp/word.mp3")
	require.NoError(t, err)
	assert.Equal(t, "ffplay", name)
	assert.Equal(t, []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "/tmp/word.mp3"}, args)
}

func TestCommandLinuxNoPlayer(t *testing.T) {
	p := New(nil)
	p.goos = "linux"
	p.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	_, _, err := p.command("/tmp/word.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio player found")
}

func TestCommandWindows(t *testing.T) {
	p := New(nil)
	p.goos = "windows"

	name, args, err := p.command("C:\\word.mp3")
	require.NoError(t, err)
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/c", "start", "/min", "/wait", "C:\\word.mp3"}, args)
}

func TestCommandUnsupportedPlatform(t *testing.T) {
	p := New(nil)
	p.goos = "plan9"

	_, _, err := p.command("/tmp/word.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}

func TestAvailable(t *testing.T) {
	p := New(nil)
	p.goos = "darwin"

	assert.NoError(t, p.Available())
}
