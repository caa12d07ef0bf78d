package speech

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Speed     int // Speech speed in words per minute (default: 150)
	Pitch     int // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int // Gap between words in 10ms units (default: 0)
}

// DefaultESpeakConfig returns the default engine configuration
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Speed:     150,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// NewESpeak creates a new ESpeak instance with the given configuration
func NewESpeak(config *ESpeakConfig) (*ESpeak, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultESpeakConfig()
	}

	return &ESpeak{config: config}, nil
}

// GenerateAudio writes a WAV file for the given text using the named voice
func (e *ESpeak) GenerateAudio(text, voice, outputFile string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	args := []string{
		"-v", voice,
		"-s", fmt.Sprintf("%d", e.config.Speed),
		"-p", fmt.Sprintf("%d", e.config.Pitch),
		"-a", fmt.Sprintf("%d", e.config.Amplitude),
	}

	if e.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", e.config.WordGap))
	}

	args = append(args, "-w", outputFile, text)

	cmd := exec.Command("espeak-ng", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// GenerateMP3 writes an MP3 file for the given text, converting via ffmpeg
func (e *ESpeak) GenerateMP3(text, voice, outputFile string) error {
	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"

	if err := e.GenerateAudio(text, voice, tempWAV); err != nil {
		return err
	}

	if err := convertWAVToMP3(tempWAV, outputFile); err != nil {
		os.Remove(tempWAV)
		return err
	}

	return os.Remove(tempWAV)
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// convertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func convertWAVToMP3(wavFile, mp3File string) error {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}

	cmd := exec.Command("ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}
