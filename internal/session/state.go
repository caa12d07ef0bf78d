package session

// Screen identifies which view of the application is active.
type Screen int

const (
	ScreenInput Screen = iota
	ScreenListing
	ScreenPlaying
	ScreenTesting
	ScreenError
)

func (s Screen) String() string {
	switch s {
	case ScreenInput:
		return "input"
	case ScreenListing:
		return "listing"
	case ScreenPlaying:
		return "playing"
	case ScreenTesting:
		return "testing"
	case ScreenError:
		return "error"
	default:
		return "unknown"
	}
}
