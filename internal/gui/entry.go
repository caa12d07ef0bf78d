package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// escapeEntry is a single-line entry that gives up focus on Escape, so
// keyboard users can leave a field without reaching for the mouse.
type escapeEntry struct {
	widget.Entry
	window fyne.Window
}

func newEscapeEntry(window fyne.Window) *escapeEntry {
	e := &escapeEntry{window: window}
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey handles key events
func (e *escapeEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.window != nil {
		e.window.Canvas().Unfocus()
		return
	}
	e.Entry.TypedKey(key)
}
