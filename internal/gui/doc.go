// Package gui implements the Fyne desktop front end. It renders the
// session state machine: whenever the controller reports a state
// change, the window content is rebuilt for the new screen. All
// blocking controller calls run in their own goroutine and UI updates
// go through fyne.Do.
package gui
