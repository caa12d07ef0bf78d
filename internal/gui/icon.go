package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GetAppIcon returns the application icon as a Fyne resource
func GetAppIcon() fyne.Resource {
	return theme.MediaMusicIcon()
}
