package gui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"github.com/stvsever/LearnLanguage/internal"
	"github.com/stvsever/LearnLanguage/internal/session"
	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// Config holds GUI application configuration
type Config struct {
	Controller *session.Controller
	Items      int
	Difficulty string
	Language   string
	Log        *zap.Logger
}

// Application represents the main GUI application
type Application struct {
	app    fyne.App
	window fyne.Window

	ctrl *session.Controller
	log  *zap.Logger

	// Screen area swapped on every state change
	content     *fyne.Container
	statusLabel *widget.Label
	logViewer   *LogViewer

	// Input screen widgets, built once so typed values survive
	// error round trips
	conceptEntry  *escapeEntry
	itemsEntry    *widget.Entry
	difficultySel *widget.RadioGroup
	languageSel   *widget.RadioGroup
	generateBtn   *ttwidget.Button
	inputScreen   fyne.CanvasObject

	fontScale float32

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new GUI application around the given controller
func New(config *Config) *Application {
	if config.Items <= 0 {
		config.Items = 10
	}
	if config.Log == nil {
		config.Log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("com.github.stvsever.learnlanguage")
	myApp.SetIcon(GetAppIcon())

	a := &Application{
		app:       myApp,
		ctrl:      config.Controller,
		log:       config.Log,
		fontScale: 1.0,
		ctx:       ctx,
		cancel:    cancel,
	}

	a.setupUI(config)

	a.ctrl.SetOnChange(func(s *session.Session) {
		fyne.Do(func() {
			a.render(s)
		})
	})

	return a
}

// setupUI creates the window and the static parts of the interface
func (a *Application) setupUI(config *Config) {
	a.window = a.app.NewWindow(fmt.Sprintf("LearnLanguage v%s - Vocabulary Tutor", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(800, 700))

	a.statusLabel = widget.NewLabel("Ready")
	a.logViewer = NewLogViewer()
	a.logViewer.CaptureOutput()

	a.buildInputScreen(config)

	a.content = container.NewStack(a.inputScreen)

	zoomOut := ttwidget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
		a.adjustFontScale(-0.1)
	})
	zoomIn := ttwidget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		a.adjustFontScale(0.1)
	})
	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHelp)

	toolbar := container.NewHBox(
		zoomOut,
		zoomIn,
		widget.NewSeparator(),
		helpButton,
	)

	logSection := widget.NewAccordion(
		widget.NewAccordionItem("Log messages", a.logViewer),
	)

	statusSection := container.NewVBox(
		widget.NewSeparator(),
		logSection,
		a.statusLabel,
	)

	root := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		statusSection,
		nil, nil,
		a.content,
	)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(root, a.window.Canvas()))

	zoomOut.SetToolTip("Decrease font size")
	zoomIn.SetToolTip("Increase font size")
	helpButton.SetToolTip("Show help")
	a.generateBtn.SetToolTip("Generate word list")

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
		}
	})

	a.window.SetOnClosed(func() {
		a.logViewer.StopCapture()
		a.cancel()
		a.wg.Wait()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// render rebuilds the screen area for the given session snapshot. Must
// run on the Fyne main goroutine.
func (a *Application) render(s *session.Session) {
	switch s.Screen {
	case session.ScreenInput:
		a.setInputEnabled(true)
		a.content.Objects = []fyne.CanvasObject{a.inputScreen}
		a.setStatus("Ready")

	case session.ScreenListing:
		a.content.Objects = []fyne.CanvasObject{a.buildListingScreen(s, false)}
		a.setStatus(fmt.Sprintf("%d entries for %q", len(s.List), s.Params.Concept))

	case session.ScreenPlaying:
		a.content.Objects = []fyne.CanvasObject{a.buildListingScreen(s, true)}
		if s.PlayingIndex >= 0 && s.PlayingIndex < len(s.List) {
			a.setStatus(fmt.Sprintf("Playing %d of %d: %s",
				s.PlayingIndex+1, len(s.List), s.List[s.PlayingIndex].Target))
		} else {
			a.setStatus("Playing...")
		}

	case session.ScreenTesting:
		a.content.Objects = []fyne.CanvasObject{a.buildTestingScreen(s)}
		a.setStatus("Test in progress")

	case session.ScreenError:
		// Keep the current screen visible behind the dialog
		a.showSessionError(s.LastErr)
	}

	a.content.Refresh()
}

// onGenerate validates the input fields and kicks off generation in
// the background.
func (a *Application) onGenerate() {
	concept := strings.TrimSpace(a.conceptEntry.Text)
	if concept == "" {
		dialog.ShowError(errors.New("enter a concept first"), a.window)
		return
	}

	items, err := strconv.Atoi(strings.TrimSpace(a.itemsEntry.Text))
	if err != nil || items < 1 {
		dialog.ShowError(errors.New("item count must be a positive number"), a.window)
		return
	}

	difficulty, err := vocab.ParseDifficulty(a.difficultySel.Selected)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	language, err := vocab.ParseLanguage(a.languageSel.Selected)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	params := vocab.Params{
		Concept:    concept,
		ItemCount:  items,
		Difficulty: difficulty,
		Language:   language,
	}
	if err := params.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.setInputEnabled(false)
	a.setStatus(fmt.Sprintf("Generating %d entries for %q...", items, concept))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.ctrl.Submit(a.ctx, params); errors.Is(err, session.ErrBusy) {
			fyne.Do(func() {
				a.setInputEnabled(true)
				a.setStatus("Busy, try again")
			})
		}
	}()
}

// showSessionError presents the error screen as a dialog. Closing it
// acknowledges the error, which moves the session on.
func (a *Application) showSessionError(message string) {
	a.setStatus("Error: " + message)

	d := dialog.NewError(errors.New(message), a.window)
	d.SetOnClosed(func() {
		if err := a.ctrl.Acknowledge(); err != nil {
			a.log.Warn("failed to acknowledge error", zap.Error(err))
		}
	})
	d.Show()
}

func (a *Application) onShowHelp() {
	help := `## Usage

1. Enter a concept (e.g. "ordering food in a restaurant"),
   pick item count, difficulty, and language, then press Generate.
2. Play single entries or the whole list to hear the pronunciation.
3. Start a test to type the translations from memory; finishing
   shows your score.
4. Export the list as an Anki deck at any time.

## Keys

**Enter** in the concept field generates the list
**Esc** leaves the focused field`

	content := widget.NewRichTextFromMarkdown(help)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(500, 320))

	dialog.NewCustom("Help", "Close", scroll, a.window).Show()
}

func (a *Application) setStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) setInputEnabled(enabled bool) {
	if enabled {
		a.conceptEntry.Enable()
		a.itemsEntry.Enable()
		a.difficultySel.Enable()
		a.languageSel.Enable()
		a.generateBtn.Enable()
	} else {
		a.conceptEntry.Disable()
		a.itemsEntry.Disable()
		a.difficultySel.Disable()
		a.languageSel.Disable()
		a.generateBtn.Disable()
	}
}

// adjustFontScale changes the application font size by the given step
func (a *Application) adjustFontScale(step float32) {
	a.fontScale = clampFontScale(a.fontScale + step)
	a.app.Settings().SetTheme(&scaledTheme{base: theme.DefaultTheme(), scale: a.fontScale})
}
