package gui

import (
	"fmt"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"github.com/stvsever/LearnLanguage/internal"
	"github.com/stvsever/LearnLanguage/internal/anki"
	"github.com/stvsever/LearnLanguage/internal/session"
	"github.com/stvsever/LearnLanguage/internal/vocab"
)

// buildInputScreen creates the concept entry form. The widgets are kept
// on the Application so the user's input survives screen changes.
func (a *Application) buildInputScreen(config *Config) {
	a.conceptEntry = newEscapeEntry(a.window)
	a.conceptEntry.SetPlaceHolder("Concept, e.g. \"ordering food in a restaurant\"...")
	a.conceptEntry.OnSubmitted = func(string) {
		a.onGenerate()
	}

	a.itemsEntry = widget.NewEntry()
	a.itemsEntry.SetText(strconv.Itoa(config.Items))

	difficulties := make([]string, 0, len(vocab.Difficulties()))
	for _, d := range vocab.Difficulties() {
		difficulties = append(difficulties, d.DisplayName())
	}
	a.difficultySel = widget.NewRadioGroup(difficulties, nil)
	a.difficultySel.Horizontal = true
	if d, err := vocab.ParseDifficulty(config.Difficulty); err == nil {
		a.difficultySel.SetSelected(d.DisplayName())
	} else {
		a.difficultySel.SetSelected(vocab.DifficultyBeginner.DisplayName())
	}

	languages := make([]string, 0, len(vocab.Languages()))
	for _, l := range vocab.Languages() {
		languages = append(languages, l.DisplayName())
	}
	a.languageSel = widget.NewRadioGroup(languages, nil)
	a.languageSel.Horizontal = true
	if l, err := vocab.ParseLanguage(config.Language); err == nil {
		a.languageSel.SetSelected(l.DisplayName())
	} else {
		a.languageSel.SetSelected(vocab.LanguageSpanish.DisplayName())
	}

	a.generateBtn = ttwidget.NewButtonWithIcon("Generate", theme.ConfirmIcon(), a.onGenerate)
	a.generateBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabel("What do you want to learn words for?"),
		a.conceptEntry,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel("Number of words:"), nil, a.itemsEntry),
		container.NewBorder(nil, nil, widget.NewLabel("Difficulty:"), nil, a.difficultySel),
		container.NewBorder(nil, nil, widget.NewLabel("Language:"), nil, a.languageSel),
		widget.NewSeparator(),
		a.generateBtn,
	)

	a.inputScreen = container.NewCenter(container.NewVBox(form))
}

// buildListingScreen renders the word list with per-row play buttons.
// While playing, all controls are disabled and the active row is
// highlighted.
func (a *Application) buildListingScreen(s *session.Session, playing bool) fyne.CanvasObject {
	rows := container.NewVBox()
	for i, item := range s.List {
		index := i
		playBtn := ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
			a.playOne(index)
		})
		playBtn.SetToolTip("Play pronunciation")
		if playing {
			playBtn.Disable()
		}

		label := widget.NewLabel(itemLabel(i, item))
		if playing && s.PlayingIndex == index {
			label.TextStyle = fyne.TextStyle{Bold: true}
		}

		rows.Add(container.NewBorder(nil, nil, playBtn, nil, label))
	}

	scroll := container.NewScroll(rows)

	playAllBtn := ttwidget.NewButtonWithIcon("Play All", theme.MediaSkipNextIcon(), a.playAll)
	playAllBtn.SetToolTip("Play every entry in order")

	testBtn := ttwidget.NewButtonWithIcon("Start Test", theme.ConfirmIcon(), a.startTest)
	testBtn.SetToolTip("Test yourself on this list")

	exportBtn := ttwidget.NewButtonWithIcon("Export", theme.UploadIcon(), func() {
		a.onExportToAnki(s)
	})
	exportBtn.SetToolTip("Export as Anki deck")

	newBtn := ttwidget.NewButtonWithIcon("New Concept", theme.ContentAddIcon(), a.newConcept)
	newBtn.SetToolTip("Discard this list and start over")

	if playing {
		playAllBtn.Disable()
		testBtn.Disable()
		exportBtn.Disable()
		newBtn.Disable()
	}

	actions := container.NewHBox(playAllBtn, testBtn, exportBtn, newBtn)

	header := widget.NewLabel(fmt.Sprintf("%q (%s, %s)",
		s.Params.Concept, s.Params.Language.DisplayName(), s.Params.Difficulty.DisplayName()))
	header.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewBorder(
		container.NewVBox(header, actions, widget.NewSeparator()),
		nil, nil, nil,
		scroll,
	)
}

// buildTestingScreen renders one answer entry per word, prompting for
// the target term given the source term.
func (a *Application) buildTestingScreen(s *session.Session) fyne.CanvasObject {
	rows := container.NewVBox()
	for i, item := range s.List {
		index := i
		answer := newEscapeEntry(a.window)
		answer.SetPlaceHolder("Translation...")
		if prev, ok := s.Answers[index]; ok {
			answer.SetText(prev)
		}
		answer.OnChanged = func(text string) {
			if err := a.ctrl.SubmitAnswer(index, text); err != nil {
				a.log.Warn("failed to record answer", zap.Int("index", index), zap.Error(err))
			}
		}

		prompt := widget.NewLabel(fmt.Sprintf("%2d. %s", i+1, item.Source))
		rows.Add(container.NewBorder(nil, nil, prompt, nil, answer))
	}

	scroll := container.NewScroll(rows)

	finishBtn := ttwidget.NewButtonWithIcon("Finish Test", theme.ConfirmIcon(), a.finishTest)
	finishBtn.Importance = widget.HighImportance
	finishBtn.SetToolTip("Grade your answers")

	header := widget.NewLabel(fmt.Sprintf("Type the %s translation for each word",
		s.Params.Language.DisplayName()))
	header.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		finishBtn,
		nil, nil,
		scroll,
	)
}

func (a *Application) playOne(index int) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.ctrl.Play(a.ctx, index); err != nil {
			a.log.Warn("playback rejected", zap.Int("index", index), zap.Error(err))
		}
	}()
}

func (a *Application) playAll() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.ctrl.PlayAll(a.ctx); err != nil {
			a.log.Warn("playback rejected", zap.Error(err))
		}
	}()
}

func (a *Application) startTest() {
	if err := a.ctrl.StartTest(); err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *Application) finishTest() {
	report, err := a.ctrl.FinishTest()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.showTestReport(report)
}

func (a *Application) newConcept() {
	dialog.ShowConfirm("New Concept", "Discard the current word list?", func(ok bool) {
		if !ok {
			return
		}
		if err := a.ctrl.Reset(); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

// showTestReport presents the graded answers with the final score
func (a *Application) showTestReport(report session.TestReport) {
	rows := container.NewVBox()
	for _, r := range report.Results {
		var line string
		if r.Correct {
			line = fmt.Sprintf("✓ %s — %s", r.Item.Source, r.Item.Target)
		} else if r.Answer == "" {
			line = fmt.Sprintf("✗ %s — %s (no answer)", r.Item.Source, r.Item.Target)
		} else {
			line = fmt.Sprintf("✗ %s — %s (you wrote %q)", r.Item.Source, r.Item.Target, r.Answer)
		}
		rows.Add(widget.NewLabel(line))
	}

	scroll := container.NewScroll(rows)
	scroll.SetMinSize(fyne.NewSize(450, 300))

	score := widget.NewLabel(fmt.Sprintf("Score: %d/%d", report.Score, report.Total))
	score.TextStyle = fyne.TextStyle{Bold: true}
	score.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(score, nil, nil, nil, scroll)
	dialog.NewCustom("Test Results", "Close", content, a.window).Show()
}

// onExportToAnki asks for a deck name and target file, then writes an
// .apkg package for the current list.
func (a *Application) onExportToAnki(s *session.Session) {
	if len(s.List) == 0 {
		dialog.ShowInformation("No Words", "Generate a word list first.", a.window)
		return
	}

	deckNameEntry := widget.NewEntry()
	deckNameEntry.SetText(s.Params.Concept)

	form := container.NewVBox(
		widget.NewLabel("Deck Name:"),
		deckNameEntry,
	)

	dialog.NewCustomConfirm("Export to Anki", "Export", "Cancel", form, func(export bool) {
		if !export {
			return
		}

		deckName := deckNameEntry.Text
		if deckName == "" {
			deckName = "LearnLanguage Vocabulary"
		}

		saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()

			gen := anki.NewGenerator(nil)
			gen.AddWordList(s.List)
			if err := gen.GenerateAPKG(path, deckName); err != nil {
				dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
				return
			}

			a.log.Info("exported Anki deck",
				zap.String("path", path), zap.Int("cards", len(s.List)))
			a.setStatus("Exported " + filepath.Base(path))
		}, a.window)
		saveDialog.SetFileName(internal.SanitizeFilename(deckName) + ".apkg")
		saveDialog.Show()
	}, a.window).Show()
}

// itemLabel formats one word list row for display
func itemLabel(index int, item vocab.WordItem) string {
	label := fmt.Sprintf("%2d. %s — %s", index+1, item.Source, item.Target)
	if item.Phonetic != "" {
		label += " [" + item.Phonetic + "]"
	}
	return label
}
