package gui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// maxLogMessages bounds the in-memory log buffer
const maxLogMessages = 500

// LogViewer is a widget that shows captured process output inside the
// window, newest messages first. Generation and synthesis run against
// remote APIs, so having the log at hand helps diagnose failures
// without a terminal.
type LogViewer struct {
	widget.BaseWidget

	content    *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu       sync.Mutex
	messages []string

	origStdout *os.File
	origStderr *os.File
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 140))
	v.scrollView.Direction = container.ScrollBoth

	v.content = container.NewBorder(nil, nil, nil, nil, v.scrollView)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.content)
}

// CaptureOutput redirects stdout and stderr into the viewer while
// still echoing to the original streams.
func (v *LogViewer) CaptureOutput() {
	v.origStdout = os.Stdout
	v.origStderr = os.Stderr

	os.Stdout = v.capture(v.origStdout)
	os.Stderr = v.capture(v.origStderr)
	log.SetOutput(os.Stderr)
}

// capture returns the write end of a pipe whose reader feeds the
// viewer and echoes to orig.
func (v *LogViewer) capture(orig *os.File) *os.File {
	r, w, err := os.Pipe()
	if err != nil {
		return orig
	}

	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				orig.Write(buf[:n])
				for _, line := range strings.Split(strings.TrimRight(string(buf[:n]), "\n"), "\n") {
					if line != "" {
						v.AddMessage(line)
					}
				}
			}
			if err != nil {
				return
			}
		}
	}()

	return w
}

// StopCapture restores the original stdout and stderr
func (v *LogViewer) StopCapture() {
	if v.origStdout != nil {
		os.Stdout = v.origStdout
		v.origStdout = nil
	}
	if v.origStderr != nil {
		os.Stderr = v.origStderr
		v.origStderr = nil
	}
	log.SetOutput(os.Stderr)
}

// AddMessage prepends a timestamped message to the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message)
	v.messages = append([]string{stamped}, v.messages...)
	if len(v.messages) > maxLogMessages {
		v.messages = v.messages[:maxLogMessages]
	}
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText(text)
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

// Clear discards all captured messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.messages = v.messages[:0]
	v.mu.Unlock()

	fyne.Do(func() {
		v.logEntry.SetText("")
		v.scrollView.Refresh()
	})
}
