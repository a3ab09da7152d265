package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// SpinnerStatusSink shows a spinner while a submission is in flight and prints each status line
type SpinnerStatusSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	started time.Time
	last    string
}

// NewSpinnerStatusSink creates a new spinner-based status sink
func NewSpinnerStatusSink(out io.Writer) *SpinnerStatusSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerStatusSink{
		out:     out,
		spinner: s,
	}
}

// Start begins the spinner with a message
func (r *SpinnerStatusSink) Start(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started = time.Now()
	r.spinner.Suffix = " " + message
	r.spinner.Start()
}

// Update prints a status line above the spinner
func (r *SpinnerStatusSink) Update(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if text == r.last {
		return
	}
	r.last = text

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	statusColor(text).Fprintln(r.out, "  "+text)

	if wasActive {
		r.spinner.Suffix = " " + text
		r.spinner.Start()
	}
}

// Stop halts the spinner and prints the final status
func (r *SpinnerStatusSink) Stop(final string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.spinner.Active() {
		r.spinner.Stop()
	}

	duration := time.Since(r.started).Round(time.Millisecond)
	icon := color.New(color.FgGreen).Sprint("✓")
	if domain.IsFailureStatus(final) {
		icon = color.New(color.FgRed).Sprint("✗")
	}
	fmt.Fprintf(r.out, "%s %s (%s)\n", icon, final, duration)
}

func statusColor(text string) *color.Color {
	switch {
	case domain.IsFailureStatus(text):
		return color.New(color.FgRed)
	case strings.HasPrefix(text, "Finalized"), strings.HasPrefix(text, "Result"):
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgYellow)
	}
}

// Ensure SpinnerStatusSink implements StatusSink
var _ usecase.StatusSink = (*SpinnerStatusSink)(nil)
