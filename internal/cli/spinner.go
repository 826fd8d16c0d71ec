package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner redraws a one-line progress indicator on w until halted or until
// its context ends. Only the animation goroutine writes to w.
type spinner struct {
	w     io.Writer
	label string
	halt  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func startSpinner(ctx context.Context, w io.Writer, label string) *spinner {
	s := &spinner{w: w, label: label, halt: make(chan struct{}), done: make(chan struct{})}
	go s.animate(ctx)
	return s
}

func (s *spinner) animate(ctx context.Context) {
	defer close(s.done)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
		case <-s.halt:
		case <-tick.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(glyph), StyleDim.Render(s.label))
			continue
		}
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+4))
		return
	}
}

// stop ends the animation and waits for the line to be cleared. It may be
// called more than once.
func (s *spinner) stop() {
	s.once.Do(func() { close(s.halt) })
	<-s.done
}

// withSpinner runs fn while a spinner labelled label animates on w. A nil w
// runs fn with no animation, which is what non-terminal stderr gets.
func withSpinner(ctx context.Context, w io.Writer, label string, fn func() error) error {
	if w == nil {
		return fn()
	}
	s := startSpinner(ctx, w, label)
	defer s.stop()
	return fn()
}
