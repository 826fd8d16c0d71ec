package cli

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards writes from the animation goroutine against reads
// from the test.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var buf syncBuffer
	s := startSpinner(context.Background(), &buf, "Rendering...")
	time.Sleep(4 * spinnerInterval)
	s.stop()
	s.stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering...") {
		t.Errorf("spinner output %q should contain the label", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should finish by clearing its line, got %q", out)
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf syncBuffer
	s := startSpinner(ctx, &buf, "x")
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after its context ended")
	}
	s.stop()
}

func TestWithSpinner(t *testing.T) {
	boom := errors.New("boom")
	var buf syncBuffer
	if err := withSpinner(context.Background(), &buf, "x", func() error { return boom }); err != boom {
		t.Errorf("withSpinner returned %v, want fn's error", err)
	}

	ran := false
	if err := withSpinner(context.Background(), nil, "x", func() error { ran = true; return nil }); err != nil || !ran {
		t.Errorf("withSpinner(nil writer) = %v, ran %v", err, ran)
	}
}
