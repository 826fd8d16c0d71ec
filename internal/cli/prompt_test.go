package cli

import (
	"bytes"
	stderrors "errors"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/palette"
)

func TestPrompterAsk(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("sunset\r\nlast"), &out)

	got, err := p.ask(ctx, "Choose Background : ")
	if err != nil || got != "sunset" {
		t.Fatalf("ask = %q, %v", got, err)
	}
	// A final line without a newline is still returned.
	if got, err = p.ask(ctx, "Quote : "); err != nil || got != "last" {
		t.Fatalf("ask = %q, %v", got, err)
	}
	if _, err = p.ask(ctx, "Quote : "); err != io.EOF {
		t.Fatalf("ask at end of input err = %v, want io.EOF", err)
	}
	if !strings.HasPrefix(out.String(), "Choose Background : Quote : ") {
		t.Errorf("prompts = %q", out.String())
	}
}

func TestPrompterLines(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("one\n\nthree\n"), &out)

	got, err := p.lines(ctx, 3)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "", "three"}, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if want := "0 line : 1 line : 2 line : "; out.String() != want {
		t.Errorf("prompts = %q, want %q", out.String(), want)
	}
}

func TestPrompterColor(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		input   string
		want    string
		retries int
	}{
		{"named", "gold\n", "gold", 0},
		{"hex", "#ff8800\n", "#ff8800", 0},
		{"default on empty", "\n", "white", 0},
		{"auto", "AUTO\n", palette.Auto, 0},
		{"retry until valid", "purple-ish\n#zzz\nblack\n", "black", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)

			got, err := p.color(ctx, palette.Default(), "white")
			if err != nil {
				t.Fatalf("color: %v", err)
			}
			if got != tt.want {
				t.Errorf("color = %q, want %q", got, tt.want)
			}
			if n := strings.Count(out.String(), "Invalid color. Please try again."); n != tt.retries {
				t.Errorf("retry messages = %d, want %d", n, tt.retries)
			}
		})
	}
}

func TestPrompterColorClosedInput(t *testing.T) {
	ctx := context.Background()
	p := newPrompter(strings.NewReader("nope\n"), io.Discard)
	if _, err := p.color(ctx, palette.Default(), "white"); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestPrompterConfirm(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		p := newPrompter(strings.NewReader(tt.input), io.Discard)
		got, err := p.confirm(ctx, "Would you like to run again? (y/n) ")
		if err != nil {
			t.Fatalf("confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClosedInput(t *testing.T) {
	if err := closedInput(io.EOF, "a quote"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("closedInput(EOF) = %v, want INVALID_INPUT", err)
	}
	other := errors.New(errors.ErrCodeInternal, "boom")
	if err := closedInput(other, "a quote"); err != other {
		t.Errorf("closedInput should pass other errors through, got %v", err)
	}
}

func TestPrompterAskCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := newPrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.ask(ctx, "Quote : ")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("ask err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("ask kept waiting for input after cancellation")
	}

	// The line typed after the cancelled ask goes to the next one.
	go func() { _, _ = io.WriteString(w, "later\n") }()
	got, err := p.ask(context.Background(), "Quote : ")
	if err != nil || got != "later" {
		t.Errorf("ask after cancel = %q, %v; want later", got, err)
	}
}

func TestCreateCancelledAtPrompt(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	r, w := io.Pipe()
	defer w.Close()
	c := New(io.Discard, LogInfo)
	c.In = r
	c.Out = io.Discard
	root := c.RootCommand()
	root.SetArgs([]string{"-i", "-b", "black", "--out-dir", t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !stderrors.Is(err, context.Canceled) {
			t.Errorf("create err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("create kept waiting at the quote prompt after cancellation")
	}
}
