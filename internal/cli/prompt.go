package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/quotecraft/pkg/errors"
	"github.com/matzehuels/quotecraft/pkg/palette"
)

// prompter asks line-oriented questions on a reader/writer pair.
type prompter struct {
	r *bufio.Reader
	w io.Writer

	// pending holds a read that outlived a cancelled ask; the next ask
	// takes its line instead of starting another read.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(r), w: w}
}

// readLine waits for the next input line or for ctx to end, whichever
// comes first. Reads block in a goroutine so Ctrl+C is not held up by a
// terminal waiting for Enter.
func (p *prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := p.r.ReadString('\n')
			ch <- readResult{line, err}
		}()
		p.pending = ch
	}
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.w)
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		return res.line, res.err
	}
}

// ask prints label and reads one line without its line ending. A closed
// input with nothing typed returns io.EOF; a cancelled ctx returns its
// error.
func (p *prompter) ask(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.readLine(ctx)
	if err == io.EOF && line == "" {
		fmt.Fprintln(p.w)
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// lines asks for n lines labeled "0 line : ", "1 line : ", and so on.
func (p *prompter) lines(ctx context.Context, n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := range n {
		l, err := p.ask(ctx, fmt.Sprintf("%d line : ", i))
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// color asks for a text color until it gets a valid one. An empty answer
// returns def. The result is either a parsed color name or "auto".
func (p *prompter) color(ctx context.Context, pal *palette.Palette, def string) (string, error) {
	label := fmt.Sprintf("Enter text color (%s, auto or #rrggbb) [%s]: ",
		strings.Join(pal.Names(), ", "), def)
	for {
		s, err := p.ask(ctx, label)
		if err != nil {
			return "", err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			s = def
		}
		if palette.IsAuto(s) {
			return palette.Auto, nil
		}
		if _, err := pal.Parse(s); err == nil {
			return s, nil
		}
		fmt.Fprintln(p.w, "Invalid color. Please try again.")
	}
}

// confirm asks a yes/no question. Only "y" (any case) is a yes; a closed
// input is a no.
func (p *prompter) confirm(ctx context.Context, label string) (bool, error) {
	s, err := p.ask(ctx, label)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(s), "y"), nil
}

// closedInput converts io.EOF from a prompt into a user-facing error.
func closedInput(err error, what string) error {
	if err == io.EOF {
		return errors.New(errors.ErrCodeInvalidInput, "input closed while waiting for %s", what)
	}
	return err
}
