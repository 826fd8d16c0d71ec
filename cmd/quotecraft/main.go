// Command quotecraft renders quotes onto backgrounds and saves them as JPEGs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/quotecraft/internal/cli"
	qerrors "github.com/matzehuels/quotecraft/pkg/errors"
)

// exitInterrupted is the shell convention for a command stopped by SIGINT.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// After the first signal, a second one gets the default behavior
		// and kills the process.
		<-ctx.Done()
		stop()
	}()
	code := run(ctx, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stderr io.Writer) int {
	root := cli.New(stderr, cli.LogInfo).RootCommand()
	root.SilenceErrors = true

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		fmt.Fprintln(stderr, "Error:", qerrors.UserMessage(err))
		return qerrors.ExitCode(err)
	}
}
