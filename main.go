package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"rps/console"
	"rps/gamemaster"
	"rps/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Game text owns stdout; logs go to stderr.
	log.Logger = newLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdin, os.Stdout, console.WithPace(meta.PACE))
	stop()
	os.Exit(code)
}

// newLogger writes human-readable logs at meta.LOG_LEVEL and above.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger().
		Level(meta.LOG_LEVEL)
}

// run plays a full session and returns the process exit code.
func run(ctx context.Context, in io.Reader, out io.Writer, options ...console.Option) int {
	term := console.New(in, out, options...)
	defer term.Close()
	session := gamemaster.NewSession(term)

	err := session.Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "\n\nProgram interrupted.")
		return 1
	default:
		log.Error().Err(err).Msg("game aborted")
		fmt.Fprintln(out, err)
		return 1
	}
}
