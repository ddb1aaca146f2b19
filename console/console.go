// Package console is the terminal side of the game: styled output, pacing
// and prompts that insist on one of a set of answers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Kind selects how a message is styled.
type Kind int

const (
	None Kind = iota
	Info
	Success
	Error
)

var kindColors = map[Kind]lipgloss.Color{
	None:    lipgloss.Color("#AD7FE8"), // purple
	Info:    lipgloss.Color("#2CD7C7"), // cyan
	Success: lipgloss.Color("#5FD75F"), // green
	Error:   lipgloss.Color("#E74C3C"), // red
}

// Option configures a Terminal.
type Option func(t *Terminal)

// WithPace pauses for d after every displayed message.
func WithPace(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.pace = d
		}
	}
}

// line is one read from the input. err is set once reading stops.
type line struct {
	text string
	err  error
}

// Terminal reads answers from in and writes styled messages to out.
// The first prompt starts a goroutine that reads in line by line; Close
// releases it once it has a line to hand over or in is exhausted.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	pace   time.Duration
	styles map[Kind]lipgloss.Style

	once  sync.Once
	lines chan line
	done  chan struct{}
	stop  sync.Once
}

// New creates a Terminal over the given input and output.
func New(in io.Reader, out io.Writer, options ...Option) *Terminal {
	renderer := lipgloss.NewRenderer(out)
	t := &Terminal{
		in:     in,
		out:    out,
		styles: make(map[Kind]lipgloss.Style, len(kindColors)),
		lines:  make(chan line),
		done:   make(chan struct{}),
	}
	for kind, color := range kindColors {
		t.styles[kind] = renderer.NewStyle().Foreground(color)
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Close stops the input reader. Prompts after Close fail.
func (t *Terminal) Close() {
	t.stop.Do(func() { close(t.done) })
}

// Display prints message in the style of kind, then waits out the pace.
func (t *Terminal) Display(ctx context.Context, message string, kind Kind) error {
	if _, err := fmt.Fprintln(t.out, t.render(message, kind)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return t.wait(ctx)
}

// render styles each line on its own so blank lines stay blank.
func (t *Terminal) render(message string, kind Kind) string {
	style, ok := t.styles[kind]
	if !ok {
		style = t.styles[None]
	}
	parts := strings.Split(message, "\n")
	for i, part := range parts {
		if part != "" {
			parts[i] = style.Render(part)
		}
	}
	return strings.Join(parts, "\n")
}

func (t *Terminal) wait(ctx context.Context) error {
	if t.pace <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(t.pace):
		return nil
	}
}

// PromptChoice asks until the lowercased answer is one of allowed. An empty
// allowed list accepts anything.
func (t *Terminal) PromptChoice(ctx context.Context, prompt string, allowed []string) (string, error) {
	t.once.Do(func() { go t.readLines() })

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := fmt.Fprint(t.out, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		var response string
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.done:
			return "", fmt.Errorf("terminal closed at %q: %w", strings.TrimSpace(prompt), io.EOF)
		case l, ok := <-t.lines:
			if !ok {
				return "", fmt.Errorf("input closed at %q: %w", strings.TrimSpace(prompt), io.EOF)
			}
			if l.err != nil {
				return "", fmt.Errorf("failed to read answer to %q: %w", strings.TrimSpace(prompt), l.err)
			}
			response = strings.ToLower(strings.TrimSpace(l.text))
		}

		if len(allowed) == 0 || slices.Contains(allowed, response) {
			return response, nil
		}
		log.Debug().Str("response", response).Strs("allowed", allowed).Msg("rejected answer")
		if err := t.Display(ctx, fmt.Sprintf("%s is invalid, try again.", response), Error); err != nil {
			return "", err
		}
	}
}

// readLines feeds the prompt loop so a blocked read never hides a cancellation.
// Lines have no length limit.
func (t *Terminal) readLines() {
	defer close(t.lines)
	reader := bufio.NewReader(t.in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" && !t.send(line{text: strings.TrimRight(text, "\r\n")}) {
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to read input")
			t.send(line{err: err})
			return
		}
	}
}

func (t *Terminal) send(l line) bool {
	select {
	case t.lines <- l:
		return true
	case <-t.done:
		return false
	}
}
