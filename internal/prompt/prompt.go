// Package prompt reads line-oriented answers from a terminal.
//
// A blank answer is the user's way of backing out, so every read that can be
// blank returns ErrCancelled and callers decide how far to unwind.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cleared-dev/billmgr/internal/logging"
)

// ErrCancelled is returned when the user answers a prompt with a blank line
// or input ends.
var ErrCancelled = errors.New("input cancelled")

const (
	retryReadMessage   = "Please enter your data again!"
	retryAmountMessage = "Please enter a number"
	amountLabel        = "Amount:"
)

// Prompter writes prompts to out and reads answers from in.
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	log        *slog.Logger
	maxRetries int
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithLogger sets the logger used for read failures and rejected input.
func WithLogger(log *slog.Logger) Option {
	return func(p *Prompter) { p.log = log }
}

// WithMaxReadRetries caps how many consecutive read failures Line tolerates.
// Zero, the default, retries forever.
func WithMaxReadRetries(n int) Option {
	return func(p *Prompter) { p.maxRetries = n }
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Println writes a line to the prompt output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Ask prints label on its own line and reads the answer.
func (p *Prompter) Ask(label string) (string, error) {
	p.Println(label)
	return p.Line()
}

// Line reads one line and returns it trimmed of surrounding whitespace.
// Read failures are retried after telling the user to try again; text read
// before a failure is kept. End of input counts as a blank line.
func (p *Prompter) Line() (string, error) {
	var buf strings.Builder
	failures := 0
	for {
		line, err := p.in.ReadString('\n')
		buf.WriteString(line)
		if err == nil || errors.Is(err, io.EOF) {
			text := strings.TrimSpace(buf.String())
			if text == "" {
				return "", ErrCancelled
			}
			return text, nil
		}

		failures++
		p.log.Warn("reading input failed", "error", err, "attempt", failures)
		if p.maxRetries > 0 && failures > p.maxRetries {
			return "", fmt.Errorf("reading input after %d attempts: %w", failures, err)
		}
		p.Println(retryReadMessage)
	}
}

// Amount prompts for a number and keeps asking until the answer parses as a
// float or the user cancels. Out-of-range input becomes ±Inf.
func (p *Prompter) Amount() (float64, error) {
	p.Println(amountLabel)
	for {
		text, err := p.Line()
		if err != nil {
			return 0, err
		}

		amount, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			p.log.Debug("rejected amount", "input", text)
			p.Println(retryAmountMessage)
			continue
		}
		return amount, nil
	}
}
