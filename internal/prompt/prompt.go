// Package prompt asks the user to pick one of several numbered items.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
)

// CodeCancelled marks input that ended before a valid choice was made.
const CodeCancelled errors.ErrorCode = "CANCELLED"

var ErrCancelled = errors.New(CodeCancelled, "input cancelled")

type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	// interactive enables the cancellation hint after an invalid answer.
	interactive bool
}

func New(in io.Reader, out, errOut io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewScanner(in),
		out:         out,
		errOut:      errOut,
		interactive: interactive,
	}
}

// Choose prints title and the numbered items, then reads numbers until one in
// range is entered and returns its zero-based index. Invalid answers are
// reported on the error writer and the question is asked again. End of input
// returns ErrCancelled.
func (p *Prompter) Choose(title string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, errors.New(errors.CodeInvalidInput, "nothing to choose from")
	}

	fmt.Fprintln(p.out, title)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d: %s\n", i+1, item)
	}

	for {
		fmt.Fprintf(p.out, "Number (1-%d): ", len(items))

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return -1, errors.Wrap(err, errors.CodeInternal, "failed to read choice")
			}
			return -1, ErrCancelled
		}

		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		switch {
		case err != nil:
			fmt.Fprintln(p.errOut, "E: not a number")
		case n < 1 || n > len(items):
			fmt.Fprintln(p.errOut, "E: invalid number")
		default:
			return n - 1, nil
		}

		if p.interactive {
			fmt.Fprintln(p.out, "Press Ctrl+D to cancel")
		}
	}
}
