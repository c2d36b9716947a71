package confirmations

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/types"
)

// ConsoleDialog asks yes/no questions over a plain reader and writer. It
// works without a terminal, so it is used when input is piped.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a console dialog reading answers from in
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm shows the request and reads answers until one is understood. An
// empty answer takes the request default; end of input counts as no.
func (d *ConsoleDialog) Confirm(req types.ConfirmationRequest) (bool, error) {
	if req.Title != "" {
		if _, err := fmt.Fprintf(d.out, "\n%s\n", req.Title); err != nil {
			return false, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
		}
	}
	for _, item := range req.Items {
		if _, err := fmt.Fprintf(d.out, "  └── %s\n", item); err != nil {
			return false, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
		}
	}

	marker := "[y/N]"
	if req.Default {
		marker = "[Y/n]"
	}

	for {
		if _, err := fmt.Fprintf(d.out, "%s %s: ", req.Description, marker); err != nil {
			return false, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
		}

		line, err := d.in.ReadString('\n')
		if err != nil && !stderrors.Is(err, io.EOF) {
			return false, errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
		}
		eof := err != nil

		answer, ok := parseAnswer(line, req.Default)
		if ok && !(eof && strings.TrimSpace(line) == "") {
			return answer, nil
		}
		if eof {
			_, _ = fmt.Fprintln(d.out)
			return false, nil
		}
		if _, err := fmt.Fprintln(d.out, "Please answer y or n."); err != nil {
			return false, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
		}
	}
}

// parseAnswer reports the answer in line and whether it was understood
func parseAnswer(line string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
