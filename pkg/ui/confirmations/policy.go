package confirmations

import (
	"io"
	"os"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/arthur-debert/optset/pkg/ui"
)

// Policy names, matching the on_conflict configuration key
const (
	PolicyPrompt = "prompt"
	PolicyReset  = "reset"
	PolicyKeep   = "keep"
)

// Always answers every request with yes
func Always() types.Confirmer {
	return fixed(true)
}

// Never answers every request with no
func Never() types.Confirmer {
	return fixed(false)
}

func fixed(answer bool) types.Confirmer {
	logger := logging.GetLogger("confirmations")
	return types.ConfirmerFunc(func(req types.ConfirmationRequest) (bool, error) {
		logger.Info().
			Str("id", req.ID).
			Strs("items", req.Items).
			Bool("answer", answer).
			Msg("Answered by policy")
		return answer, nil
	})
}

// FromPolicy returns the confirmer for an on_conflict policy. The prompt
// policy uses the interactive dialog when in is a terminal and the console
// dialog otherwise.
func FromPolicy(policy string, in io.Reader, out io.Writer) (types.Confirmer, error) {
	switch policy {
	case PolicyReset:
		return Always(), nil
	case PolicyKeep:
		return Never(), nil
	case PolicyPrompt, "":
		if file, ok := in.(*os.File); ok && ui.IsTerminal(file) {
			return NewInteractiveDialog(), nil
		}
		if in == nil {
			in = eofReader{}
		}
		if out == nil {
			out = io.Discard
		}
		return NewConsoleDialog(in, out), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unknown conflict policy %q, use prompt, reset or keep", policy).
			WithDetail(errors.DetailValue, policy)
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
