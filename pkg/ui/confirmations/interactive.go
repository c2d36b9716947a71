package confirmations

import (
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/pterm/pterm"
)

// InteractiveDialog asks with pterm's interactive confirm prompt. It needs
// a terminal on stdin.
type InteractiveDialog struct{}

// NewInteractiveDialog creates an interactive dialog
func NewInteractiveDialog() *InteractiveDialog {
	return &InteractiveDialog{}
}

// Confirm shows the request as a pterm confirm prompt
func (d *InteractiveDialog) Confirm(req types.ConfirmationRequest) (bool, error) {
	if req.Title != "" {
		pterm.Warning.Println(req.Title)
	}
	if len(req.Items) > 0 {
		pterm.Println(pterm.Gray(strings.Join(req.Items, "\n")))
	}

	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(req.Default).
		WithDefaultText(req.Description).
		Show()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, "confirmation prompt failed")
	}
	return answer, nil
}
