package types

// ConfirmationRequest represents a request for a yes/no decision from the user
// or from an automated policy
type ConfirmationRequest struct {
	// ID is a stable identifier for the kind of decision requested
	ID string

	// Title is a brief, user-friendly title describing what needs confirmation
	Title string

	// Description is the full prompt text shown to the user
	Description string

	// Items lists specific entries the decision relates to
	Items []string

	// Default indicates the default response if user just presses enter
	// true = default to "yes", false = default to "no"
	Default bool
}

// Confirmer answers confirmation requests. Implementations may block on user
// input or apply a fixed policy.
type Confirmer interface {
	Confirm(req ConfirmationRequest) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface
type ConfirmerFunc func(req ConfirmationRequest) (bool, error)

// Confirm calls f(req)
func (f ConfirmerFunc) Confirm(req ConfirmationRequest) (bool, error) {
	return f(req)
}
