// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/optset/pkg/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Listing:
		return r.renderListing(v)
	case *display.Value:
		_, err := fmt.Fprintln(r.output, display.Format(v.Value))
		return err
	case *display.OptionList:
		return r.renderOptions(v.Options, v.Literal, "")
	case *display.Description:
		_, err := fmt.Fprint(r.output, v.Markdown)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderListing(l *display.Listing) error {
	for _, s := range l.Settings {
		line := fmt.Sprintf("%s = %s", s.Name, display.Format(s.Value))
		if s.Modified {
			line += " (modified)"
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
		if err := r.renderOptions(s.Options, false, "  "); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderOptions(opts []display.Option, literal bool, indent string) error {
	for _, opt := range opts {
		marker := " "
		if opt.Current {
			marker = "*"
		}

		line := fmt.Sprintf("%s%s [%d] %s", indent, marker, opt.Index, display.Format(opt.Key))
		if !literal && display.Format(opt.Key) != display.Format(opt.Value) {
			line += " => " + display.Format(opt.Value)
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
