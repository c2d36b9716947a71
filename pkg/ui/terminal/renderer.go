// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/optset/pkg/display"
	"github.com/arthur-debert/optset/pkg/style"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles, pterm
// tables and glamour for markdown
type Renderer struct {
	output io.Writer
	styles style.Registry
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{
		output: w,
		styles: style.Default(),
	}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Listing:
		return r.renderListing(v)
	case *display.Value:
		name := "Value"
		if v.Literal {
			name = "Literal"
		}
		_, err := fmt.Fprintln(r.output, r.styles.Render(name, display.Format(v.Value)))
		return err
	case *display.OptionList:
		return r.renderOptions(v)
	case *display.Description:
		return r.renderMarkdown(v.Markdown)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderListing(l *display.Listing) error {
	if len(l.Settings) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Render("Muted", "No settings defined"))
		return err
	}

	data := pterm.TableData{{"Setting", "Value", "Stored", "Default"}}
	for _, s := range l.Settings {
		value := r.styles.Render("Value", display.Format(s.Value))
		if s.Modified {
			value = r.styles.Render("Modified", display.Format(s.Value))
		}
		data = append(data, []string{
			r.styles.Render("Name", s.Name),
			value,
			r.styles.Render("Literal", display.Format(s.Stored)),
			r.styles.Render("Default", display.Format(s.Default)),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

func (r *Renderer) renderOptions(l *display.OptionList) error {
	if _, err := fmt.Fprintln(r.output, r.styles.Render("Header", l.Name)); err != nil {
		return err
	}

	for _, opt := range l.Options {
		text := fmt.Sprintf("[%d] %s", opt.Index, display.Format(opt.Key))
		if !l.Literal && display.Format(opt.Key) != display.Format(opt.Value) {
			text += " => " + display.Format(opt.Value)
		}

		name := "Option"
		if opt.Current {
			name = "Current"
			text += " (current)"
		}
		if _, err := fmt.Fprintln(r.output, r.styles.Render(name, text)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderMarkdown(md string) error {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		_, err = fmt.Fprint(r.output, md)
		return err
	}

	out, err := renderer.Render(md)
	if err != nil {
		// Fall back to the raw document
		out = md
	}
	_, err = fmt.Fprint(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "%s %v\n", r.styles.Render("Error", "Error:"), err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Render("Success", msg))
	return err
}
