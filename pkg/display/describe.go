package display

import (
	"fmt"
	"strings"
)

// NewDescription builds the markdown document for a listing
func NewDescription(listing *Listing) *Description {
	return &Description{
		Listing:  listing,
		Markdown: Markdown(listing),
	}
}

// Markdown renders a listing as a markdown document, one section per
// setting with its option table
func Markdown(listing *Listing) string {
	var b strings.Builder

	b.WriteString("# Settings\n\n")
	if listing.File != "" {
		fmt.Fprintf(&b, "Stored in `%s`.\n\n", listing.File)
	} else {
		b.WriteString("Not stored in a file.\n\n")
	}

	if len(listing.Settings) == 0 {
		b.WriteString("No settings are defined.\n")
		return b.String()
	}

	for _, s := range listing.Settings {
		fmt.Fprintf(&b, "## %s\n\n", s.Name)
		fmt.Fprintf(&b, "- **value**: `%s`\n", Format(s.Value))
		fmt.Fprintf(&b, "- **default**: `%s`\n", Format(s.Default))
		if s.Modified {
			b.WriteString("- *modified*\n")
		}
		b.WriteString("\n")

		if len(s.Options) == 0 {
			continue
		}

		b.WriteString("| # | key | value | |\n")
		b.WriteString("|---|-----|-------|---|\n")
		for _, opt := range s.Options {
			marker := ""
			if opt.Current {
				marker = "current"
			}
			fmt.Fprintf(&b, "| %d | `%s` | `%s` | %s |\n",
				opt.Index, escapeCell(Format(opt.Key)), escapeCell(Format(opt.Value)), marker)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
