// Package style holds the lipgloss styles used for terminal output.
//
// Styles are declared in the embedded styles.yaml under semantic names
// (Name, Value, Modified...) and built with adaptive colors so they work on
// light and dark terminals alike.
package style
