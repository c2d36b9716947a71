// Package display turns store state into view models the renderers in
// pkg/ui can print, independent of output format.
package display

// Setting is one row of a listing
type Setting struct {
	Name string `json:"name"`
	// Value is the effective value readers get
	Value interface{} `json:"value"`
	// Stored is the storage representation, what the settings file holds
	Stored   interface{} `json:"stored"`
	Default  interface{} `json:"default"`
	Modified bool        `json:"modified"`
	Options  []Option    `json:"options,omitempty"`
}

// Option is one legal value of a setting
type Option struct {
	Index   int         `json:"index"`
	Key     interface{} `json:"key"`
	Value   interface{} `json:"value"`
	Current bool        `json:"current"`
}

// Listing is the output of the list and describe commands
type Listing struct {
	File     string    `json:"file,omitempty"`
	Settings []Setting `json:"settings"`
}

// Value is the output of get
type Value struct {
	Name    string      `json:"name"`
	Value   interface{} `json:"value"`
	Literal bool        `json:"literal"`
}

// OptionList is the output of options
type OptionList struct {
	Name    string      `json:"name"`
	Literal bool        `json:"literal"`
	Options []Option    `json:"options"`
	Current interface{} `json:"current"`
}

// Description is a listing rendered as a markdown document
type Description struct {
	Listing  *Listing `json:"listing"`
	Markdown string   `json:"-"`
}
