package types

import "sort"

// Definition declares one setting: its default storage value and the
// ordered list of legal options.
type Definition struct {
	// Default must equal a plain option or an indirect option's key
	Default interface{}

	// Options lists the legal values in lookup order
	Options []Option
}

// Schema maps setting names to their definitions
type Schema map[string]Definition

// Names returns the setting names in sorted order
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
