// Package schema turns schema documents into types.Schema values.
//
// A schema document is a table of settings. Each setting is a table with a
// default and a list of options:
//
//	[volume]
//	default = 5
//	options = [0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
//
//	[img_size]
//	default = "large"
//	options = [{large = "1920x1080"}, {small = "640x360"}]
//
// An option written as a one-key table is an indirect option: the key is
// stored, the value is what the setting resolves to. Tables that hold neither
// default nor options group settings, producing dotted names ("ui.theme").
//
// Documents may be TOML, YAML or JSON; LoadFile picks the parser from the
// file extension.
package schema
