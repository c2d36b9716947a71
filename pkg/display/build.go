package display

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/optset/pkg/types"
)

// Source is the read side of a settings store
type Source interface {
	Names() []string
	Get(name string) (interface{}, error)
	GetLiteral(name string) (interface{}, error)
	Default(name string) (interface{}, error)
	Options(name string) ([]types.Option, error)
	IndexOf(name string, value interface{}) (int, error)
	Path() string
}

// NewListing builds a listing of every setting, sorted by name
func NewListing(src Source, withOptions bool) (*Listing, error) {
	names := src.Names()
	listing := &Listing{
		File:     src.Path(),
		Settings: make([]Setting, 0, len(names)),
	}

	for _, name := range names {
		setting, err := newSetting(src, name, withOptions)
		if err != nil {
			return nil, err
		}
		listing.Settings = append(listing.Settings, setting)
	}

	return listing, nil
}

func newSetting(src Source, name string, withOptions bool) (Setting, error) {
	value, err := src.Get(name)
	if err != nil {
		return Setting{}, err
	}
	stored, err := src.GetLiteral(name)
	if err != nil {
		return Setting{}, err
	}
	def, err := src.Default(name)
	if err != nil {
		return Setting{}, err
	}
	current, err := src.IndexOf(name, stored)
	if err != nil {
		return Setting{}, err
	}
	initial, err := src.IndexOf(name, def)
	if err != nil {
		return Setting{}, err
	}

	setting := Setting{
		Name:     name,
		Value:    printable(value),
		Stored:   stored,
		Default:  def,
		Modified: current != initial,
	}

	if withOptions {
		opts, err := src.Options(name)
		if err != nil {
			return Setting{}, err
		}
		setting.Options = newOptions(opts, current)
	}

	return setting, nil
}

// NewOptionList builds the options view of one setting
func NewOptionList(src Source, name string, literal bool) (*OptionList, error) {
	opts, err := src.Options(name)
	if err != nil {
		return nil, err
	}
	stored, err := src.GetLiteral(name)
	if err != nil {
		return nil, err
	}
	index, err := src.IndexOf(name, stored)
	if err != nil {
		return nil, err
	}

	current := stored
	if !literal {
		if current, err = src.Get(name); err != nil {
			return nil, err
		}
	}

	return &OptionList{
		Name:    name,
		Literal: literal,
		Options: newOptions(opts, index),
		Current: printable(current),
	}, nil
}

// newOptions builds option views, marking the one at index current
func newOptions(opts []types.Option, current int) []Option {
	views := make([]Option, len(opts))
	for i, opt := range opts {
		views[i] = Option{
			Index:   i,
			Key:     opt.Key(),
			Value:   printable(opt.Value()),
			Current: i == current,
		}
	}
	return views
}

// printable replaces values that cannot be shown or encoded, such as
// functions, with a type placeholder
func printable(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("<%T>", v)
	}
	return v
}

// Format renders a value for text output
func Format(v interface{}) string {
	return fmt.Sprint(printable(v))
}
