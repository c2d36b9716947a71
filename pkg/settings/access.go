package settings

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/types"
)

// Get returns the effective value of a setting: the resolved value when the
// stored key belongs to an indirect option, the stored value otherwise.
func (s *Store) Get(name string) (interface{}, error) {
	return s.get(name, false)
}

// GetLiteral returns the stored value of a setting verbatim
func (s *Store) GetLiteral(name string) (interface{}, error) {
	return s.get(name, true)
}

func (s *Store) get(name string, literal bool) (interface{}, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	if literal {
		return st.current, nil
	}

	for _, opt := range st.options {
		if opt.IsIndirect() && valuesEqual(opt.Key(), st.current) {
			return opt.Value(), nil
		}
	}

	return st.current, nil
}

// GetOption returns the option at index, resolved to its effective value.
// Negative indices count back from the last option.
func (s *Store) GetOption(name string, index int) (interface{}, error) {
	return s.getOption(name, index, false)
}

// GetOptionLiteral returns the storage key of the option at index
func (s *Store) GetOptionLiteral(name string, index int) (interface{}, error) {
	return s.getOption(name, index, true)
}

func (s *Store) getOption(name string, index int, literal bool) (interface{}, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	count := len(st.options)
	i := index
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return nil, errors.Newf(errors.ErrIndexOutOfRange,
			"setting %q has no option with index %d, valid indices are %d to %d", name, index, -count, count-1).
			WithDetail(errors.DetailSetting, name).
			WithDetail(errors.DetailIndex, index)
	}

	return st.options[i].Resolve(literal), nil
}

// Set stores value for the named setting. value must equal the storage key of
// one of the setting's options; the first matching option wins and its key is
// what gets stored. When a backing file is bound the whole store is written
// through. A write-through failure is returned but the new value stays in
// memory.
func (s *Store) Set(name string, value interface{}) error {
	st, err := s.lookup(name)
	if err != nil {
		return err
	}

	key, ok := st.find(value)
	if !ok {
		return invalidValue(st, value)
	}

	st.current = key
	s.logger.Debug().
		Str("setting", name).
		Interface("value", key).
		Msg("Setting updated")

	if s.path == "" {
		return nil
	}
	return s.Persist()
}

// ParseValue resolves a textual value, as typed on a command line, to the
// storage key of the option that formats to the same text. When a string key
// and another key format alike ("1" and 1), the bare text selects the other
// key and the Go-quoted text ("\"1\"") selects the string.
func (s *Store) ParseValue(name, raw string) (interface{}, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	var matches []interface{}
	for _, opt := range st.options {
		if fmt.Sprint(opt.Key()) == raw {
			matches = append(matches, opt.Key())
		}
	}

	switch len(matches) {
	case 0:
		if unquoted, err := strconv.Unquote(raw); err == nil {
			if key, ok := st.find(unquoted); ok {
				return key, nil
			}
		}
		return nil, invalidValue(st, raw)
	case 1:
		return matches[0], nil
	}

	for _, key := range matches {
		if _, ok := key.(string); !ok {
			return key, nil
		}
	}
	return matches[0], nil
}

func invalidValue(st *setting, value interface{}) *errors.Error {
	accepted := types.Keys(st.options)
	return errors.Newf(errors.ErrInvalidValue,
		"invalid value %v for %q, must be one of %v", value, st.name, accepted).
		WithDetail(errors.DetailSetting, st.name).
		WithDetail(errors.DetailValue, value).
		WithDetail(errors.DetailAccepted, accepted)
}

// Names returns every setting name in sorted order. An undefined store has none.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.settings))
	for name := range s.settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns a copy of the named setting's options
func (s *Store) Options(name string) ([]types.Option, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	options := make([]types.Option, len(st.options))
	copy(options, st.options)
	return options, nil
}

// Default returns the storage key the named setting starts with
func (s *Store) Default(name string) (interface{}, error) {
	st, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return st.defValue, nil
}

// IndexOf returns the index of the named setting's option whose key equals
// value, or -1 when none does. Keys compare the way Set compares them.
func (s *Store) IndexOf(name string, value interface{}) (int, error) {
	st, err := s.lookup(name)
	if err != nil {
		return -1, err
	}
	for i, opt := range st.options {
		if valuesEqual(opt.Key(), value) {
			return i, nil
		}
	}
	return -1, nil
}

// Snapshot returns every setting's stored value keyed by name. This is the
// exact content written to the backing file.
func (s *Store) Snapshot() (map[string]interface{}, error) {
	if s.settings == nil {
		return nil, errors.New(errors.ErrNotDefined, "settings store must be defined before it is used")
	}

	snapshot := make(map[string]interface{}, len(s.settings))
	for name, st := range s.settings {
		snapshot[name] = st.current
	}
	return snapshot, nil
}
