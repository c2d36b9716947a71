package settings

import (
	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/types"
)

// Define registers the schema, replacing any previous one. Every definition is
// validated before anything is committed: on error the store is left exactly
// as it was.
//
// A definition is valid when its option list is non-empty, no two options
// share a storage key, and the default equals exactly one option's storage
// key. A default that equals an indirect option's effective value instead of
// its key is rejected with its own reason.
func (s *Store) Define(schema types.Schema) error {
	built := make(map[string]*setting, len(schema))

	for _, name := range schema.Names() {
		def := schema[name]

		defKey, err := validateDefinition(name, def)
		if err != nil {
			return err
		}

		options := make([]types.Option, len(def.Options))
		copy(options, def.Options)

		built[name] = &setting{
			name:     name,
			defValue: defKey,
			options:  options,
			current:  defKey,
		}
	}

	s.settings = built
	s.logger.Debug().
		Int("settings", len(built)).
		Str("state", s.State().String()).
		Msg("Schema defined")

	return nil
}

// validateDefinition checks one definition and returns the storage key the
// default resolves to
func validateDefinition(name string, def types.Definition) (interface{}, error) {
	if len(def.Options) == 0 {
		return nil, invalidOption(name, errors.ReasonEmptyOptions,
			"setting %q must have at least one option", name)
	}

	for i, opt := range def.Options {
		for j := 0; j < i; j++ {
			if valuesEqual(def.Options[j].Key(), opt.Key()) {
				return nil, invalidOption(name, errors.ReasonDuplicateKey,
					"option %d of %q repeats the storage key %v of option %d", i, name, opt.Key(), j).
					WithDetail(errors.DetailIndex, i)
			}
		}
	}

	for i, opt := range def.Options {
		switch opt.Kind() {
		case types.IndirectOption:
			if valuesEqual(opt.Key(), def.Default) {
				return opt.Key(), nil
			}
			if valuesEqual(opt.Value(), def.Default) {
				return nil, invalidOption(name, errors.ReasonEffectiveDefault,
					"default of %q may be the key of option %d but not its value, which is what the setting returns", name, i).
					WithDetail(errors.DetailIndex, i).
					WithDetail(errors.DetailValue, def.Default)
			}
		case types.PlainOption:
			if valuesEqual(opt.Key(), def.Default) {
				return opt.Key(), nil
			}
		}
	}

	return nil, invalidOption(name, errors.ReasonDefaultNotInOpts,
		"default %v of %q must appear in its options, as a value or as the key of an indirect option", def.Default, name).
		WithDetail(errors.DetailValue, def.Default).
		WithDetail(errors.DetailAccepted, types.Keys(def.Options))
}

func invalidOption(name, reason, format string, args ...interface{}) *errors.Error {
	return errors.Newf(errors.ErrInvalidOption, format, args...).
		WithDetail(errors.DetailSetting, name).
		WithDetail(errors.DetailReason, reason)
}
