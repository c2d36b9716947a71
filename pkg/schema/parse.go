package schema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/types"
)

// Field names of a setting table
const (
	FieldDefault = "default"
	FieldOptions = "options"
)

// ParseDocument converts a decoded document into a schema. Either every
// setting converts or an error is returned and nothing is produced.
func ParseDocument(doc map[string]interface{}) (types.Schema, error) {
	schema := make(types.Schema)
	if err := parseTable(schema, "", doc); err != nil {
		return nil, err
	}
	return schema, nil
}

func parseTable(schema types.Schema, prefix string, table map[string]interface{}) error {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		node, ok := asTable(table[key])
		if !ok {
			return invalid(name, errors.ReasonMissingField,
				"setting %q must be a table with %q and %q, not %T", name, FieldDefault, FieldOptions, table[key])
		}

		_, hasDefault := node[FieldDefault]
		_, hasOptions := node[FieldOptions]
		switch {
		case hasDefault || hasOptions:
			def, err := parseDefinition(name, node)
			if err != nil {
				return err
			}
			schema[name] = def
		case len(node) == 0:
			return invalid(name, errors.ReasonMissingField,
				"setting %q must have %q and %q", name, FieldDefault, FieldOptions)
		default:
			if err := parseTable(schema, name, node); err != nil {
				return err
			}
		}
	}

	return nil
}

func parseDefinition(name string, node map[string]interface{}) (types.Definition, error) {
	defValue, ok := node[FieldDefault]
	if !ok {
		return types.Definition{}, invalid(name, errors.ReasonMissingField,
			"setting %q needs a %q to set its starting value", name, FieldDefault)
	}

	raw, ok := node[FieldOptions]
	if !ok {
		return types.Definition{}, invalid(name, errors.ReasonMissingField,
			"setting %q needs %q listing every value it can take", name, FieldOptions)
	}

	items, ok := asSequence(raw)
	if !ok {
		return types.Definition{}, invalid(name, errors.ReasonNotASequence,
			"%q of setting %q must be a list, not %T", FieldOptions, name, raw)
	}
	if len(items) == 0 {
		return types.Definition{}, invalid(name, errors.ReasonEmptyOptions,
			"setting %q must have at least one option", name)
	}

	options := make([]types.Option, 0, len(items))
	for i, item := range items {
		opt, err := parseOption(name, i, item)
		if err != nil {
			return types.Definition{}, err
		}
		options = append(options, opt)
	}

	return types.Definition{Default: defValue, Options: options}, nil
}

func parseOption(name string, index int, item interface{}) (types.Option, error) {
	table, ok := asTable(item)
	if !ok {
		return types.Plain(item), nil
	}

	if len(table) != 1 {
		return types.Option{}, invalid(name, errors.ReasonMultiKeyOption,
			"option %d of %q may be a table but must hold exactly one key, the stored value, mapped to the value the setting returns", index, name).
			WithDetail(errors.DetailIndex, index)
	}

	var opt types.Option
	for key, value := range table {
		opt = types.Indirect(key, value)
	}
	return opt, nil
}

// asTable accepts any map keyed by strings
func asTable(v interface{}) (map[string]interface{}, bool) {
	if m, ok := v.(map[string]interface{}); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}

	out := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}

// asSequence accepts slices and arrays of any element type
func asSequence(v interface{}) ([]interface{}, bool) {
	if s, ok := v.([]interface{}); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func invalid(name, reason, format string, args ...interface{}) *errors.Error {
	return errors.Newf(errors.ErrInvalidOption, format, args...).
		WithDetail(errors.DetailSetting, name).
		WithDetail(errors.DetailReason, reason)
}
