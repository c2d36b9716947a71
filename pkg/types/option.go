package types

import "fmt"

// OptionKind discriminates the two Option variants
type OptionKind int

const (
	// PlainOption is a literal value: stored and returned value are identical
	PlainOption OptionKind = iota
	// IndirectOption stores a key but resolves to a separate effective value
	IndirectOption
)

// String returns the kind name
func (k OptionKind) String() string {
	switch k {
	case PlainOption:
		return "plain"
	case IndirectOption:
		return "indirect"
	default:
		return "unknown"
	}
}

// Option is one legal value for a setting.
//
// A plain option is its own storage representation. An indirect option is a
// (storage key, effective value) pair: the key is what gets stored and
// persisted, the effective value is what readers get back by default.
type Option struct {
	kind  OptionKind
	key   interface{}
	value interface{}
}

// Plain creates a plain option
func Plain(value interface{}) Option {
	return Option{kind: PlainOption, key: value, value: value}
}

// Indirect creates an option stored as key that resolves to value
func Indirect(key, value interface{}) Option {
	return Option{kind: IndirectOption, key: key, value: value}
}

// Kind returns which variant this option is
func (o Option) Kind() OptionKind {
	return o.kind
}

// IsIndirect reports whether the option is an indirect option
func (o Option) IsIndirect() bool {
	return o.kind == IndirectOption
}

// Key returns the storage representation of the option
func (o Option) Key() interface{} {
	return o.key
}

// Value returns the effective value. For plain options this is the key.
func (o Option) Value() interface{} {
	return o.value
}

// Resolve returns the storage key when literal is set and the option is
// indirect, otherwise the effective value.
func (o Option) Resolve(literal bool) interface{} {
	switch o.kind {
	case IndirectOption:
		if literal {
			return o.key
		}
		return o.value
	default:
		return o.key
	}
}

// String renders the option for messages and listings
func (o Option) String() string {
	switch o.kind {
	case IndirectOption:
		return fmt.Sprintf("%v => %v", o.key, describeValue(o.value))
	default:
		return fmt.Sprintf("%v", o.key)
	}
}

// describeValue avoids printing function pointers as addresses
func describeValue(v interface{}) string {
	switch v.(type) {
	case nil:
		return "<nil>"
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// Keys returns the storage representation of every option, in order
func Keys(options []Option) []interface{} {
	keys := make([]interface{}, len(options))
	for i, opt := range options {
		keys[i] = opt.Key()
	}
	return keys
}
