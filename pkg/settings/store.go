package settings

import (
	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/filesystem"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/arthur-debert/optset/pkg/types"
	"github.com/rs/zerolog"
)

// State is the lifecycle stage of a Store
type State int

const (
	// StateUndefined is the initial state: no schema has been registered
	StateUndefined State = iota
	// StateDefined means Define succeeded and accessors are usable
	StateDefined
	// StateFileBound means a backing file is linked and receives write-through
	StateFileBound
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUndefined:
		return "undefined"
	case StateDefined:
		return "defined"
	case StateFileBound:
		return "file-bound"
	default:
		return "unknown"
	}
}

// StoreOptions configures a Store
type StoreOptions struct {
	// FS is used for the backing file. Defaults to the OS filesystem.
	FS types.FS

	// Confirmer decides whether to reset the backing file when it holds an
	// entry the schema rejects. Defaults to always keeping the file.
	Confirmer types.Confirmer
}

// setting is one schema entry plus its stored value
type setting struct {
	name     string
	defValue interface{}
	options  []types.Option
	current  interface{}
}

// find returns the storage key of the first option whose key equals value
func (st *setting) find(value interface{}) (interface{}, bool) {
	for _, opt := range st.options {
		if valuesEqual(opt.Key(), value) {
			return opt.Key(), true
		}
	}
	return nil, false
}

// Store is a schema-validated, optionally file-backed settings store
type Store struct {
	fs        types.FS
	confirmer types.Confirmer
	logger    zerolog.Logger

	settings map[string]*setting
	path     string
}

// New creates an undefined Store
func New(opts StoreOptions) *Store {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = types.ConfirmerFunc(func(types.ConfirmationRequest) (bool, error) {
			return false, nil
		})
	}

	return &Store{
		fs:        fsys,
		confirmer: confirmer,
		logger:    logging.GetLogger("settings"),
	}
}

// State returns the current lifecycle stage
func (s *Store) State() State {
	switch {
	case s.settings == nil:
		return StateUndefined
	case s.path == "":
		return StateDefined
	default:
		return StateFileBound
	}
}

// Path returns the bound backing file, or "" when not bound
func (s *Store) Path() string {
	return s.path
}

// lookup returns the named setting, failing when the store is undefined or
// the name is unknown
func (s *Store) lookup(name string) (*setting, error) {
	if s.settings == nil {
		return nil, errors.New(errors.ErrNotDefined, "settings store must be defined before it is used").
			WithDetail(errors.DetailSetting, name)
	}

	st, ok := s.settings[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownSetting, "no setting named %q", name).
			WithDetail(errors.DetailSetting, name)
	}

	return st, nil
}

// restoreDefaults sets every setting back to its default value
func (s *Store) restoreDefaults() {
	for _, st := range s.settings {
		st.current = st.defValue
	}
}

// currentValues captures every setting's stored value by name
func (s *Store) currentValues() map[string]interface{} {
	values := make(map[string]interface{}, len(s.settings))
	for name, st := range s.settings {
		values[name] = st.current
	}
	return values
}

func (s *Store) restoreValues(values map[string]interface{}) {
	for name, st := range s.settings {
		st.current = values[name]
	}
}
