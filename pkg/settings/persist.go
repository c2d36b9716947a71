package settings

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/optset/pkg/errors"
)

const (
	// FileExtension is the extension a backing file must carry
	FileExtension = ".json"

	filePerm fs.FileMode = 0644
)

// BindFile links the store to an existing JSON file and loads the values it
// holds. Entries the schema rejects are handed to the Confirmer; only I/O and
// prompt failures are returned. When loading fails the store stays unbound
// and keeps the values it held before the call.
func (s *Store) BindFile(path string) error {
	if s.settings == nil {
		return errors.New(errors.ErrNotDefined, "settings store must be defined before a file can be bound").
			WithDetail(errors.DetailPath, path)
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Newf(errors.ErrFileNotFound, "no file at %s", path).
				WithDetail(errors.DetailPath, path)
		}
		return errors.Wrapf(err, errors.ErrPersistenceIO, "cannot access %s", path).
			WithDetail(errors.DetailPath, path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is a directory, not a settings file", path).
			WithDetail(errors.DetailPath, path)
	}
	if !strings.EqualFold(filepath.Ext(path), FileExtension) {
		return errors.Newf(errors.ErrInvalidInput, "settings file must be a %s file, not %q", FileExtension, filepath.Ext(path)).
			WithDetail(errors.DetailPath, path)
	}

	previous := s.path
	values := s.currentValues()
	s.path = path
	if err := s.reconcile(); err != nil {
		s.path = previous
		s.restoreValues(values)
		return err
	}

	s.logger.Info().Str("path", path).Msg("Settings file bound")
	return nil
}

// Persist writes every setting's stored value to the bound file, replacing
// its content. Set calls this after each successful write once a file is bound.
func (s *Store) Persist() error {
	if s.path == "" {
		return errors.New(errors.ErrNotFileBound, "no settings file is bound")
	}

	snapshot, err := s.Snapshot()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to encode settings")
		return errors.Wrapf(err, errors.ErrPersistenceIO, "cannot encode settings for %s", s.path).
			WithDetail(errors.DetailPath, s.path)
	}
	data = append(data, '\n')

	if err := s.fs.WriteFile(s.path, data, filePerm); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to write settings file")
		return errors.Wrapf(err, errors.ErrPersistenceIO, "cannot write settings to %s", s.path).
			WithDetail(errors.DetailPath, s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("settings", len(snapshot)).Msg("Settings file written")
	return nil
}

// Reset empties the bound file. In-memory values are left untouched.
func (s *Store) Reset() error {
	if s.path == "" {
		return errors.New(errors.ErrNotFileBound, "no settings file is bound")
	}

	if err := s.fs.WriteFile(s.path, nil, filePerm); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to reset settings file")
		return errors.Wrapf(err, errors.ErrPersistenceIO, "cannot reset %s", s.path).
			WithDetail(errors.DetailPath, s.path)
	}

	s.logger.Info().Str("path", s.path).Msg("Settings file reset")
	return nil
}
