package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/optset/pkg/errors"
	"github.com/arthur-debert/optset/pkg/logging"
	"github.com/arthur-debert/optset/pkg/types"
)

// ConfirmResetID identifies the confirmation asked when the backing file
// conflicts with the schema
const ConfirmResetID = "reset-settings-file"

// ConflictReason says why a persisted entry could not be applied
type ConflictReason string

const (
	ConflictUnknownSetting ConflictReason = "unknown_setting"
	ConflictInvalidValue   ConflictReason = "invalid_value"
	ConflictMalformedFile  ConflictReason = "malformed_file"
)

// Conflict describes persisted data the schema rejects
type Conflict struct {
	Reason  ConflictReason
	Setting string
	Value   interface{}
	Err     error
}

// Message describes the conflict for prompts and logs
func (c Conflict) Message(path string) string {
	switch c.Reason {
	case ConflictUnknownSetting:
		return fmt.Sprintf("Unknown setting %q in settings file %s", c.Setting, path)
	case ConflictInvalidValue:
		return fmt.Sprintf("Invalid value %v for setting %q in settings file %s", c.Value, c.Setting, path)
	default:
		return fmt.Sprintf("Settings file %s is not a JSON object: %v", path, c.Err)
	}
}

type applyOutcome int

const (
	outcomeApplied applyOutcome = iota
	outcomeSkipped
	outcomeConflict
)

type applyResult struct {
	outcome  applyOutcome
	conflict Conflict
}

// entry is one name/value pair of the backing file, in file order
type entry struct {
	name  string
	value interface{}
}

// reconcile loads the bound file into memory. Entries are applied without
// write-through. A conflicting entry is put to the Confirmer: yes resets the
// file, restores every default and stops; no skips the entry.
func (s *Store) reconcile() error {
	done := logging.LogOperationStart(s.logger, "reconcile")
	defer done()

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to read settings file")
		return errors.Wrapf(err, errors.ErrPersistenceIO, "cannot read settings from %s", s.path).
			WithDetail(errors.DetailPath, s.path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug().Str("path", s.path).Msg("Settings file is empty, keeping defaults")
		return nil
	}

	entries, err := decodeEntries(data)
	if err != nil {
		_, err := s.resolve(Conflict{Reason: ConflictMalformedFile, Err: err})
		return err
	}

	applied := 0
	for _, e := range entries {
		result := s.apply(e)
		switch result.outcome {
		case outcomeApplied:
			applied++
		case outcomeSkipped:
			continue
		case outcomeConflict:
			reset, err := s.resolve(result.conflict)
			if err != nil {
				return err
			}
			if reset {
				return nil
			}
		}
	}

	s.logger.Debug().Int("applied", applied).Int("entries", len(entries)).Msg("Settings file reconciled")
	return nil
}

// apply validates one persisted entry and stores it when legal
func (s *Store) apply(e entry) applyResult {
	if e.value == nil {
		return applyResult{outcome: outcomeSkipped}
	}

	st, ok := s.settings[e.name]
	if !ok {
		return applyResult{outcome: outcomeConflict, conflict: Conflict{
			Reason:  ConflictUnknownSetting,
			Setting: e.name,
			Value:   e.value,
		}}
	}

	key, ok := st.find(e.value)
	if !ok {
		return applyResult{outcome: outcomeConflict, conflict: Conflict{
			Reason:  ConflictInvalidValue,
			Setting: e.name,
			Value:   e.value,
			Err:     invalidValue(st, e.value),
		}}
	}

	st.current = key
	return applyResult{outcome: outcomeApplied}
}

// resolve reports a conflict and asks the Confirmer whether to reset the
// file. It returns true when the file was reset.
func (s *Store) resolve(c Conflict) (bool, error) {
	message := c.Message(s.path)
	s.logger.Warn().
		Str("reason", string(c.Reason)).
		Str("setting", c.Setting).
		Interface("value", c.Value).
		Str("path", s.path).
		Msg(message)

	req := types.ConfirmationRequest{
		ID:          ConfirmResetID,
		Title:       "Reset settings file",
		Description: fmt.Sprintf("%s. Reset %s so new settings can be stored correctly?", message, s.path),
		Default:     false,
	}
	if c.Setting != "" {
		req.Items = []string{fmt.Sprintf("%s=%v", c.Setting, c.Value)}
	}

	reset, err := s.confirmer.Confirm(req)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, "failed to get a decision on the conflicting settings file").
			WithDetail(errors.DetailPath, s.path).
			WithDetail(errors.DetailSetting, c.Setting)
	}

	if !reset {
		s.logger.Info().Str("setting", c.Setting).Msg("Keeping settings file, conflicting entry skipped")
		return false, nil
	}

	if err := s.Reset(); err != nil {
		return false, err
	}
	s.restoreDefaults()
	s.logger.Info().Str("path", s.path).Msg("Settings file reset after conflict, defaults restored")
	return true, nil
}

// decodeEntries parses a flat JSON object keeping the file's key order
func decodeEntries(data []byte) ([]entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, found %v", tok)
	}

	var entries []entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, found %v", tok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		entries = append(entries, entry{name: name, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the settings object")
	}

	return entries, nil
}
