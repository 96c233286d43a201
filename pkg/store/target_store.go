package store

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
)

// TargetDateKey is the preference slot holding the countdown target.
// Changing it would orphan targets saved by earlier versions.
const TargetDateKey = "CountdownTargetDate"

// ErrCorruptTarget is returned by Load when the slot holds an unparseable value
var ErrCorruptTarget = errors.New("corrupt countdown target")

// PreferencesTargetStore keeps a single absolute timestamp in Fyne preferences.
// Preferences are written to the app storage root, so the value survives restarts.
type PreferencesTargetStore struct {
	prefs fyne.Preferences
	key   string
}

// NewPreferencesTargetStore creates a store backed by the given preferences
func NewPreferencesTargetStore(prefs fyne.Preferences) *PreferencesTargetStore {
	return &PreferencesTargetStore{prefs: prefs, key: TargetDateKey}
}

// Save overwrites the stored target
func (s *PreferencesTargetStore) Save(target time.Time) error {
	if target.IsZero() {
		return errors.New("refusing to save zero target")
	}
	s.prefs.SetString(s.key, target.UTC().Format(time.RFC3339Nano))
	return nil
}

// Load returns the stored target. ok is false when nothing is stored.
func (s *PreferencesTargetStore) Load() (target time.Time, ok bool, err error) {
	raw := s.prefs.String(s.key)
	if raw == "" {
		return time.Time{}, false, nil
	}

	target, err = time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w %q: %v", ErrCorruptTarget, raw, err)
	}
	return target, true, nil
}

// Clear removes the stored target
func (s *PreferencesTargetStore) Clear() error {
	s.prefs.RemoveValue(s.key)
	return nil
}
