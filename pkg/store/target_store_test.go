package store

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesTargetStore(t *testing.T) {
	t.Run("LoadEmpty", func(t *testing.T) {
		s := NewPreferencesTargetStore(test.NewApp().Preferences())

		got, ok, err := s.Load()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, got.IsZero())
	})

	t.Run("RoundTripKeepsNanoseconds", func(t *testing.T) {
		s := NewPreferencesTargetStore(test.NewApp().Preferences())
		target := time.Date(2061, time.March, 4, 5, 6, 7, 123456789, time.FixedZone("X", 3*3600))

		require.NoError(t, s.Save(target))

		got, ok, err := s.Load()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, got.Equal(target), "got %v, want %v", got, target)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		s := NewPreferencesTargetStore(test.NewApp().Preferences())
		first := time.Now().Add(time.Hour)
		second := first.Add(24 * time.Hour)

		require.NoError(t, s.Save(first))
		require.NoError(t, s.Save(second))

		got, ok, err := s.Load()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, got.Equal(second))
	})

	t.Run("ClearThenLoadIsAbsent", func(t *testing.T) {
		s := NewPreferencesTargetStore(test.NewApp().Preferences())
		require.NoError(t, s.Save(time.Now().Add(time.Minute)))

		require.NoError(t, s.Clear())
		require.NoError(t, s.Clear())

		_, ok, err := s.Load()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SaveZeroRejected", func(t *testing.T) {
		s := NewPreferencesTargetStore(test.NewApp().Preferences())
		assert.Error(t, s.Save(time.Time{}))
	})

	t.Run("CorruptValue", func(t *testing.T) {
		prefs := test.NewApp().Preferences()
		prefs.SetString(TargetDateKey, "next tuesday")
		s := NewPreferencesTargetStore(prefs)

		_, ok, err := s.Load()
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrCorruptTarget))
	})

	t.Run("SharedPreferencesSeeSameSlot", func(t *testing.T) {
		prefs := test.NewApp().Preferences()
		target := time.Now().Add(10 * time.Second)
		require.NoError(t, NewPreferencesTargetStore(prefs).Save(target))

		got, ok, err := NewPreferencesTargetStore(prefs).Load()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, got.Equal(target))
	})
}
