package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireInstanceLock(t *testing.T) {
	t.Run("SecondAcquireFails", func(t *testing.T) {
		dir := t.TempDir()

		release, err := AcquireInstanceLock(dir)
		require.NoError(t, err)
		defer release()

		_, err = AcquireInstanceLock(dir)
		assert.ErrorIs(t, err, ErrAlreadyRunning)
	})

	t.Run("ReleaseAllowsReacquire", func(t *testing.T) {
		dir := t.TempDir()

		release, err := AcquireInstanceLock(dir)
		require.NoError(t, err)
		release()

		release, err = AcquireInstanceLock(dir)
		require.NoError(t, err)
		release()
	})

	t.Run("CreatesDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "storage")

		release, err := AcquireInstanceLock(dir)
		require.NoError(t, err)
		release()
	})

	t.Run("LeftoverFileIsNotHeld", func(t *testing.T) {
		// A crashed instance leaves the file behind, whatever it contains
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, lockFileName), []byte("12345"), 0644))

		release, err := AcquireInstanceLock(dir)
		require.NoError(t, err)
		release()
	})
}
