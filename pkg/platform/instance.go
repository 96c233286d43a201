package platform

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning means another process holds the instance lock
var ErrAlreadyRunning = errors.New("another instance is already running")

const lockFileName = "instance.lock"

// AcquireInstanceLock takes the single-instance lock in dir without blocking.
// The OS drops the lock when the holder exits, so a crash never leaves it held.
func AcquireInstanceLock(dir string) (release func(), err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (%s is locked)", ErrAlreadyRunning, lock.Path())
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			log.Printf("Failed to release instance lock: %v", err)
		}
	}, nil
}
