package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

// loginFlag marks launches made by the login item, which start quietly in the tray
const loginFlag = "--at-login"

func autostartEntry() (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Register the real binary, not a symlink that may move
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	return &autostart.App{
		Name:        "lifetimer",
		DisplayName: "Lifetimer",
		Exec:        []string{execPath, loginFlag},
	}, nil
}

// setupAutostart makes the login item match enable. An enabled item is
// rewritten on every call so it follows the binary if the app was moved.
func setupAutostart(enable bool) error {
	entry, err := autostartEntry()
	if err != nil {
		return err
	}

	switch {
	case enable:
		if err := entry.Enable(); err != nil {
			return fmt.Errorf("failed to register login item for %s: %w", entry.Exec[0], err)
		}
		log.Printf("Login item registered for %s", entry.Exec[0])
	case entry.IsEnabled():
		if err := entry.Disable(); err != nil {
			return fmt.Errorf("failed to remove login item: %w", err)
		}
		log.Println("Login item removed")
	}
	return nil
}

// launchedAtLogin reports whether args carry the login item's flag
func launchedAtLogin(args []string) bool {
	if len(args) < 2 {
		return false
	}
	for _, arg := range args[1:] {
		if arg == loginFlag {
			return true
		}
	}
	return false
}
