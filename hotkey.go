package main

import (
	"log"

	"fyne.io/fyne/v2"
	"golang.design/x/hotkey"
)

// windowHotkey is the global Ctrl+Shift+L binding that toggles the countdown window
type windowHotkey struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

func registerWindowHotkey(onPress func()) (*windowHotkey, error) {
	hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyL)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	wh := &windowHotkey{hk: hk, done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-wh.done:
				return
			case <-hk.Keydown():
				onPress()
			}
		}
	}()
	return wh, nil
}

// Unregister releases the binding. Safe on nil.
func (wh *windowHotkey) Unregister() {
	if wh == nil {
		return
	}
	close(wh.done)
	if err := wh.hk.Unregister(); err != nil {
		log.Printf("Failed to unregister hotkey: %v", err)
	}
}

// applyHotkey registers or drops the global hotkey to match the config
func (lt *Lifetimer) applyHotkey() {
	if !lt.config.GlobalHotkey {
		if lt.hotkey != nil {
			lt.hotkey.Unregister()
			lt.hotkey = nil
			log.Println("Global hotkey disabled")
		}
		return
	}
	if lt.hotkey != nil {
		return
	}

	go func() {
		wh, err := registerWindowHotkey(func() {
			fyne.Do(lt.toggleCountdownWindow)
		})
		if err != nil {
			log.Printf("Failed to register Ctrl+Shift+L hotkey: %v", err)
			return
		}
		fyne.Do(func() {
			if lt.hotkey != nil || !lt.config.GlobalHotkey {
				wh.Unregister()
				return
			}
			lt.hotkey = wh
			log.Println("Global hotkey registered")
		})
	}()
}
