package main

import (
	"errors"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/lifetimer/lifetimer/pkg/audio"
	"github.com/lifetimer/lifetimer/pkg/countdown"
	"github.com/lifetimer/lifetimer/pkg/models"
	"github.com/lifetimer/lifetimer/pkg/platform"
	"github.com/lifetimer/lifetimer/pkg/store"
)

const appID = "io.github.lifetimer"

// chimePlayer is the part of *audio.Player the app holds on to
type chimePlayer interface {
	Stop()
}

type Lifetimer struct {
	app            fyne.App
	config         *models.Config
	configStore    *store.ConfigStore
	engine         *countdown.Engine
	unsubscribe    func()
	releaseLock    func()
	display        string // last text from the engine, touched only on the UI goroutine
	tray           *trayMenu
	window         *CountdownWindow
	settingsWindow *SettingsWindow
	chime          chimePlayer
	hotkey         *windowHotkey
	atLogin        bool
}

func main() {
	lt := &Lifetimer{
		app:     app.NewWithID(appID),
		atLogin: launchedAtLogin(os.Args),
	}

	if err := lt.initialize(); err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("Lifetimer is already running: %v", err)
			os.Exit(0)
		}
		log.Fatal(err)
	}

	lt.run()
}

func (lt *Lifetimer) initialize() error {
	release, err := platform.AcquireInstanceLock(lt.app.Storage().RootURI().Path())
	if err != nil {
		return err
	}
	lt.releaseLock = release

	prefs := lt.app.Preferences()
	lt.configStore = store.NewConfigStore(prefs)
	lt.config = lt.configStore.Load()

	// Sync autostart state with config on startup
	if err := setupAutostart(lt.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}
	lt.configStore.Save(lt.config)

	lt.engine = countdown.NewEngine(store.NewPreferencesTargetStore(prefs))
	lt.unsubscribe = lt.engine.Subscribe(countdown.ListenerFuncs{
		Update:   lt.onCountdownUpdate,
		Finished: lt.onCountdownFinished,
	})

	lt.window = NewCountdownWindow(lt.app, lt.engine, lt.config.HoldToResetSecondsOrDefault(), lt.onStarted)
	lt.setupSystemTray()
	lt.applyHotkey()

	return nil
}

func (lt *Lifetimer) run() {
	lt.app.Lifecycle().SetOnStarted(func() {
		platform.HideDockIcon()
		// Restore after the event loop is up so the first update reaches the tray
		lt.engine.Initialize()
		// Launched by hand with nothing to count down: ask for the years
		if !lt.atLogin && lt.engine.State() == models.StateIdle {
			lt.showCountdownWindow()
		}
	})
	lt.app.Run()
}

// onCountdownUpdate runs on the engine's tick goroutine
func (lt *Lifetimer) onCountdownUpdate(text string) {
	fyne.Do(func() {
		if text == countdown.EmptyText {
			lt.stopChime()
		}
		lt.setDisplay(text)
	})
}

func (lt *Lifetimer) onCountdownFinished() {
	fyne.Do(func() {
		// A Start or Reset may have landed since the finish was delivered
		if lt.engine.State() != models.StateFinished {
			return
		}
		lt.setDisplay(countdown.FinishedText)

		if lt.config.NotifyOnFinish {
			lt.app.SendNotification(fyne.NewNotification("Lifetimer", "Your countdown has reached zero."))
		}
		if lt.config.ChimeOnFinish {
			go lt.playChime()
		}
	})
}

// playChime blocks until the audio device is ready, so it runs off the UI goroutine
func (lt *Lifetimer) playChime() {
	player := audio.PlayChime(3)
	if player == nil {
		return
	}

	fyne.Do(func() {
		lt.adoptChime(player)
	})

	<-player.Done()
	fyne.Do(func() {
		if lt.chime == chimePlayer(player) {
			lt.chime = nil
		}
	})
}

// adoptChime keeps p as the playing chime while the countdown is still
// finished, and stops it otherwise. Runs on the UI goroutine.
func (lt *Lifetimer) adoptChime(p chimePlayer) bool {
	if lt.engine.State() != models.StateFinished {
		p.Stop()
		return false
	}
	lt.stopChime()
	lt.chime = p
	return true
}

func (lt *Lifetimer) stopChime() {
	if lt.chime != nil {
		lt.chime.Stop()
		lt.chime = nil
	}
}

// onStarted is called by the window after a successful Start; the engine
// does not emit until its first tick, so render the new target right away.
func (lt *Lifetimer) onStarted() {
	lt.stopChime()
	lt.setDisplay(countdown.FormatRemaining(lt.engine.Remaining()))
}

func (lt *Lifetimer) setDisplay(text string) {
	lt.display = text
	lt.updateSystemTray()
	lt.window.Refresh(text)
}

func (lt *Lifetimer) showCountdownWindow() {
	platform.BringToFront()
	lt.window.Show()
}

func (lt *Lifetimer) toggleCountdownWindow() {
	if lt.window.Visible() {
		lt.window.Hide()
		return
	}
	lt.showCountdownWindow()
}

func (lt *Lifetimer) showSettingsWindow() {
	// If settings window already exists, just bring it to front
	if lt.settingsWindow != nil {
		lt.settingsWindow.window.RequestFocus()
		lt.settingsWindow.window.Show()
		return
	}

	lt.settingsWindow = NewSettingsWindow(lt.app, lt.config, lt.configStore, func(newConfig *models.Config) {
		fyne.Do(func() {
			lt.config = newConfig
			lt.window.SetHoldSeconds(newConfig.HoldToResetSecondsOrDefault())
			lt.applyHotkey()
			lt.updateSystemTray()
		})
	})
	lt.settingsWindow.window.SetOnClosed(func() {
		lt.settingsWindow = nil
	})
	lt.settingsWindow.Show()
}

func (lt *Lifetimer) quit() {
	lt.engine.Close()
	if lt.unsubscribe != nil {
		lt.unsubscribe()
	}
	lt.hotkey.Unregister()
	lt.hotkey = nil
	lt.stopChime()
	if lt.releaseLock != nil {
		lt.releaseLock()
	}
	lt.app.Quit()
}
