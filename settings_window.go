package main

import (
	"log"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/lifetimer/lifetimer/pkg/models"
	"github.com/lifetimer/lifetimer/pkg/store"
)

var holdSecondOptions = []string{"1", "2", "3", "5", "10"}

type SettingsWindow struct {
	window      fyne.Window
	app         fyne.App
	config      *models.Config
	configStore *store.ConfigStore
	onSave      func(*models.Config)

	autoStartCheck     *widget.Check
	chimeCheck         *widget.Check
	notifyCheck        *widget.Check
	trayCountdownCheck *widget.Check
	hotkeyCheck        *widget.Check
	holdSecondsSelect  *widget.Select

	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, configStore *store.ConfigStore, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:         app,
		config:      config,
		configStore: configStore,
		onSave:      onSave,
	}

	sw.window = app.NewWindow("Lifetimer - Settings")
	sw.buildUI()
	sw.window.Resize(fyne.NewSize(520, 420))

	return sw
}

func (sw *SettingsWindow) buildUI() {
	sw.autoStartCheck = widget.NewCheck("Launch Lifetimer when you log in", nil)
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	sw.chimeCheck = widget.NewCheck("Play a chime when the countdown ends", nil)
	sw.chimeCheck.SetChecked(sw.config.ChimeOnFinish)

	sw.notifyCheck = widget.NewCheck("Send a notification when the countdown ends", nil)
	sw.notifyCheck.SetChecked(sw.config.NotifyOnFinish)

	sw.trayCountdownCheck = widget.NewCheck("Show remaining seconds in the tray menu", nil)
	sw.trayCountdownCheck.SetChecked(sw.config.ShowTrayCountdown)

	sw.hotkeyCheck = widget.NewCheck("Ctrl+Shift+L shows or hides the countdown", nil)
	sw.hotkeyCheck.SetChecked(sw.config.GlobalHotkey)

	sw.holdSecondsSelect = widget.NewSelect(holdSecondOptions, nil)
	sw.holdSecondsSelect.SetSelected(strconv.Itoa(sw.config.HoldToResetSecondsOrDefault()))

	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(sw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		openInFileManager(sw.app.Storage().RootURI().Path())
	})

	storageHelp := widget.NewLabel("Settings and the saved countdown are stored here")
	storageHelp.Wrapping = fyne.TextWrapWord
	storageHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Startup:"), sw.autoStartCheck,
		widget.NewLabel("When finished:"), container.NewVBox(sw.chimeCheck, sw.notifyCheck),
		widget.NewLabel("Tray:"), sw.trayCountdownCheck,
		widget.NewLabel("Hotkey:"), sw.hotkeyCheck,
		widget.NewLabel("Reset hold (s):"), sw.holdSecondsSelect,
		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		container.NewBorder(nil, container.NewPadded(openStorageButton), nil, nil, storageURIEntry),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance

	bottom := container.NewBorder(nil, nil, sw.saveStatusLabel, sw.saveButton)

	sw.window.SetContent(container.NewPadded(container.NewBorder(
		container.NewVBox(widget.NewLabel("General Settings"), widget.NewSeparator()),
		bottom,
		nil,
		nil,
		container.NewVScroll(form),
	)))
}

func (sw *SettingsWindow) configFromUI() *models.Config {
	holdSeconds, err := strconv.Atoi(sw.holdSecondsSelect.Selected)
	if err != nil {
		holdSeconds = models.DefaultConfig().HoldToResetSeconds
	}

	return &models.Config{
		AutoStart:          sw.autoStartCheck.Checked,
		ChimeOnFinish:      sw.chimeCheck.Checked,
		NotifyOnFinish:     sw.notifyCheck.Checked,
		ShowTrayCountdown:  sw.trayCountdownCheck.Checked,
		GlobalHotkey:       sw.hotkeyCheck.Checked,
		HoldToResetSeconds: holdSeconds,
	}
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.setStatus("Saving...", widget.MediumImportance)

	newConfig := sw.configFromUI()
	go func() {
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			fyne.Do(func() {
				sw.setStatus("Error: Failed to set autostart", widget.DangerImportance)
				sw.saveButton.Enable()
			})
			return
		}

		sw.configStore.Save(newConfig)
		sw.config = newConfig
		if sw.onSave != nil {
			sw.onSave(newConfig)
		}

		fyne.Do(func() {
			sw.setStatus("Settings saved", widget.SuccessImportance)
			sw.saveButton.Enable()
		})

		time.Sleep(3 * time.Second)
		fyne.Do(func() {
			if sw.saveStatusLabel.Text == "Settings saved" {
				sw.setStatus("", widget.MediumImportance)
			}
		})
	}()
}

func (sw *SettingsWindow) setStatus(text string, importance widget.Importance) {
	sw.saveStatusLabel.Importance = importance
	sw.saveStatusLabel.SetText(text)
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

func openInFileManager(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		log.Printf("Unsupported OS: %s", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Error opening file manager: %v", err)
	}
}
