package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/lifetimer/lifetimer/pkg/countdown"
)

type trayMenu struct {
	desk       desktop.App
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	exportItem *fyne.MenuItem
}

func (lt *Lifetimer) setupSystemTray() {
	desk, ok := lt.app.(desktop.App)
	if !ok {
		return
	}

	statusItem := fyne.NewMenuItem(trayStatusLabel(countdown.EmptyText, true), nil)
	statusItem.Disabled = true

	exportItem := fyne.NewMenuItem("Export to Calendar...", func() {
		lt.showExportDialog()
	})
	exportItem.Disabled = true

	menu := fyne.NewMenu("Lifetimer",
		statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Countdown", func() {
			lt.showCountdownWindow()
		}),
		exportItem,
		fyne.NewMenuItem("Settings", func() {
			lt.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			lt.quit()
		}),
	)

	lt.tray = &trayMenu{desk: desk, menu: menu, statusItem: statusItem, exportItem: exportItem}
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(trayIconFor(countdown.EmptyText))
}

func (lt *Lifetimer) updateSystemTray() {
	if lt.tray == nil {
		return
	}

	lt.tray.statusItem.Label = trayStatusLabel(lt.display, lt.config.ShowTrayCountdown)
	_, running := lt.engine.Target()
	lt.tray.exportItem.Disabled = !running
	lt.tray.menu.Refresh()
	lt.tray.desk.SetSystemTrayIcon(trayIconFor(lt.display))
}

// trayStatusLabel is the first, disabled line of the tray menu
func trayStatusLabel(text string, showCountdown bool) string {
	switch text {
	case countdown.EmptyText:
		return "No countdown"
	case countdown.FinishedText:
		return countdown.FinishedText
	}
	if !showCountdown {
		return "Counting down"
	}
	return text
}

// trayIconFor shows the hourglass while idle, as the status item did before a countdown existed
func trayIconFor(text string) fyne.Resource {
	switch text {
	case countdown.EmptyText:
		return theme.HistoryIcon()
	case countdown.FinishedText:
		return theme.ConfirmIcon()
	default:
		return theme.MediaPlayIcon()
	}
}
