package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/lifetimer/lifetimer/pkg/calendar"
	"github.com/lifetimer/lifetimer/pkg/countdown"
)

func (lt *Lifetimer) showExportDialog() {
	lt.showCountdownWindow()
	parent := lt.window.window

	target, ok := lt.engine.Target()
	if !ok {
		dialog.ShowInformation("No Countdown", "Start a countdown before exporting it.", parent)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if writer == nil {
			// Cancelled
			return
		}
		defer writer.Close()

		opts := calendar.ExportOptions{
			Description: fmt.Sprintf("%s seconds remained when this was exported from Lifetimer.",
				countdown.FormatRemaining(lt.engine.Remaining())),
		}
		if err := calendar.WriteEvent(writer, target, opts); err != nil {
			log.Printf("Error exporting countdown to %s: %v", writer.URI(), err)
			dialog.ShowError(err, parent)
			return
		}
		log.Printf("Exported countdown target to %s", writer.URI())
	}, parent)

	save.SetFileName("lifetimer.ics")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	save.Show()
}
