package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/lifetimer/lifetimer/pkg/countdown"
	"github.com/lifetimer/lifetimer/pkg/models"
	"github.com/lifetimer/lifetimer/pkg/ui/components"
)

// CountdownWindow is the small window opened from the tray: a years entry
// while idle, the remaining seconds and a hold-to-reset button while running.
type CountdownWindow struct {
	window    fyne.Window
	engine    *countdown.Engine
	onStarted func()
	visible   bool

	headline      *widget.Label
	remainingText *canvas.Text
	yearsEntry    *widget.Entry
	startForm     *fyne.Container
	resetButton   *components.HoldButton
}

func NewCountdownWindow(app fyne.App, engine *countdown.Engine, holdSeconds int, onStarted func()) *CountdownWindow {
	cw := &CountdownWindow{
		engine:    engine,
		onStarted: onStarted,
	}

	cw.window = app.NewWindow("Lifetimer")
	cw.buildUI(holdSeconds)
	cw.window.Resize(fyne.NewSize(350, 220))
	cw.window.SetFixedSize(true)

	// Closing only hides; the app lives in the tray
	cw.window.SetCloseIntercept(func() {
		cw.Hide()
	})

	return cw
}

func (cw *CountdownWindow) buildUI(holdSeconds int) {
	cw.headline = widget.NewLabel("")
	cw.headline.Alignment = fyne.TextAlignCenter
	cw.headline.Wrapping = fyne.TextWrapWord

	cw.remainingText = canvas.NewText("", nil)
	cw.remainingText.TextSize = 32
	cw.remainingText.Alignment = fyne.TextAlignCenter
	cw.remainingText.TextStyle = fyne.TextStyle{Monospace: true}

	cw.yearsEntry = widget.NewEntry()
	cw.yearsEntry.SetPlaceHolder("Enter years")
	cw.yearsEntry.OnSubmitted = func(string) {
		cw.start()
	}

	startButton := widget.NewButton("Start Countdown", func() {
		cw.start()
	})
	startButton.Importance = widget.HighImportance

	cw.startForm = container.NewVBox(
		container.NewGridWrap(fyne.NewSize(150, cw.yearsEntry.MinSize().Height), cw.yearsEntry),
		startButton,
	)

	cw.resetButton = components.NewHoldButton("", 0, func() {
		log.Println("Reset confirmed from countdown window")
		cw.engine.Reset()
	})
	cw.SetHoldSeconds(holdSeconds)

	content := container.NewVBox(
		cw.headline,
		cw.remainingText,
		container.NewCenter(cw.startForm),
		container.NewCenter(cw.resetButton),
	)

	cw.window.SetContent(container.NewPadded(content))
	cw.Refresh(countdown.EmptyText)
}

func (cw *CountdownWindow) start() {
	years, err := parseYears(cw.yearsEntry.Text)
	if err != nil {
		dialog.ShowError(err, cw.window)
		return
	}

	if err := cw.engine.Start(years); err != nil {
		dialog.ShowError(err, cw.window)
		return
	}

	cw.yearsEntry.SetText("")
	if cw.onStarted != nil {
		cw.onStarted()
	}
	cw.Hide()
}

// Refresh redraws the window for the engine's latest display text
func (cw *CountdownWindow) Refresh(text string) {
	state := cw.engine.State()

	cw.headline.SetText(headlineFor(state))
	cw.remainingText.Text = text
	cw.remainingText.Refresh()

	switch state {
	case models.StateRunning:
		cw.startForm.Hide()
		cw.resetButton.Show()
	case models.StateFinished:
		cw.startForm.Show()
		cw.resetButton.Show()
	default:
		cw.startForm.Show()
		cw.resetButton.Hide()
	}
}

// SetHoldSeconds changes how long the reset button must be held
func (cw *CountdownWindow) SetHoldSeconds(seconds int) {
	cw.resetButton.HoldDuration = time.Duration(seconds) * time.Second
	cw.resetButton.Text = fmt.Sprintf("Hold %ds to Reset", seconds)
	cw.resetButton.Refresh()
}

func (cw *CountdownWindow) Show() {
	cw.visible = true
	cw.window.Show()
	cw.window.RequestFocus()
	if cw.engine.State() != models.StateRunning {
		cw.window.Canvas().Focus(cw.yearsEntry)
	}
}

func (cw *CountdownWindow) Hide() {
	cw.visible = false
	cw.resetButton.CancelHold()
	cw.window.Hide()
}

func (cw *CountdownWindow) Visible() bool {
	return cw.visible
}

func headlineFor(state models.State) string {
	switch state {
	case models.StateRunning:
		return "Seconds Remaining"
	case models.StateFinished:
		return "Time's up. Start another countdown?"
	default:
		return "How many years do you think you have left?"
	}
}
