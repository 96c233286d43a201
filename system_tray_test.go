package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/lifetimer/lifetimer/pkg/countdown"
	"github.com/stretchr/testify/assert"
)

func TestTrayStatusLabel(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		showCountdown bool
		want          string
	}{
		{"idle", countdown.EmptyText, true, "No countdown"},
		{"finished", countdown.FinishedText, true, "---"},
		{"running", "86399", true, "86399"},
		{"running hidden", "86399", false, "Counting down"},
		{"finished hidden", countdown.FinishedText, false, "---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trayStatusLabel(tt.text, tt.showCountdown))
		})
	}
}

func TestTrayIconFor(t *testing.T) {
	test.NewApp()

	assert.Equal(t, theme.HistoryIcon().Name(), trayIconFor(countdown.EmptyText).Name())
	assert.Equal(t, theme.ConfirmIcon().Name(), trayIconFor(countdown.FinishedText).Name())
	assert.Equal(t, theme.MediaPlayIcon().Name(), trayIconFor("42").Name())
}
