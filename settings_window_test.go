package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/lifetimer/lifetimer/pkg/models"
	"github.com/lifetimer/lifetimer/pkg/store"
	"github.com/stretchr/testify/assert"
)

func TestSettingsWindowReflectsConfig(t *testing.T) {
	a := test.NewApp()
	config := &models.Config{
		AutoStart:          true,
		ChimeOnFinish:      false,
		NotifyOnFinish:     true,
		ShowTrayCountdown:  false,
		GlobalHotkey:       true,
		HoldToResetSeconds: 5,
	}

	sw := NewSettingsWindow(a, config, store.NewConfigStore(a.Preferences()), nil)

	assert.Equal(t, config, sw.configFromUI())
}

func TestSettingsWindowConfigFromUI(t *testing.T) {
	a := test.NewApp()
	sw := NewSettingsWindow(a, models.DefaultConfig(), store.NewConfigStore(a.Preferences()), nil)

	sw.chimeCheck.SetChecked(false)
	sw.trayCountdownCheck.SetChecked(false)
	sw.holdSecondsSelect.SetSelected("10")

	got := sw.configFromUI()
	assert.False(t, got.ChimeOnFinish)
	assert.False(t, got.ShowTrayCountdown)
	assert.True(t, got.NotifyOnFinish)
	assert.Equal(t, 10, got.HoldToResetSeconds)
}
