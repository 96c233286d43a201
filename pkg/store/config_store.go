package store

import (
	"fyne.io/fyne/v2"
	"github.com/lifetimer/lifetimer/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(prefs fyne.Preferences) *ConfigStore {
	return &ConfigStore{prefs: prefs}
}

// Load loads configuration from preferences, falling back to defaults
func (cs *ConfigStore) Load() *models.Config {
	def := models.DefaultConfig()

	return &models.Config{
		AutoStart:          cs.prefs.BoolWithFallback("auto_start", def.AutoStart),
		ChimeOnFinish:      cs.prefs.BoolWithFallback("chime_on_finish", def.ChimeOnFinish),
		NotifyOnFinish:     cs.prefs.BoolWithFallback("notify_on_finish", def.NotifyOnFinish),
		ShowTrayCountdown:  cs.prefs.BoolWithFallback("show_tray_countdown", def.ShowTrayCountdown),
		GlobalHotkey:       cs.prefs.BoolWithFallback("global_hotkey", def.GlobalHotkey),
		HoldToResetSeconds: cs.prefs.IntWithFallback("hold_to_reset_seconds", def.HoldToResetSeconds),
	}
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetBool("auto_start", config.AutoStart)
	cs.prefs.SetBool("chime_on_finish", config.ChimeOnFinish)
	cs.prefs.SetBool("notify_on_finish", config.NotifyOnFinish)
	cs.prefs.SetBool("show_tray_countdown", config.ShowTrayCountdown)
	cs.prefs.SetBool("global_hotkey", config.GlobalHotkey)
	cs.prefs.SetInt("hold_to_reset_seconds", config.HoldToResetSeconds)
}
