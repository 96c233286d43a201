package models

// Config holds application configuration
type Config struct {
	AutoStart          bool `json:"auto_start"`
	ChimeOnFinish      bool `json:"chime_on_finish"`       // play a chime when the countdown ends
	NotifyOnFinish     bool `json:"notify_on_finish"`      // send a desktop notification when the countdown ends
	ShowTrayCountdown  bool `json:"show_tray_countdown"`   // show remaining seconds in the tray menu
	GlobalHotkey       bool `json:"global_hotkey"`         // Ctrl+Shift+L toggles the countdown window
	HoldToResetSeconds int  `json:"hold_to_reset_seconds"` // reset button hold time
}

// DefaultConfig returns the settings used on first launch
func DefaultConfig() *Config {
	return &Config{
		AutoStart:          false,
		ChimeOnFinish:      true,
		NotifyOnFinish:     true,
		ShowTrayCountdown:  true,
		GlobalHotkey:       false,
		HoldToResetSeconds: 2,
	}
}

// HoldToResetSecondsOrDefault clamps the reset hold time into a usable range
func (c *Config) HoldToResetSecondsOrDefault() int {
	if c.HoldToResetSeconds < 1 {
		return 1
	}
	if c.HoldToResetSeconds > 10 {
		return 10
	}
	return c.HoldToResetSeconds
}
