//go:build !darwin

package platform

// HideDockIcon is a no-op outside macOS; tray apps have no dock icon there
func HideDockIcon() {}

// BringToFront is a no-op outside macOS
func BringToFront() {}
