package countdown

import (
	"strconv"
	"time"
)

const (
	// EmptyText means no countdown is active; the tray shows its default icon
	EmptyText = ""

	// FinishedText is shown once the target has been reached
	FinishedText = "---"
)

// FormatRemaining renders d as whole seconds with no units or separators, e.g. "86399".
// Fractions round to the nearest second.
func FormatRemaining(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 0, 64)
}
