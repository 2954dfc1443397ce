package journal

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as compact hours and minutes: "3h",
// "2h 5m". The tabular form pads for column alignment.
func FormatDuration(d time.Duration, tabular bool) string {
	mins := int(d / time.Minute)
	h, m := mins/60, mins%60
	if tabular {
		return fmt.Sprintf("%3dh %02dm", h, m)
	}
	if m != 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}
