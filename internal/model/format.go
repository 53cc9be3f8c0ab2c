package model

import (
	"fmt"
	"math"
)

// DashPlaceholder is rendered for unknown sizes and durations
const DashPlaceholder = "-"

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes converts a byte count into a label such as "1.0 KB" or "15 MB".
// Values below 10 in their unit keep one decimal. Zero renders as "-".
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return DashPlaceholder
	}

	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	if size < 10 {
		return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
	}
	return fmt.Sprintf("%.0f %s", size, byteUnits[unit])
}

// FormatDuration converts seconds into m:ss. Minutes are not wrapped into hours.
func FormatDuration(seconds *float64) string {
	if seconds == nil || math.IsNaN(*seconds) {
		return DashPlaceholder
	}

	total := math.Max(*seconds, 0)
	mins := int64(math.Floor(total / 60))
	secs := int64(math.Floor(math.Mod(total, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}
