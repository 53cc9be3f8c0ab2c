package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconClose    = "×"
	IconReload   = "↻"
	IconMusic    = "🎵"
	IconWarning  = "⚠"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ChipFormat         = "%s: %s"
)

// Layout sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 760

	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180

	RecentRowHeight  float32 = 56
	RecentThumbWidth float32 = 96

	TitleTextSize float32 = 26
)

// Notification panel behavior
const (
	NotificationAutoHide = 5 * time.Second
)
