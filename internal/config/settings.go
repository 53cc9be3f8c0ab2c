package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/nostorage/internal/i18n"
	"github.com/ytget/nostorage/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyLastMode           = "last_mode"
)

// Default values
const (
	DefaultLanguage           = i18n.LanguageSystem
	DefaultAutoRevealComplete = false
	DefaultMode               = "video"
	FallbackDownloadDir       = "/tmp/downloads"
)

// Settings manages user preferences persisted by Fyne
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language preference ("system", "en" or "ru")
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastMode returns the download mode used last time
func (s *Settings) GetLastMode() string {
	return s.app.Preferences().StringWithFallback(KeyLastMode, DefaultMode)
}

// SetLastMode remembers the selected download mode
func (s *Settings) SetLastMode(mode string) {
	s.app.Preferences().SetString(KeyLastMode, mode)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal completed downloads in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	options := map[string]string{
		i18n.LanguageSystem: "System Default",
	}
	for code, name := range i18n.AvailableLanguages() {
		options[code] = name
	}
	return options
}
