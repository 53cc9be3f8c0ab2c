package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Language codes
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
	LanguageSystem  = "system"
	DefaultLanguage = LanguageEnglish
)

// Text keys for localization
const (
	KeyLanguageToggle            = "language_toggle"
	KeyEyebrow                   = "eyebrow"
	KeyTitle                     = "title"
	KeyDescription               = "description"
	KeyPastePlaceholder          = "paste_placeholder"
	KeyVideo                     = "video"
	KeyAudioOnly                 = "audio_only"
	KeyPaste                     = "paste"
	KeyGetInfo                   = "get_info"
	KeyFetching                  = "fetching"
	KeyNoPreview                 = "no_preview"
	KeyResultCard                = "result_card"
	KeyDuration                  = "duration"
	KeySize                      = "size"
	KeyAudioOutput               = "audio_output"
	KeyChooseQuality             = "choose_quality"
	KeyConverting                = "converting"
	KeySelected                  = "selected"
	KeyVideoTooLong              = "video_too_long"
	KeyPreparing                 = "preparing"
	KeyDownloadMP3               = "download_mp3"
	KeyDownload                  = "download"
	KeyRecentDownloads           = "recent_downloads"
	KeyTapToReload               = "tap_to_reload"
	KeyFooter                    = "footer"
	KeyErrorPasteURL             = "error_paste_url"
	KeyErrorFetch                = "error_fetch"
	KeyErrorClipboardUnsupported = "error_clipboard_unsupported"
	KeySuccessClipboard          = "success_clipboard"
	KeyErrorClipboardRead        = "error_clipboard_read"
	KeyErrorSelectQuality        = "error_select_quality"
	KeySuccessDownload           = "success_download"
	KeyErrorDownload             = "error_download"

	// Desktop-only keys
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyOpenFolder        = "open_folder"
	KeyOpenFile          = "open_file"
	KeyErrorOpeningFile  = "error_opening_file"
)

// Lookup returns the text for key in lang. Unknown languages or keys return the key itself.
func Lookup(lang, key string) string {
	if texts, exists := translations[lang]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}
	return key
}

// Localization tracks the current UI language
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
}

// NewLocalization creates a new localization manager set to the default language
func NewLocalization() *Localization {
	return &Localization{currentLanguage: DefaultLanguage}
}

// SetLanguage sets the current language. Unsupported codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := translations[lang]; !exists {
		return
	}
	l.mu.Lock()
	l.currentLanguage = lang
	l.mu.Unlock()
}

// Toggle switches between English and Russian and returns the new language
func (l *Localization) Toggle() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.currentLanguage == LanguageRussian {
		l.currentLanguage = LanguageEnglish
	} else {
		l.currentLanguage = LanguageRussian
	}
	return l.currentLanguage
}

// Text returns localized text for the given key in the current language
func (l *Localization) Text(key string) string {
	return Lookup(l.CurrentLanguage(), key)
}

// CurrentLanguage returns the current language code
func (l *Localization) CurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// AvailableLanguages returns map of available languages with their display names
func AvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish: "English",
		LanguageRussian: "Русский",
	}
}

var (
	supportedLanguages = []string{LanguageEnglish, LanguageRussian}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

// ResolveLanguage turns a stored preference into a supported language code.
// "system" (or an empty preference) is matched against systemLocale, which may be a
// BCP 47 tag or a POSIX locale such as "ru_RU.UTF-8".
func ResolveLanguage(pref, systemLocale string) string {
	if pref != "" && pref != LanguageSystem {
		if _, exists := translations[pref]; exists {
			return pref
		}
		return DefaultLanguage
	}

	locale := systemLocale
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return DefaultLanguage
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLanguage
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supportedLanguages[index]
}
