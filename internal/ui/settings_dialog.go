package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nostorage/internal/config"
	"github.com/ytget/nostorage/internal/i18n"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	text     func(key string) string
	onSaved  func()
	dialog   *dialog.ConfirmDialog

	// UI components
	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check

	// languageCodes is parallel to languageSelect.Options
	languageCodes []string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the values were written to settings.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, text func(key string) string, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, window, text, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, text func(key string) string, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		text:     text,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(sd.text(i18n.KeyDownloadDirectory))

	browseDirBtn := widget.NewButton(sd.text(i18n.KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = sortedLanguageCodes(options)
	labels := make([]string, len(sd.languageCodes))
	for i, code := range sd.languageCodes {
		labels[i] = options[code]
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.autoRevealCheck = widget.NewCheck(sd.text(i18n.KeyOpenFolder), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.text(i18n.KeyDownloadDirectory)+":"),
		downloadDirRow,
		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.text(i18n.KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.text(i18n.KeySettings),
		sd.text(i18n.KeySave),
		sd.text(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			return
		}
	}
	sd.languageSelect.ClearSelected()
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.text(i18n.KeySettings), sd.text(i18n.KeySettingsSaved), sd.window)
}

// apply writes the dialog values to settings
func (sd *SettingsDialog) apply() {
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if index := sd.languageSelect.SelectedIndex(); index >= 0 && index < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[index])
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// sortedLanguageCodes orders language codes with "system" first
func sortedLanguageCodes(options map[string]string) []string {
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == i18n.LanguageSystem || codes[j] == i18n.LanguageSystem {
			return codes[i] == i18n.LanguageSystem && codes[j] != i18n.LanguageSystem
		}
		return codes[i] < codes[j]
	})
	return codes
}
