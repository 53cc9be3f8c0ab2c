package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nostorage/internal/config"
	"github.com/ytget/nostorage/internal/controller"
	"github.com/ytget/nostorage/internal/i18n"
	"github.com/ytget/nostorage/internal/logger"
	"github.com/ytget/nostorage/internal/model"
	"github.com/ytget/nostorage/internal/platform"
)

// ThumbnailLoader fetches preview images. *api.Client satisfies it.
type ThumbnailLoader interface {
	FetchThumbnail(ctx context.Context, url string) ([]byte, error)
}

// Options configures the root view
type Options struct {
	Window     fyne.Window
	Controller *controller.Controller
	Settings   *config.Settings
	Thumbnails ThumbnailLoader

	// SystemLocale resolves the "system" language choice
	SystemLocale string

	// OnDownloadDirChanged is called after the settings dialog saved a new directory
	OnDownloadDirChanged func(dir string)
}

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	ctrl     *controller.Controller
	settings *config.Settings
	thumbs   ThumbnailLoader
	opts     Options

	ctx    context.Context
	cancel context.CancelFunc

	// rendering suppresses widget change callbacks while state is applied
	rendering bool
	state     controller.State

	// Header
	eyebrowLabel *widget.Label
	titleText    *canvas.Text
	descLabel    *widget.Label
	languageBtn  *widget.Button

	// Form
	modeRadio  *widget.RadioGroup
	urlEntry   *widget.Entry
	pasteBtn   *widget.Button
	getInfoBtn *widget.Button

	// Result card
	resultCard     *widget.Card
	thumbImage     *canvas.Image
	noPreviewLabel *widget.Label
	thumbURL       string
	durationLabel  *widget.Label
	sizeLabel      *widget.Label
	qualityLabel   *widget.Label
	formatSelect   *widget.Select
	selectedLabel  *widget.Label
	audioLabel     *widget.Label
	convertLabel   *widget.Label

	// Download
	downloadSection *fyne.Container
	warningLabel    *widget.Label
	downloadBtn     *widget.Button
	downloadSpinner *widget.ProgressBarInfinite
	revealedPath    string

	// Recent downloads
	recentTitle   *widget.Label
	recentList    *widget.List
	recentThumbs  map[string]fyne.Resource
	recentLoading map[string]bool

	footerLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	revealBtn             *widget.Button
	openBtn               *widget.Button
	revealPath            string
	notificationTimer     *time.Timer
}

// NewRootUI creates the main view and subscribes it to controller updates
func NewRootUI(opts Options) *RootUI {
	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:   opts.Window,
		ctrl:     opts.Controller,
		settings: opts.Settings,
		thumbs:   opts.Thumbnails,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,

		recentThumbs:  make(map[string]fyne.Resource),
		recentLoading: make(map[string]bool),
	}

	ui.setupUI()

	ui.ctrl.SetUpdateCallback(func(state controller.State) {
		fyne.Do(func() { ui.render(state) })
	})
	ui.ctrl.SetNotifyCallback(func(n controller.Notification) {
		fyne.Do(func() { ui.showNotification(n) })
	})

	ui.window.SetOnClosed(cancel)
	ui.render(ui.ctrl.State())

	logger.Log.Debug("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.eyebrowLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.titleText = canvas.NewText("", ColorInk)
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.descLabel = widget.NewLabel("")
	ui.descLabel.Wrapping = fyne.TextWrapWord
	ui.languageBtn = widget.NewButton("", ui.onToggleLanguage)
	ui.languageBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.languageBtn, settingsBtn), ui.eyebrowLabel),
		ui.titleText,
		ui.descLabel,
	)

	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, nil, header)
	}

	ui.modeRadio = widget.NewRadioGroup(nil, ui.onModeChanged)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnChanged = func(text string) {
		if !ui.rendering {
			ui.ctrl.SetURL(text)
		}
	}
	// Enter in the URL field fetches metadata
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onGetInfo()
	}

	ui.pasteBtn = widget.NewButton("", ui.onPaste)
	ui.getInfoBtn = widget.NewButton("", ui.onGetInfo)
	ui.getInfoBtn.Importance = widget.HighImportance

	urlRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.pasteBtn, ui.getInfoBtn), ui.urlEntry)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.revealBtn = widget.NewButton("", ui.onRevealLast)
	ui.revealBtn.Hide()
	ui.openBtn = widget.NewButton("", ui.onOpenLast)
	ui.openBtn.Hide()
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, container.NewHBox(ui.revealBtn, ui.openBtn, closeBtn), ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.createResultCard()
	ui.createDownloadSection()
	ui.createRecentList()

	ui.footerLabel = widget.NewLabel("")
	ui.footerLabel.Wrapping = fyne.TextWrapWord
	ui.footerLabel.Alignment = fyne.TextAlignCenter

	body := container.NewVBox(
		header,
		ui.modeRadio,
		urlRow,
		ui.notificationContainer,
		ui.resultCard,
		ui.downloadSection,
		widget.NewSeparator(),
		ui.recentTitle,
	)

	content := container.NewBorder(
		body,           // top
		ui.footerLabel, // bottom
		nil,            // left
		nil,            // right
		ui.recentList,  // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

func (ui *RootUI) createResultCard() {
	ui.thumbImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.thumbImage.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.thumbImage.Hide()
	ui.noPreviewLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	ui.durationLabel = widget.NewLabel("")
	ui.sizeLabel = widget.NewLabel("")

	ui.qualityLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.formatSelect = widget.NewSelect(nil, ui.onFormatChanged)
	ui.selectedLabel = widget.NewLabel("")

	ui.audioLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.convertLabel = widget.NewLabel("")
	ui.convertLabel.Wrapping = fyne.TextWrapWord

	ui.resultCard = widget.NewCard("", "", container.NewVBox(
		container.NewStack(ui.noPreviewLabel, ui.thumbImage),
		container.NewHBox(ui.durationLabel, ui.sizeLabel),
		ui.qualityLabel,
		ui.formatSelect,
		ui.selectedLabel,
		ui.audioLabel,
		ui.convertLabel,
	))
	ui.resultCard.Hide()
}

func (ui *RootUI) createDownloadSection() {
	ui.warningLabel = widget.NewLabel("")
	ui.warningLabel.Importance = widget.WarningImportance
	ui.warningLabel.Wrapping = fyne.TextWrapWord

	ui.downloadBtn = widget.NewButton("", ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.downloadSpinner = widget.NewProgressBarInfinite()
	ui.downloadSpinner.Stop()
	ui.downloadSpinner.Hide()

	ui.downloadSection = container.NewVBox(ui.warningLabel, ui.downloadBtn, ui.downloadSpinner)
	ui.downloadSection.Hide()
}

func (ui *RootUI) createRecentList() {
	ui.recentTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.recentList = widget.NewList(
		func() int {
			return len(ui.state.Recent)
		},
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			source := widget.NewLabel("")
			source.Truncation = fyne.TextTruncateEllipsis
			source.TextStyle = fyne.TextStyle{Italic: true}
			reload := widget.NewButton(IconReload, nil)
			reload.Importance = widget.LowImportance
			thumb := &canvas.Image{FillMode: canvas.ImageFillContain}
			thumb.SetMinSize(fyne.NewSize(RecentThumbWidth, RecentRowHeight))
			return container.NewBorder(nil, nil, thumb, reload, container.NewVBox(title, source))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateRecentItem(id, obj)
		},
	)
	ui.recentList.OnSelected = func(id widget.ListItemID) {
		ui.recentList.UnselectAll()
		ui.onReload(id)
	}
}

func (ui *RootUI) updateRecentItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ui.state.Recent) {
		return
	}
	entry := ui.state.Recent[id]

	row := obj.(*fyne.Container)
	texts := row.Objects[0].(*fyne.Container)
	texts.Objects[0].(*widget.Label).SetText(entry.Title)
	texts.Objects[1].(*widget.Label).SetText(entry.URL + MiddleDotSeparator + ui.ctrl.Text(i18n.KeyTapToReload))

	thumb := row.Objects[1].(*canvas.Image)
	thumb.Resource = ui.recentThumbnail(entry.Thumbnail)
	thumb.Refresh()

	reload := row.Objects[2].(*widget.Button)
	reload.OnTapped = func() { ui.onReload(id) }
}

// recentThumbnail returns the cached preview of a recent entry, starting a
// background fetch on first use. Rows refresh when it arrives.
func (ui *RootUI) recentThumbnail(url string) fyne.Resource {
	if url == "" {
		return nil
	}
	if res, ok := ui.recentThumbs[url]; ok {
		return res
	}
	if ui.thumbs == nil || ui.recentLoading[url] {
		return nil
	}
	ui.recentLoading[url] = true

	go func() {
		data, err := ui.thumbs.FetchThumbnail(ui.ctx, url)
		fyne.Do(func() {
			delete(ui.recentLoading, url)
			if err != nil || len(data) == 0 {
				logger.Log.Debugw("recent thumbnail unavailable", "url", url, "error", err)
				ui.recentThumbs[url] = nil
				return
			}
			ui.recentThumbs[url] = fyne.NewStaticResource("recent-thumbnail", data)
			ui.recentList.Refresh()
		})
	}()
	return nil
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.ctrl.Text(i18n.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.ctrl.Text(i18n.KeyLanguage))
	current := ui.settings.GetLanguage()
	for _, code := range sortedLanguageCodes(ui.settings.GetLanguageOptions()) {
		langCode := code
		name := ui.settings.GetLanguageOptions()[code]
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.ctrl.Text(i18n.KeyFile), settingsItem),
		languageMenu,
	))
}

// render applies a state snapshot to the widgets. Must run on the UI goroutine.
func (ui *RootUI) render(state controller.State) {
	ui.rendering = true
	defer func() { ui.rendering = false }()

	languageChanged := state.Language != ui.state.Language
	ui.state = state
	t := ui.ctrl.Text

	ui.window.SetTitle(t(i18n.KeyTitle))
	ui.eyebrowLabel.SetText(t(i18n.KeyEyebrow))
	ui.titleText.Text = t(i18n.KeyTitle)
	ui.titleText.Refresh()
	ui.descLabel.SetText(t(i18n.KeyDescription))
	ui.languageBtn.SetText(t(i18n.KeyLanguageToggle))
	ui.urlEntry.SetPlaceHolder(t(i18n.KeyPastePlaceholder))
	ui.pasteBtn.SetText(t(i18n.KeyPaste))
	ui.revealBtn.SetText(IconFolder + " " + t(i18n.KeyOpenFolder))
	ui.openBtn.SetText(t(i18n.KeyOpenFile))
	ui.recentTitle.SetText(t(i18n.KeyRecentDownloads))
	ui.footerLabel.SetText(t(i18n.KeyFooter))
	if languageChanged {
		ui.createMenu()
	}

	ui.renderMode(state)
	ui.renderFetch(state)
	ui.renderResult(state)
	ui.renderDownload(state)

	if len(state.Recent) == 0 {
		ui.recentTitle.Hide()
		ui.recentList.Hide()
	} else {
		ui.recentTitle.Show()
		ui.recentList.Show()
	}
	ui.recentList.Refresh()
}

func (ui *RootUI) renderMode(state controller.State) {
	video, audio := ui.ctrl.Text(i18n.KeyVideo), ui.ctrl.Text(i18n.KeyAudioOnly)
	ui.modeRadio.Options = []string{video, audio}
	if state.Mode == model.ModeAudio {
		ui.modeRadio.Selected = audio
	} else {
		ui.modeRadio.Selected = video
	}
	ui.modeRadio.Refresh()
}

func (ui *RootUI) renderFetch(state controller.State) {
	if state.FetchState.IsActive() {
		ui.getInfoBtn.SetText(ui.ctrl.Text(i18n.KeyFetching))
		ui.getInfoBtn.Disable()
		return
	}

	ui.getInfoBtn.SetText(ui.ctrl.Text(i18n.KeyGetInfo))
	if strings.TrimSpace(state.URL) == "" {
		ui.getInfoBtn.Disable()
	} else {
		ui.getInfoBtn.Enable()
	}
}

func (ui *RootUI) renderResult(state controller.State) {
	info := state.Info
	if info == nil {
		ui.resultCard.Hide()
		ui.loadThumbnail("")
		return
	}

	ui.resultCard.SetTitle(info.DisplayTitle(state.URL))
	ui.resultCard.SetSubTitle(ui.ctrl.Text(i18n.KeyResultCard))
	ui.noPreviewLabel.SetText(ui.ctrl.Text(i18n.KeyNoPreview))
	ui.loadThumbnail(info.Thumbnail)

	ui.durationLabel.SetText(fmt.Sprintf(ChipFormat, ui.ctrl.Text(i18n.KeyDuration), info.DurationLabel()))

	selected, hasSelection := state.Selected()
	ui.sizeLabel.SetText(fmt.Sprintf(ChipFormat, ui.ctrl.Text(i18n.KeySize), selected.SizeLabel()))

	if state.Mode == model.ModeAudio {
		ui.qualityLabel.Hide()
		ui.formatSelect.Hide()
		ui.selectedLabel.Hide()
		ui.audioLabel.SetText(IconMusic + " " + ui.ctrl.Text(i18n.KeyAudioOutput))
		ui.convertLabel.SetText(ui.ctrl.Text(i18n.KeyConverting))
		ui.audioLabel.Show()
		ui.convertLabel.Show()
	} else {
		ui.audioLabel.Hide()
		ui.convertLabel.Hide()

		labels := make([]string, len(info.Formats))
		selectedIndex := -1
		for i, f := range info.Formats {
			labels[i] = f.Label
			if f.FormatID == state.SelectedFormat {
				selectedIndex = i
			}
		}
		ui.qualityLabel.SetText(ui.ctrl.Text(i18n.KeyChooseQuality))
		ui.formatSelect.Options = labels
		if selectedIndex >= 0 {
			ui.formatSelect.SetSelectedIndex(selectedIndex)
		} else {
			ui.formatSelect.ClearSelected()
		}
		ui.formatSelect.Refresh()

		if hasSelection {
			ui.selectedLabel.SetText(fmt.Sprintf(ChipFormat, ui.ctrl.Text(i18n.KeySelected), selected.Label))
			ui.selectedLabel.Show()
		} else {
			ui.selectedLabel.Hide()
		}
		ui.qualityLabel.Show()
		ui.formatSelect.Show()
	}

	ui.resultCard.Show()
}

func (ui *RootUI) renderDownload(state controller.State) {
	if state.Info == nil && state.Mode != model.ModeAudio {
		ui.downloadSection.Hide()
		return
	}

	if warning := ui.ctrl.Warning(); warning != "" {
		ui.warningLabel.SetText(IconWarning + " " + warning)
		ui.warningLabel.Show()
	} else {
		ui.warningLabel.Hide()
	}

	switch {
	case state.DownloadState.IsActive():
		ui.downloadBtn.SetText(ui.ctrl.Text(i18n.KeyPreparing))
		ui.downloadSpinner.Show()
		ui.downloadSpinner.Start()
	case state.Mode == model.ModeAudio:
		ui.downloadBtn.SetText(ui.ctrl.Text(i18n.KeyDownloadMP3))
		ui.stopSpinner()
	default:
		ui.downloadBtn.SetText(ui.ctrl.Text(i18n.KeyDownload))
		ui.stopSpinner()
	}

	if state.CanDownload() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	if state.DownloadState == model.DownloadStateDone && state.LastPath != "" && state.LastPath != ui.revealedPath {
		ui.revealedPath = state.LastPath
		if ui.settings.GetAutoRevealOnComplete() {
			ui.revealFile(state.LastPath)
		}
	}

	ui.downloadSection.Show()
}

func (ui *RootUI) stopSpinner() {
	ui.downloadSpinner.Stop()
	ui.downloadSpinner.Hide()
}

// loadThumbnail shows the preview for url, fetching it in the background.
// A response for a url that is no longer current is dropped.
func (ui *RootUI) loadThumbnail(url string) {
	if url == ui.thumbURL {
		return
	}
	ui.thumbURL = url
	ui.thumbImage.Hide()
	ui.noPreviewLabel.Show()

	if url == "" || ui.thumbs == nil {
		return
	}

	go func() {
		data, err := ui.thumbs.FetchThumbnail(ui.ctx, url)
		fyne.Do(func() {
			if ui.thumbURL != url {
				return
			}
			if err != nil || len(data) == 0 {
				logger.Log.Debugw("thumbnail unavailable", "url", url, "error", err)
				return
			}
			ui.thumbImage.Resource = fyne.NewStaticResource("thumbnail", data)
			ui.thumbImage.Refresh()
			ui.thumbImage.Show()
			ui.noPreviewLabel.Hide()
		})
	}()
}

func (ui *RootUI) onModeChanged(selected string) {
	if ui.rendering || selected == "" {
		return
	}
	mode := model.ModeVideo
	if selected == ui.ctrl.Text(i18n.KeyAudioOnly) {
		mode = model.ModeAudio
	}
	if err := ui.ctrl.SetMode(mode); err != nil {
		logger.Log.Warnw("mode change rejected", "mode", mode, "error", err)
		return
	}
	ui.settings.SetLastMode(mode.String())
}

func (ui *RootUI) onFormatChanged(string) {
	if ui.rendering {
		return
	}
	index := ui.formatSelect.SelectedIndex()
	info := ui.state.Info
	if info == nil || index < 0 || index >= len(info.Formats) {
		return
	}
	if err := ui.ctrl.SelectFormat(info.Formats[index].FormatID); err != nil {
		logger.Log.Warnw("format selection rejected", "error", err)
	}
}

// onPaste reads the clipboard on the UI goroutine and mirrors the result into the entry
func (ui *RootUI) onPaste() {
	if err := ui.ctrl.Paste(); err != nil {
		return
	}
	ui.setEntryText(ui.ctrl.State().URL)
}

func (ui *RootUI) onGetInfo() {
	go func() {
		_ = ui.ctrl.Fetch(ui.ctx, "")
	}()
}

func (ui *RootUI) onReload(id widget.ListItemID) {
	if id < 0 || id >= len(ui.state.Recent) {
		return
	}
	entry := ui.state.Recent[id]
	ui.setEntryText(entry.URL)

	go func() {
		_ = ui.ctrl.Reload(ui.ctx, entry)
	}()
}

func (ui *RootUI) onDownload() {
	ui.hideNotification()
	go func() {
		_ = ui.ctrl.Download(ui.ctx)
	}()
}

func (ui *RootUI) setEntryText(text string) {
	if ui.urlEntry.Text != text {
		ui.urlEntry.SetText(text)
	}
}

// onToggleLanguage handles the EN / RU button
func (ui *RootUI) onToggleLanguage() {
	lang := ui.ctrl.ToggleLanguage()
	ui.settings.SetLanguage(lang)
}

// onLanguageChange handles a language picked from the menu or settings
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.ctrl.SetLanguage(i18n.ResolveLanguage(langCode, ui.opts.SystemLocale))
	ui.createMenu()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	previousDir := ui.settings.GetDownloadDirectory()
	ShowSettingsDialog(ui.window, ui.settings, ui.ctrl.Text, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())

		dir := ui.settings.GetDownloadDirectory()
		if dir != previousDir && ui.opts.OnDownloadDirChanged != nil {
			ui.opts.OnDownloadDirChanged(dir)
		}
	})
}

// showNotification shows a message in the panel under the URL row
func (ui *RootUI) showNotification(n controller.Notification) {
	ui.notificationLabel.SetText(n.Message)
	switch n.Kind {
	case controller.NotifyError:
		ui.notificationLabel.Importance = widget.DangerImportance
	case controller.NotifySuccess:
		ui.notificationLabel.Importance = widget.SuccessImportance
	default:
		ui.notificationLabel.Importance = widget.MediumImportance
	}
	ui.notificationLabel.Refresh()

	if n.Path != "" {
		ui.revealPath = n.Path
		ui.revealBtn.Show()
		ui.openBtn.Show()
	} else {
		ui.revealBtn.Hide()
		ui.openBtn.Hide()
	}
	ui.notificationContainer.Show()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

func (ui *RootUI) onRevealLast() {
	ui.revealFile(ui.revealPath)
}

func (ui *RootUI) onOpenLast() {
	if err := platform.OpenFileWithDefaultApp(ui.revealPath); err != nil {
		logger.Log.Warnw("open failed", "path", ui.revealPath, "error", err)
		ui.showNotification(controller.Notification{
			Kind:    controller.NotifyError,
			Message: ui.ctrl.Text(i18n.KeyErrorOpeningFile) + ": " + err.Error(),
		})
	}
}

// revealFile shows a saved download in the system file manager
func (ui *RootUI) revealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		logger.Log.Warnw("reveal failed", "path", filePath, "error", err)
		ui.showNotification(controller.Notification{
			Kind:    controller.NotifyError,
			Message: ui.ctrl.Text(i18n.KeyErrorOpeningFile) + ": " + err.Error(),
		})
	}
}
