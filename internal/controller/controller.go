package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ytget/nostorage/internal/api"
	"github.com/ytget/nostorage/internal/i18n"
	"github.com/ytget/nostorage/internal/logger"
	"github.com/ytget/nostorage/internal/model"
)

// InfoFetcher retrieves media metadata. *api.Client satisfies it.
type InfoFetcher interface {
	FetchInfo(ctx context.Context, url string) (*model.MediaInfo, error)
}

// VideoDownloader streams a download to disk. *api.Client satisfies it.
type VideoDownloader interface {
	Download(ctx context.Context, req api.DownloadRequest) (*api.DownloadResult, error)
}

// RecentStore keeps completed downloads. *recent.Store satisfies it.
type RecentStore interface {
	Entries() []model.RecentEntry
	Add(entry model.RecentEntry) []model.RecentEntry
}

// Clipboard reads text from the system clipboard
type Clipboard interface {
	ReadText() (string, error)
}

// Translator resolves localized texts. *i18n.Localization satisfies it.
type Translator interface {
	Text(key string) string
	SetLanguage(lang string)
	CurrentLanguage() string
	Toggle() string
}

// Deps bundles the collaborators of a Controller. Clipboard may be nil.
type Deps struct {
	Fetcher    InfoFetcher
	Downloader VideoDownloader
	Recent     RecentStore
	Clipboard  Clipboard
	Translator Translator
}

// Controller owns the client state. All methods are safe for concurrent use;
// callbacks are invoked outside the internal lock.
type Controller struct {
	mu    sync.Mutex
	deps  Deps
	state State

	// fetchSeq identifies the latest fetch; older responses are discarded
	fetchSeq uint64

	onUpdate func(State)
	onNotify func(Notification)
}

// New creates a controller in the idle state, seeded with the stored recent list
func New(deps Deps) *Controller {
	if deps.Translator == nil {
		deps.Translator = i18n.NewLocalization()
	}

	c := &Controller{deps: deps}
	c.state = State{
		Mode:          model.ModeVideo,
		FetchState:    model.FetchStateIdle,
		DownloadState: model.DownloadStateIdle,
		Language:      deps.Translator.CurrentLanguage(),
	}
	if deps.Recent != nil {
		c.state.Recent = deps.Recent.Entries()
	}
	return c
}

// SetUpdateCallback sets the function receiving a snapshot after every state change
func (c *Controller) SetUpdateCallback(callback func(State)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetNotifyCallback sets the function receiving user notifications
func (c *Controller) SetNotifyCallback(callback func(Notification)) {
	c.mu.Lock()
	c.onNotify = callback
	c.mu.Unlock()
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Text returns localized text in the current language
func (c *Controller) Text(key string) string {
	return c.deps.Translator.Text(key)
}

// SetURL updates the url field
func (c *Controller) SetURL(url string) {
	c.mutate(func(s *State) { s.URL = url })
}

// SetMode switches between video and audio download
func (c *Controller) SetMode(mode model.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid mode: %q", mode)
	}
	c.mutate(func(s *State) { s.Mode = mode })
	return nil
}

// SelectFormat selects a format offered by the current media
func (c *Controller) SelectFormat(formatID string) error {
	c.mu.Lock()
	if _, ok := c.state.Info.FindFormat(formatID); !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownFormat, formatID)
	}
	c.state.SelectedFormat = formatID
	c.mu.Unlock()

	c.emitUpdate()
	return nil
}

// SetLanguage switches the UI language. Unsupported codes leave it unchanged.
func (c *Controller) SetLanguage(lang string) string {
	c.deps.Translator.SetLanguage(lang)
	current := c.deps.Translator.CurrentLanguage()
	c.mutate(func(s *State) { s.Language = current })
	return current
}

// ToggleLanguage flips between English and Russian
func (c *Controller) ToggleLanguage() string {
	current := c.deps.Translator.Toggle()
	c.mutate(func(s *State) { s.Language = current })
	return current
}

// Warning returns the advisory for the current media, or "" when none applies.
// It never blocks a download.
func (c *Controller) Warning() string {
	c.mu.Lock()
	tooLong := c.state.Info.IsTooLong()
	c.mu.Unlock()

	if tooLong {
		return c.Text(i18n.KeyVideoTooLong)
	}
	return ""
}

// Fetch requests metadata for overrideURL, or for the url field when overrideURL
// is empty. Only the latest fetch may change state: a response that arrives after
// a newer Fetch started is dropped and ErrSuperseded is returned.
func (c *Controller) Fetch(ctx context.Context, overrideURL string) error {
	c.mu.Lock()
	target := strings.TrimSpace(overrideURL)
	if target == "" {
		target = strings.TrimSpace(c.state.URL)
	}
	if target == "" {
		c.mu.Unlock()
		return c.reject(i18n.KeyErrorPasteURL)
	}

	c.fetchSeq++
	seq := c.fetchSeq
	c.state.FetchState = model.FetchStateFetching
	c.state.Info = nil
	c.state.SelectedFormat = ""
	c.mu.Unlock()
	c.emitUpdate()

	info, err := c.deps.Fetcher.FetchInfo(ctx, target)

	c.mu.Lock()
	if seq != c.fetchSeq {
		c.mu.Unlock()
		logger.Log.Debugw("discarding stale info response", "url", target, "seq", seq)
		return ErrSuperseded
	}
	if err != nil {
		c.state.Info = nil
		c.state.FetchState = model.FetchStateError
		c.mu.Unlock()
		c.emitUpdate()
		c.fail(err, i18n.KeyErrorFetch, "fetch info failed", target)
		return err
	}

	c.state.Info = info.Clone()
	c.state.SelectedFormat = info.DefaultFormatID()
	c.state.URL = target
	c.state.FetchState = model.FetchStateReady
	c.mu.Unlock()
	c.emitUpdate()
	return nil
}

// Reload fetches the metadata of a recent entry again
func (c *Controller) Reload(ctx context.Context, entry model.RecentEntry) error {
	return c.Fetch(ctx, entry.URL)
}

// Download requests the file for the current url, mode and selection. Video
// mode requires a selected format; audio mode ignores the selection.
func (c *Controller) Download(ctx context.Context) error {
	c.mu.Lock()
	if c.state.DownloadState.IsActive() {
		c.mu.Unlock()
		return ErrBusy
	}
	mode := c.state.Mode
	url := strings.TrimSpace(c.state.URL)
	formatID := c.state.SelectedFormat
	if mode.RequiresFormat() && formatID == "" {
		c.mu.Unlock()
		return c.reject(i18n.KeyErrorSelectQuality)
	}
	if url == "" {
		c.mu.Unlock()
		return c.reject(i18n.KeyErrorPasteURL)
	}
	if !mode.RequiresFormat() {
		formatID = ""
	}
	info := c.state.Info.Clone()
	c.state.DownloadState = model.DownloadStateDownloading
	c.mu.Unlock()
	c.emitUpdate()

	result, err := c.deps.Downloader.Download(ctx, api.DownloadRequest{
		URL:      url,
		FormatID: formatID,
		Mode:     mode,
	})
	if err != nil {
		c.mutate(func(s *State) { s.DownloadState = model.DownloadStateError })
		c.fail(err, i18n.KeyErrorDownload, "download failed", url)
		return err
	}

	entry := model.RecentEntry{
		URL:   url,
		Title: info.DisplayTitle(url),
	}
	if info != nil {
		entry.Thumbnail = info.Thumbnail
	}

	var recent []model.RecentEntry
	if c.deps.Recent != nil {
		recent = c.deps.Recent.Add(entry)
	}

	c.mutate(func(s *State) {
		s.DownloadState = model.DownloadStateDone
		s.LastFileName = result.FileName
		s.LastPath = result.Path
		if c.deps.Recent != nil {
			s.Recent = recent
		}
	})

	logger.Log.Debugw("recent download recorded", "url", url, "title", entry.Title)
	c.publish(Notification{
		Kind:    NotifySuccess,
		Message: fmt.Sprintf("%s %s", c.Text(i18n.KeySuccessDownload), result.FileName),
		Path:    result.Path,
	})
	return nil
}

// Paste fills the url field from the clipboard
func (c *Controller) Paste() error {
	if c.deps.Clipboard == nil {
		c.notify(NotifyError, c.Text(i18n.KeyErrorClipboardUnsupported))
		return &CapabilityError{Capability: "clipboard"}
	}

	text, err := c.deps.Clipboard.ReadText()
	if err != nil {
		logger.Log.Warnw("clipboard read failed", "error", err)
		c.notify(NotifyError, c.Text(i18n.KeyErrorClipboardRead))
		return fmt.Errorf("read clipboard: %w", err)
	}

	c.mutate(func(s *State) { s.URL = text })
	if text != "" {
		c.notify(NotifySuccess, c.Text(i18n.KeySuccessClipboard))
	}
	return nil
}

// ErrorMessage returns the text shown to the user for err: the server's own
// message for request errors, otherwise the localized fallback.
func (c *Controller) ErrorMessage(err error, fallbackKey string) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return c.Text(valErr.Key)
	}
	return c.Text(fallbackKey)
}

func (c *Controller) reject(key string) error {
	c.notify(NotifyError, c.Text(key))
	return &ValidationError{Key: key}
}

func (c *Controller) fail(err error, fallbackKey, msg, url string) {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		logger.Log.Warnw(msg, "url", url, "status", reqErr.Status, "request_id", reqErr.RequestID, "error", err)
	} else {
		logger.Log.Errorw(msg, "url", url, "error", err)
	}
	c.notify(NotifyError, c.ErrorMessage(err, fallbackKey))
}

func (c *Controller) mutate(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
	c.emitUpdate()
}

func (c *Controller) emitUpdate() {
	c.mu.Lock()
	callback := c.onUpdate
	snapshot := c.state.clone()
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

func (c *Controller) notify(kind NotificationKind, message string) {
	c.publish(Notification{Kind: kind, Message: message})
}

func (c *Controller) publish(n Notification) {
	c.mu.Lock()
	callback := c.onNotify
	c.mu.Unlock()

	if callback != nil {
		callback(n)
	}
}
