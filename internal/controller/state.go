package controller

import "github.com/ytget/nostorage/internal/model"

// State is an immutable snapshot of the form and request state
type State struct {
	URL            string
	Mode           model.Mode
	Info           *model.MediaInfo
	SelectedFormat string
	FetchState     model.FetchState
	DownloadState  model.DownloadState
	Recent         []model.RecentEntry
	Language       string

	// LastFileName and LastPath describe the most recent successful download
	LastFileName string
	LastPath     string
}

// Selected returns the currently selected format, if any
func (s State) Selected() (*model.Format, bool) {
	return s.Info.FindFormat(s.SelectedFormat)
}

// CanDownload mirrors the enabled state of the download trigger
func (s State) CanDownload() bool {
	if s.DownloadState.IsActive() {
		return false
	}
	if s.Mode.RequiresFormat() {
		return s.SelectedFormat != ""
	}
	return true
}

// NotificationKind classifies a toast message
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifySuccess
	NotifyError
)

// Notification is a transient message for the user
type Notification struct {
	Kind    NotificationKind
	Message string

	// Path is set for a completed download
	Path string
}

func (s State) clone() State {
	out := s
	out.Info = s.Info.Clone()
	if s.Recent != nil {
		out.Recent = make([]model.RecentEntry, len(s.Recent))
		copy(out.Recent, s.Recent)
	}
	return out
}
