package model

// FetchState represents the progress of a metadata fetch
type FetchState string

const (
	// FetchStateIdle means no fetch has been issued yet
	FetchStateIdle FetchState = "Idle"

	// FetchStateFetching means a metadata request is in flight
	FetchStateFetching FetchState = "Fetching"

	// FetchStateReady means metadata was received and formats are populated
	FetchStateReady FetchState = "Ready"

	// FetchStateError means the last fetch failed
	FetchStateError FetchState = "Error"
)

// String returns the string representation of FetchState
func (fs FetchState) String() string {
	return string(fs)
}

// IsActive returns true while a fetch is in flight
func (fs FetchState) IsActive() bool {
	return fs == FetchStateFetching
}

// IsFinished returns true if the fetch resolved (ready or error)
func (fs FetchState) IsFinished() bool {
	return fs == FetchStateReady || fs == FetchStateError
}

// DownloadState represents the progress of a download action
type DownloadState string

const (
	// DownloadStateIdle means no download has been triggered yet
	DownloadStateIdle DownloadState = "Idle"

	// DownloadStateDownloading means the download stream is being saved
	DownloadStateDownloading DownloadState = "Downloading"

	// DownloadStateDone means the last download was saved successfully
	DownloadStateDone DownloadState = "Done"

	// DownloadStateError means the last download failed
	DownloadStateError DownloadState = "Error"
)

// String returns the string representation of DownloadState
func (ds DownloadState) String() string {
	return string(ds)
}

// IsActive returns true while a download is in flight
func (ds DownloadState) IsActive() bool {
	return ds == DownloadStateDownloading
}

// IsFinished returns true if the download resolved (done or error)
func (ds DownloadState) IsFinished() bool {
	return ds == DownloadStateDone || ds == DownloadStateError
}
