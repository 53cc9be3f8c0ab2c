package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LongVideoThreshold is the duration above which instant streaming may not apply
const LongVideoThreshold = 60 * 60 // seconds

// Mode selects between a quality-specific video download and audio-only output
type Mode string

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known modes
func (m Mode) IsValid() bool {
	return m == ModeVideo || m == ModeAudio
}

// RequiresFormat reports whether a download in this mode needs a selected format.
// Audio mode ignores format selection entirely.
func (m Mode) RequiresFormat() bool {
	return m == ModeVideo
}

// ParseMode converts a string into a Mode
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mode: %q", s)
	}
	return m, nil
}

// Format is one selectable quality/container variant of a media resource
type Format struct {
	FormatID string `json:"format_id"`
	Label    string `json:"label"`
	Filesize *int64 `json:"filesize"`

	// Optional fields reported by the backend; informational only
	Ext      string `json:"ext,omitempty"`
	Height   int    `json:"height,omitempty"`
	VCodec   string `json:"vcodec,omitempty"`
	ACodec   string `json:"acodec,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

// UnmarshalJSON accepts filesize as any JSON number; fractional byte counts
// (approximate sizes) are truncated.
func (f *Format) UnmarshalJSON(data []byte) error {
	type plain Format
	aux := struct {
		*plain
		Filesize *float64 `json:"filesize"`
	}{plain: (*plain)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.Filesize = nil
	if aux.Filesize != nil {
		n := int64(*aux.Filesize)
		f.Filesize = &n
	}
	return nil
}

// SizeLabel returns the human readable file size, or "-" if unknown
func (f *Format) SizeLabel() string {
	if f == nil || f.Filesize == nil {
		return FormatBytes(0)
	}
	return FormatBytes(*f.Filesize)
}

// MediaInfo describes a remote media resource prior to download
type MediaInfo struct {
	Title     string   `json:"title"`
	Thumbnail string   `json:"thumbnail"`
	Duration  *float64 `json:"duration"`
	Formats   []Format `json:"formats"`
}

// HasFormats reports whether any format is available
func (mi *MediaInfo) HasFormats() bool {
	return mi != nil && len(mi.Formats) > 0
}

// DefaultFormatID returns the id of the first format, which is selected by default
func (mi *MediaInfo) DefaultFormatID() string {
	if !mi.HasFormats() {
		return ""
	}
	return mi.Formats[0].FormatID
}

// FindFormat returns the format with the given id
func (mi *MediaInfo) FindFormat(id string) (*Format, bool) {
	if mi == nil || id == "" {
		return nil, false
	}
	for i := range mi.Formats {
		if mi.Formats[i].FormatID == id {
			return &mi.Formats[i], true
		}
	}
	return nil, false
}

// IsTooLong reports whether the media exceeds LongVideoThreshold
func (mi *MediaInfo) IsTooLong() bool {
	return mi != nil && mi.Duration != nil && *mi.Duration > LongVideoThreshold
}

// DurationLabel returns the formatted duration, or "-" if unknown
func (mi *MediaInfo) DurationLabel() string {
	if mi == nil {
		return FormatDuration(nil)
	}
	return FormatDuration(mi.Duration)
}

// DisplayTitle returns the title, falling back to the source URL
func (mi *MediaInfo) DisplayTitle(url string) string {
	if mi != nil && mi.Title != "" {
		return mi.Title
	}
	return url
}

// Clone returns a deep copy so callers never share mutable slices with the controller
func (mi *MediaInfo) Clone() *MediaInfo {
	if mi == nil {
		return nil
	}
	out := *mi
	if mi.Duration != nil {
		d := *mi.Duration
		out.Duration = &d
	}
	if mi.Formats != nil {
		out.Formats = make([]Format, len(mi.Formats))
		copy(out.Formats, mi.Formats)
	}
	return &out
}

// RecentEntry is a record of a previously completed download
type RecentEntry struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}
