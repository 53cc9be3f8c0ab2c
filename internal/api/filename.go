package api

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultFileName is used when Content-Disposition names no file
const DefaultFileName = "video"

var (
	extendedFileNameRe = regexp.MustCompile(`(?i)filename\*=UTF-8''([^;]+)`)
	plainFileNameRe    = regexp.MustCompile(`(?i)filename="?([^";]+)"?`)
)

// ParseFileName resolves the download file name from a Content-Disposition header.
// The RFC 5987 filename* parameter wins over filename=; both are percent-decoded.
// A value that fails to decode is returned as is.
func ParseFileName(contentDisposition string) string {
	var raw string
	if m := extendedFileNameRe.FindStringSubmatch(contentDisposition); m != nil {
		raw = m[1]
	} else if m := plainFileNameRe.FindStringSubmatch(contentDisposition); m != nil {
		raw = m[1]
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultFileName
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
