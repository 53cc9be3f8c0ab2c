package platform

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFileName is used when a name is empty after sanitizing
const DefaultFileName = "video"

// MaxFileNameLength limits the sanitized name in bytes
const MaxFileNameLength = 200

// reservedChars are rejected by at least one supported filesystem
const reservedChars = `<>:"/\|?*`

// SafeFileName reduces a server-supplied file name to a single path element
// that is safe to create inside the downloads directory.
func SafeFileName(name string) string {
	// Drop any directory part, whichever separator the server used
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(filepath.FromSlash(name))
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsControl(r):
			continue
		case strings.ContainsRune(reservedChars, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(strings.TrimSpace(b.String()), ".")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return DefaultFileName
	}

	if len(cleaned) > MaxFileNameLength {
		ext := filepath.Ext(cleaned)
		if len(ext) > 16 {
			ext = ""
		}
		cleaned = truncateUTF8(cleaned[:len(cleaned)-len(ext)], MaxFileNameLength-len(ext)) + ext
	}

	return cleaned
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
