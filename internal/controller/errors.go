package controller

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a download is requested while another is running
	ErrBusy = errors.New("controller: download already in progress")

	// ErrUnknownFormat is returned when selecting a format id the media does not offer
	ErrUnknownFormat = errors.New("controller: unknown format")

	// ErrSuperseded is returned by a fetch whose response arrived after a newer fetch started
	ErrSuperseded = errors.New("controller: fetch superseded by a newer request")
)

// ValidationError is a user-visible, non-fatal input problem. Key is the
// localization key of the message shown to the user.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Key)
}

// CapabilityError reports a feature the environment does not provide
type CapabilityError struct {
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s is not available", e.Capability)
}
