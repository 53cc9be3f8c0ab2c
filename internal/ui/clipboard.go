package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/nostorage/internal/controller"
)

// Clipboard adapts the Fyne clipboard to controller.Clipboard.
// Content must be read on the UI goroutine.
type Clipboard struct {
	clipboard fyne.Clipboard
}

// NewClipboard returns a clipboard for app, or nil when the driver has none
func NewClipboard(app fyne.App) controller.Clipboard {
	if app == nil {
		return nil
	}
	cb := app.Clipboard()
	if cb == nil {
		return nil
	}
	return &Clipboard{clipboard: cb}
}

// ReadText returns the clipboard text. The Fyne clipboard cannot fail, so the
// error is always nil; the controller's read-error branch serves other
// controller.Clipboard implementations.
func (c *Clipboard) ReadText() (string, error) {
	return c.clipboard.Content(), nil
}
