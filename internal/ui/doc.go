package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders controller state snapshots (form, result card, recent downloads),
// forwards user input to the controller and shows notifications and settings.
// All UI strings come from the i18n table through the controller.
