package model

// Package model defines the client's domain data: media metadata and formats as
// returned by the backend, recent-download entries, the download mode, and the
// fetch/download state enums driven by the controller. It also holds the pure
// formatting helpers used to label sizes and durations in the UI.
