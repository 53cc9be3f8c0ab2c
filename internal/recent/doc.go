package recent

// Package recent keeps the list of recently completed downloads in the client's
// preference storage so they can be re-fetched with one tap.
