package i18n

// Package i18n holds the static translation table of the client and the pure
// lookup over it. Missing languages or keys fall back to the key itself.
