package api

// Package api is the client of the no-storage download backend. It wraps the
// metadata fetch (POST /api/info) and the download trigger (POST /api/download)
// behind typed requests and responses, normalizes error responses into
// RequestError, resolves the download file name from Content-Disposition and
// saves the streamed body to disk. It is the only package that touches the
// network or writes downloaded files.
