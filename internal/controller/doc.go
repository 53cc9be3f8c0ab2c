// Package controller holds the client's form state and orchestrates metadata
// fetches, downloads, clipboard paste and the recent-downloads list. The view
// renders State snapshots delivered through the update callback.
package controller
