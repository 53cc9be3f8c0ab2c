package platform

// Package platform contains OS integration glue: the downloads directory,
// safe file names for server-supplied names, and OS open/reveal of saved files.
