package platform

// Package platform contains OS integration glue: the user's Downloads
// directory, directory creation, and opening or revealing exported files.
