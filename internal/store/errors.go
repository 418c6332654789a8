package store

import "errors"

// Sentinel errors for the store's failure taxonomy. Callers match with
// errors.Is; wrapped messages carry the offending value.
var (
	// ErrTitleRequired is returned by Add and Edit when the song title is
	// empty or whitespace.
	ErrTitleRequired = errors.New("song title is required")

	// ErrIndexOutOfRange is returned by Get, Edit and Delete when the index
	// does not address an existing song.
	ErrIndexOutOfRange = errors.New("song index out of range")

	// ErrCorruptFile is returned by Load when the songs file exists but is
	// not a JSON array of songs.
	ErrCorruptFile = errors.New("songs file is corrupt")
)
