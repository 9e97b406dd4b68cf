package kvstore

import "errors"

var (
	// ErrEmptyKey indicates a blank key was passed to Set or Delete.
	ErrEmptyKey = errors.New("kvstore.empty_key")

	// ErrLocked indicates the file lock could not be acquired.
	ErrLocked = errors.New("kvstore.locked")

	// ErrDecode indicates the backing file is not a flat YAML mapping.
	ErrDecode = errors.New("kvstore.decode_failed")

	// ErrWrite indicates the backing file could not be written.
	ErrWrite = errors.New("kvstore.write_failed")
)
