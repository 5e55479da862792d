package apperr

import "errors"

var (
	ErrLocked       = errors.New("another run holds the lock")
	ErrNotDirectory = errors.New("not a directory")
	ErrOutsideRoot  = errors.New("path escapes root")
	ErrInvalidName  = errors.New("file name is not valid UTF-8")
)
