package live

import "errors"

var (
	ErrInvalidExtractionUrl = errors.New("invalid extraction url")
	ErrRoomUrlIncorrect     = errors.New("room url incorrect")
)
