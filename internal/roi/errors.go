package roi

import "errors"

var (
	ErrNotFound          = errors.New("roi calculation not found")
	ErrWriteNotConfirmed = errors.New("roi calculation write not confirmed")
)
