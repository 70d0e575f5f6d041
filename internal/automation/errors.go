package automation

import "errors"

var (
	ErrNotFound          = errors.New("automation assessment not found")
	ErrWriteNotConfirmed = errors.New("automation assessment write not confirmed")
)
