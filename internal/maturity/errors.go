package maturity

import "errors"

var (
	ErrNotFound          = errors.New("assessment not found")
	ErrWriteNotConfirmed = errors.New("assessment write not confirmed")
)
