package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyText            = errors.New("input text is empty")
	ErrSynthesisUnavailable = errors.New("speech synthesis unavailable")
)
