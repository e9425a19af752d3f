package chat

import "errors"

var (
	ErrInvalidPayload = errors.New("invalid chat payload")
)
