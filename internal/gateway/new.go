package gateway

import (
	"omnixius-ai/pkg/backend"
	"omnixius-ai/pkg/log"
)

type implGateway struct {
	backend backend.IBackend
	l       log.Logger
}

var _ Gateway = (*implGateway)(nil)

// New creates a Gateway over the backend client.
func New(b backend.IBackend, l log.Logger) *implGateway {
	return &implGateway{
		backend: b,
		l:       l,
	}
}
