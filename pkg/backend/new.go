package backend

import (
	"net/http"
	"time"
)

type implBackend struct {
	timeout   time.Duration
	transport http.RoundTripper
}

var _ IBackend = (*implBackend)(nil)

// New creates a backend client.
func New(cfg Config) IBackend {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &implBackend{
		timeout:   timeout,
		transport: transport,
	}
}
