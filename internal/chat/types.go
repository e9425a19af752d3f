package chat

import (
	"omnixius-ai/internal/router"
	"omnixius-ai/pkg/backend"
)

// --- UseCase Inputs ---

// ReplyInput is one chat request. It lives for a single call and is never stored.
type ReplyInput struct {
	Message string
	// Module is a client supplied tag. It is accepted for compatibility and not used.
	Module         string
	Token          string
	BackendBaseURL string
}

// Credentials returns the caller's backend credentials.
func (in ReplyInput) Credentials() backend.Credentials {
	return backend.Credentials{
		Token:   in.Token,
		BaseURL: in.BackendBaseURL,
	}
}

// --- UseCase Outputs ---

type ReplyOutput struct {
	Text   string
	Model  string
	Intent router.Intent
}
