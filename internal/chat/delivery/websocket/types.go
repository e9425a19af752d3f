package websocket

import (
	"time"

	"omnixius-ai/internal/chat"
)

const (
	maxFrameBytes = 64 << 10
	writeTimeout  = 10 * time.Second
	idleTimeout   = 5 * time.Minute

	LogPrefixServe = "internal.chat.delivery.websocket.Serve"
)

// chatFrame is one inbound message. ID is echoed back so clients can correlate replies.
type chatFrame struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Module  string `json:"module"`
	Token   string `json:"token"`
	APIBase string `json:"api_base"`
}

func (f chatFrame) toInput() chat.ReplyInput {
	return chat.ReplyInput{
		Message:        f.Message,
		Module:         f.Module,
		Token:          f.Token,
		BackendBaseURL: f.APIBase,
	}
}

type replyFrame struct {
	ID     string `json:"id,omitempty"`
	Reply  string `json:"reply,omitempty"`
	Model  string `json:"model,omitempty"`
	Intent string `json:"intent,omitempty"`
	Error  string `json:"error,omitempty"`
}
