package http

import (
	"omnixius-ai/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
	Module  string `json:"module"`
	Token   string `json:"token"`
	APIBase string `json:"api_base"`
}

func (r chatReq) toInput() chat.ReplyInput {
	return chat.ReplyInput{
		Message:        r.Message,
		Module:         r.Module,
		Token:          r.Token,
		BackendBaseURL: r.APIBase,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply  string `json:"reply"`
	Model  string `json:"model"`
	Intent string `json:"intent"`
}

func (h *handler) newChatResp(out chat.ReplyOutput) chatResp {
	return chatResp{
		Reply:  out.Text,
		Model:  out.Model,
		Intent: string(out.Intent),
	}
}
