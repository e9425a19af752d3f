package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply answers one chat message. Every input yields a reply; there is no error path.
	Reply(ctx context.Context, input ReplyInput) ReplyOutput
}
