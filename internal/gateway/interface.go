package gateway

import (
	"context"

	"omnixius-ai/pkg/backend"
)

// Gateway executes one backend action for the caller and returns display text.
// It never returns an error: every failure is already translated into a message.
type Gateway interface {
	FetchMyOrders(ctx context.Context, creds backend.Credentials) string
	CreateOrder(ctx context.Context, creds backend.Credentials, productID int) string
	FetchConversationsSummary(ctx context.Context, creds backend.Credentials) string
}
