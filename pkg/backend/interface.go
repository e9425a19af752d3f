package backend

import "context"

// IBackend is the client of the orders/conversations backend.
// Every call carries the caller's own credentials; the client keeps no per-user state.
type IBackend interface {
	ListMyOrders(ctx context.Context, creds Credentials) ([]Order, error)
	CreateOrder(ctx context.Context, creds Credentials, productID int) (CreatedOrder, error)
	ListConversations(ctx context.Context, creds Credentials) ([]Conversation, error)
}
