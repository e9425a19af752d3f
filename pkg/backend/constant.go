package backend

import "time"

const (
	DefaultTimeout = 10 * time.Second

	PathMyOrders      = "/api/orders/my"
	PathOrders        = "/api/orders"
	PathConversations = "/api/conversations"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 1 << 20
)
