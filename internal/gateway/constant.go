package gateway

// Log prefixes
const (
	LogPrefixFetchMyOrders             = "internal.gateway.FetchMyOrders"
	LogPrefixCreateOrder               = "internal.gateway.CreateOrder"
	LogPrefixFetchConversationsSummary = "internal.gateway.FetchConversationsSummary"
)

// Rendering limits
const (
	MaxOrders        = 30
	MaxConversations = 15
	MaxSnippetChars  = 80
	MaxErrorChars    = 200
	Placeholder      = "—"
)

// Reply texts
const (
	MsgSignInRequired      = "Sign in and set the backend URL to use this action."
	MsgSignInAgain         = "Your session has expired. Please sign in again."
	MsgUnreachable         = "Cannot reach the backend at %s. Check the backend URL and try again."
	MsgBackendStatus       = "Backend returned %d."
	MsgUnexpected          = "Something went wrong: %s"
	MsgNoOrders            = "You have no orders yet."
	MsgOrdersHeader        = "Your orders:"
	MsgOrderCreated        = "Order created, ID: %s"
	MsgOrderCreatedNoID    = "Order created."
	MsgOrderRejected       = "Could not create order: %s"
	MsgProductNotFound     = "Product %d not found."
	MsgNoConversations     = "You have no conversations yet."
	MsgConversationsHeader = "Your recent conversations:"
	UnreadMarker           = " (unread)"
)
