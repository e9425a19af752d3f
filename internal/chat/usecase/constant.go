package usecase

import "omnixius-ai/internal/gateway"

const (
	LogPrefixReply = "internal.chat.usecase.Reply"

	// MaxEchoChars bounds how much of an unrecognised message is echoed back.
	MaxEchoChars = 200
)

// Action names advertised to the user.
const (
	ActionMyOrders             = "my orders"
	ActionCreateOrder          = "create order <product id>"
	ActionConversationsSummary = "conversations summary"
)

const (
	MsgOnboarding = "Send a message to start. I can show your orders, create an order for a product, or summarize your conversations."

	MsgSignInRequired = gateway.MsgSignInRequired

	MsgNeedProductID = "Which product should I order? Add its number, for example:\n" +
		"• create order 42\n" +
		"• закажи товар 42\n" +
		"• commander le produit 42"

	MsgFallback = "You said: %s\n\n" +
		"I can help with:\n" +
		"• " + ActionMyOrders + ": list your orders\n" +
		"• " + ActionCreateOrder + ": place an order\n" +
		"• " + ActionConversationsSummary + ": summarize your recent conversations"
)
