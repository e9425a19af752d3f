package router

// Intent represents user's intention
type Intent string

const (
	IntentNone                 Intent = "NONE"
	IntentMyOrders             Intent = "MY_ORDERS"
	IntentCreateOrder          Intent = "CREATE_ORDER"
	IntentConversationsSummary Intent = "CONVERSATIONS_SUMMARY"
)

// Verdict is the result of classifying one message.
// ProductID is only meaningful for IntentCreateOrder; zero means no usable identifier was found.
type Verdict struct {
	Intent    Intent `json:"intent"`
	ProductID int    `json:"product_id,omitempty"`
	Language  string `json:"language,omitempty"` // lexicon language of the pattern that fired
}

// Matched reports whether any intent fired.
func (v Verdict) Matched() bool {
	return v.Intent != "" && v.Intent != IntentNone
}

// HasProductID reports whether a create-order verdict carries a valid identifier.
func (v Verdict) HasProductID() bool {
	return v.ProductID >= MinProductID && v.ProductID <= MaxProductID
}

// NoMatch is the verdict returned when no classifier accepts the message.
var NoMatch = Verdict{Intent: IntentNone}
