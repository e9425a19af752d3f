package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Config configures the client. Zero values fall back to defaults.
type Config struct {
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Credentials identify the caller against a backend instance.
type Credentials struct {
	Token   string
	BaseURL string
}

// Complete reports whether both the token and the base URL are present.
func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.Token) != "" && strings.TrimSpace(c.BaseURL) != ""
}

// BaseURLTrimmed returns the base URL without surrounding whitespace or a trailing slash.
func (c Credentials) BaseURLTrimmed() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

// ID is a backend identifier. The backend emits numbers, but strings are accepted too.
type ID string

// UnmarshalJSON keeps the literal text of numeric ids and unquotes string ids.
func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*id = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		*id = ID(raw)
	}
	return nil
}

// Flag is a boolean the backend may also send as a count: any positive number is true,
// null and zero are false.
type Flag bool

// UnmarshalJSON accepts true/false, numbers, numeric or boolean strings and null.
func (f *Flag) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	switch strings.ToLower(raw) {
	case "", "null", "false":
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: flag %s", ErrUnexpectedPayload, raw)
	}
	*f = n > 0
	return nil
}

// Order is the read-only view of an order returned by GET /api/orders/my.
type Order struct {
	ID     ID       `json:"id"`
	Title  string   `json:"title"`
	Status string   `json:"status"`
	Price  *float64 `json:"price"`
}

type ordersBySide struct {
	AsBuyer  []Order `json:"asBuyer"`
	AsSeller []Order `json:"asSeller"`
}

// CreatedOrder is the part of the POST /api/orders response the service uses.
type CreatedOrder struct {
	ID ID `json:"id"`
}

type createOrderReq struct {
	ProductID int `json:"product_id"`
}

// Conversation is one entry of GET /api/conversations.
type Conversation struct {
	ID          ID            `json:"id"`
	ProductID   ID            `json:"product_id"`
	LastMessage string        `json:"last_message"`
	Unread      Flag          `json:"unread"`
	Other       *Counterparty `json:"other"`
}

// Counterparty is the other participant of a conversation.
type Counterparty struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
