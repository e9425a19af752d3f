package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// ListMyOrders fetches the caller's orders. Both the flat list and the {asBuyer, asSeller}
// shapes are accepted; buyer orders come first.
func (b *implBackend) ListMyOrders(ctx context.Context, creds Credentials) ([]Order, error) {
	var raw json.RawMessage
	if err := b.do(ctx, creds, http.MethodGet, PathMyOrders, nil, &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var orders []Order
		if err := json.Unmarshal(raw, &orders); err != nil {
			return nil, fmt.Errorf("decode orders list: %w", err)
		}
		return orders, nil
	case '{':
		var sides ordersBySide
		if err := json.Unmarshal(raw, &sides); err != nil {
			return nil, fmt.Errorf("decode orders by side: %w", err)
		}
		return append(sides.AsBuyer, sides.AsSeller...), nil
	default:
		return nil, fmt.Errorf("%w: orders response starts with %q", ErrUnexpectedPayload, raw[0])
	}
}

// CreateOrder places an order for productID.
func (b *implBackend) CreateOrder(ctx context.Context, creds Credentials, productID int) (CreatedOrder, error) {
	var out CreatedOrder
	if err := b.do(ctx, creds, http.MethodPost, PathOrders, createOrderReq{ProductID: productID}, &out); err != nil {
		return CreatedOrder{}, err
	}
	return out, nil
}

// ListConversations fetches the caller's conversations, most recent first as the backend orders them.
func (b *implBackend) ListConversations(ctx context.Context, creds Credentials) ([]Conversation, error) {
	var conversations []Conversation
	if err := b.do(ctx, creds, http.MethodGet, PathConversations, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// do executes one bearer-authenticated JSON call. Transport failures wrap ErrUnreachable,
// non-2xx answers become *StatusError, and a 2xx body is decoded into out when out is non-nil.
func (b *implBackend) do(ctx context.Context, creds Credentials, method, path string, body, out interface{}) error {
	if !creds.Complete() {
		return ErrMissingCredentials
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, creds.BaseURLTrimmed()+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client(strings.TrimSpace(creds.Token)).Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s response: %w", ErrUnreachable, method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Message: serverMessage(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (b *implBackend) client(token string) *http.Client {
	return &http.Client{
		Timeout: b.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   b.transport,
		},
	}
}

// serverMessage pulls the human readable error out of a failed response.
func serverMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
