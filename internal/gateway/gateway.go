package gateway

import (
	"context"
	"fmt"
	"net/http"

	"omnixius-ai/pkg/backend"
)

// FetchMyOrders renders the caller's orders.
func (g *implGateway) FetchMyOrders(ctx context.Context, creds backend.Credentials) string {
	c := call{logPrefix: LogPrefixFetchMyOrders}
	return g.run(ctx, creds, c, func(ctx context.Context) (string, error) {
		orders, err := g.backend.ListMyOrders(ctx, creds)
		if err != nil {
			return "", err
		}
		g.l.Infof(ctx, "%s: %d orders from %s", c.logPrefix, len(orders), creds.BaseURLTrimmed())
		return renderOrders(orders), nil
	})
}

// CreateOrder places an order for productID.
func (g *implGateway) CreateOrder(ctx context.Context, creds backend.Credentials, productID int) string {
	c := call{
		logPrefix: LogPrefixCreateOrder,
		statuses: statusMessages{
			http.StatusBadRequest: func(se *backend.StatusError) string {
				reason := se.Message
				if reason == "" {
					reason = http.StatusText(http.StatusBadRequest)
				}
				return fmt.Sprintf(MsgOrderRejected, truncateError(reason))
			},
			http.StatusNotFound: func(*backend.StatusError) string {
				return fmt.Sprintf(MsgProductNotFound, productID)
			},
		},
	}
	return g.run(ctx, creds, c, func(ctx context.Context) (string, error) {
		out, err := g.backend.CreateOrder(ctx, creds, productID)
		if err != nil {
			return "", err
		}
		g.l.Infof(ctx, "%s: product %d ordered, id=%s", c.logPrefix, productID, out.ID)
		return renderCreatedOrder(out), nil
	})
}

// FetchConversationsSummary renders the caller's most recent conversations.
func (g *implGateway) FetchConversationsSummary(ctx context.Context, creds backend.Credentials) string {
	c := call{logPrefix: LogPrefixFetchConversationsSummary}
	return g.run(ctx, creds, c, func(ctx context.Context) (string, error) {
		conversations, err := g.backend.ListConversations(ctx, creds)
		if err != nil {
			return "", err
		}
		g.l.Infof(ctx, "%s: %d conversations from %s", c.logPrefix, len(conversations), creds.BaseURLTrimmed())
		return renderConversations(conversations), nil
	})
}
