package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"omnixius-ai/pkg/backend"
	"omnixius-ai/pkg/textutil"
)

func renderOrders(orders []backend.Order) string {
	if len(orders) == 0 {
		return MsgNoOrders
	}
	if len(orders) > MaxOrders {
		orders = orders[:MaxOrders]
	}

	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, MsgOrdersHeader)
	for _, o := range orders {
		lines = append(lines, renderOrder(o))
	}
	return strings.Join(lines, "\n")
}

// renderOrder formats "• {title} — {status}[ — {price}]".
func renderOrder(o backend.Order) string {
	title := textutil.SingleLine(o.Title)
	if title == "" {
		title = Placeholder
		if o.ID != "" {
			title = "Order #" + string(o.ID)
		}
	}

	status := textutil.SingleLine(o.Status)
	if status == "" {
		status = Placeholder
	}

	line := "• " + title + " — " + status
	if o.Price != nil {
		line += " — " + strconv.FormatFloat(*o.Price, 'f', -1, 64)
	}
	return line
}

func renderCreatedOrder(out backend.CreatedOrder) string {
	if out.ID == "" {
		return MsgOrderCreatedNoID
	}
	return fmt.Sprintf(MsgOrderCreated, out.ID)
}

func renderConversations(conversations []backend.Conversation) string {
	if len(conversations) == 0 {
		return MsgNoConversations
	}
	if len(conversations) > MaxConversations {
		conversations = conversations[:MaxConversations]
	}

	lines := make([]string, 0, len(conversations)+1)
	lines = append(lines, MsgConversationsHeader)
	for _, c := range conversations {
		lines = append(lines, renderConversation(c))
	}
	return strings.Join(lines, "\n")
}

// renderConversation formats "• {counterparty}: {snippet}[ (unread)]".
func renderConversation(c backend.Conversation) string {
	line := "• " + counterparty(c.Other) + ": " + textutil.Truncate(textutil.SingleLine(c.LastMessage), MaxSnippetChars)
	if c.Unread {
		line += UnreadMarker
	}
	return line
}

func counterparty(other *backend.Counterparty) string {
	if other == nil {
		return Placeholder
	}
	if name := strings.TrimSpace(other.Name); name != "" {
		return name
	}
	if email := strings.TrimSpace(other.Email); email != "" {
		return email
	}
	return Placeholder
}

func truncateError(s string) string {
	return textutil.Truncate(textutil.SingleLine(s), MaxErrorChars)
}
