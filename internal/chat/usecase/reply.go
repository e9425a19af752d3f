package usecase

import (
	"context"
	"fmt"
	"strings"

	"omnixius-ai/internal/chat"
	"omnixius-ai/internal/router"
	"omnixius-ai/pkg/textutil"
)

// Reply evaluates one message in a single pass: onboarding, classification, credential
// check, then at most one backend call. Nothing is remembered between calls.
func (uc *implUseCase) Reply(ctx context.Context, input chat.ReplyInput) chat.ReplyOutput {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return uc.output(router.IntentNone, MsgOnboarding)
	}

	verdict := uc.router.Classify(ctx, message)
	creds := input.Credentials()
	signedIn := creds.Complete()

	uc.l.Infof(ctx, "%s: intent=%s product_id=%d signed_in=%t", LogPrefixReply, verdict.Intent, verdict.ProductID, signedIn)

	switch verdict.Intent {
	case router.IntentMyOrders:
		if !signedIn {
			return uc.output(verdict.Intent, MsgSignInRequired)
		}
		return uc.output(verdict.Intent, uc.gateway.FetchMyOrders(ctx, creds))

	case router.IntentCreateOrder:
		if verdict.HasProductID() && signedIn {
			return uc.output(verdict.Intent, uc.gateway.CreateOrder(ctx, creds, verdict.ProductID))
		}
		if !signedIn {
			return uc.output(verdict.Intent, MsgSignInRequired)
		}
		return uc.output(verdict.Intent, MsgNeedProductID)

	case router.IntentConversationsSummary:
		if !signedIn {
			return uc.output(verdict.Intent, MsgSignInRequired)
		}
		return uc.output(verdict.Intent, uc.gateway.FetchConversationsSummary(ctx, creds))

	default:
		return uc.output(router.IntentNone, fmt.Sprintf(MsgFallback, textutil.Truncate(message, MaxEchoChars)))
	}
}

func (uc *implUseCase) output(intent router.Intent, text string) chat.ReplyOutput {
	return chat.ReplyOutput{
		Text:   text,
		Model:  uc.modelTag,
		Intent: intent,
	}
}
