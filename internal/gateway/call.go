package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"omnixius-ai/pkg/backend"
	"omnixius-ai/pkg/textutil"
)

// statusMessages maps a backend status code to reply text for one call.
type statusMessages map[int]func(se *backend.StatusError) string

// commonStatusMessages apply to every call unless the call overrides the code.
var commonStatusMessages = statusMessages{
	http.StatusUnauthorized: func(*backend.StatusError) string { return MsgSignInAgain },
}

type call struct {
	logPrefix string
	statuses  statusMessages
}

// run executes exec and funnels any failure through the call's status table.
func (g *implGateway) run(ctx context.Context, creds backend.Credentials, c call, exec func(context.Context) (string, error)) string {
	text, err := exec(ctx)
	if err == nil {
		return text
	}
	return g.explain(ctx, creds, c, err)
}

func (g *implGateway) explain(ctx context.Context, creds backend.Credentials, c call, err error) string {
	var se *backend.StatusError
	switch {
	case errors.As(err, &se):
		g.l.Warnf(ctx, "%s: backend status %d: %s", c.logPrefix, se.StatusCode, textutil.Truncate(se.Message, MaxErrorChars))
		if fn, ok := c.statuses[se.StatusCode]; ok {
			return fn(se)
		}
		if fn, ok := commonStatusMessages[se.StatusCode]; ok {
			return fn(se)
		}
		return fmt.Sprintf(MsgBackendStatus, se.StatusCode)

	case errors.Is(err, backend.ErrMissingCredentials):
		return MsgSignInRequired

	case errors.Is(err, backend.ErrUnreachable):
		g.l.Warnf(ctx, "%s: %v", c.logPrefix, err)
		return fmt.Sprintf(MsgUnreachable, creds.BaseURLTrimmed())

	default:
		g.l.Errorf(ctx, "%s: %v", c.logPrefix, err)
		return fmt.Sprintf(MsgUnexpected, truncateError(err.Error()))
	}
}
