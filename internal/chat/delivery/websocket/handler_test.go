package websocket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"omnixius-ai/internal/chat"
	chatWS "omnixius-ai/internal/chat/delivery/websocket"
	"omnixius-ai/internal/middleware"
	"omnixius-ai/internal/router"
	"omnixius-ai/pkg/log"
	"omnixius-ai/pkg/response"
)

type echoUseCase struct{}

func (echoUseCase) Reply(ctx context.Context, input chat.ReplyInput) chat.ReplyOutput {
	return chat.ReplyOutput{
		Text:   input.Message + "|" + input.Token + "|" + input.BackendBaseURL,
		Model:  "m-1",
		Intent: router.IntentNone,
	}
}

type reply struct {
	ID     string `json:"id"`
	Reply  string `json:"reply"`
	Model  string `json:"model"`
	Intent string `json:"intent"`
	Error  string `json:"error"`
}

func dial(t *testing.T, origins []string, header http.Header) *gorilla.Conn {
	t.Helper()
	return dialWith(t, middleware.New(log.NewNop(), middleware.Config{}), origins, header)
}

func dialWith(t *testing.T, mw middleware.Middleware, origins []string, header http.Header) *gorilla.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chatWS.RegisterRoutes(r, chatWS.New(log.NewNop(), echoUseCase{}, mw, origins), mw)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := gorilla.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServe(t *testing.T) {
	conn := dial(t, []string{"*"}, http.Header{"Authorization": []string{"Bearer hdr"}})

	t.Run("Frames are answered in order", func(t *testing.T) {
		for _, id := range []string{"1", "2"} {
			if err := conn.WriteJSON(map[string]string{"id": id, "message": "hi " + id, "api_base": "http://b"}); err != nil {
				t.Fatalf("write: %v", err)
			}
			var got reply
			if err := conn.ReadJSON(&got); err != nil {
				t.Fatalf("read: %v", err)
			}
			if got.ID != id || got.Reply != "hi "+id+"|hdr|http://b" || got.Model != "m-1" {
				t.Errorf("unexpected reply: %+v", got)
			}
		}
	})

	t.Run("Frame token wins over header", func(t *testing.T) {
		conn.WriteJSON(map[string]string{"message": "x", "token": "own"})
		var got reply
		conn.ReadJSON(&got)
		if got.Reply != "x|own|" {
			t.Errorf("unexpected reply: %+v", got)
		}
	})

	t.Run("Malformed frame keeps the connection", func(t *testing.T) {
		conn.WriteMessage(gorilla.TextMessage, []byte("{not json"))
		var got reply
		conn.ReadJSON(&got)
		if got.Error != chat.ErrInvalidPayload.Error() {
			t.Errorf("expected error frame, got %+v", got)
		}

		conn.WriteJSON(map[string]string{"message": "still here"})
		conn.ReadJSON(&got)
		if !strings.HasPrefix(got.Reply, "still here") {
			t.Errorf("connection should survive a bad frame, got %+v", got)
		}
	})
}

func TestServeRejectsForeignOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{})
	chatWS.RegisterRoutes(r, chatWS.New(log.NewNop(), echoUseCase{}, mw, []string{"https://app.example"}), mw)
	ts := httptest.NewServer(r)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	_, resp, err := gorilla.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 handshake, got %v", resp)
	}
}

func TestServeRateLimitsFrames(t *testing.T) {
	// 60/min gives a burst of 6; the upgrade request spends one of them.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitEnabled: true, RequestsPerMin: 60})
	conn := dialWith(t, mw, nil, nil)

	for i := 0; i < 5; i++ {
		conn.WriteJSON(map[string]string{"id": "ok", "message": "hi"})
		var got reply
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got.Error != "" {
			t.Fatalf("frame %d: unexpected error %q", i, got.Error)
		}
	}

	for _, raw := range []string{`{"id":"late","message":"hi"}`, `{not json`} {
		conn.WriteMessage(gorilla.TextMessage, []byte(raw))
		var got reply
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.Error != response.TooManyRequestsMessage || got.Reply != "" {
			t.Errorf("expected rate limit error for %s, got %+v", raw, got)
		}
	}
}
