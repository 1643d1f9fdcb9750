package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-srv/internal/model"
	"chat-srv/pkg/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeMessageService struct {
	mu    sync.Mutex
	calls []sentCall
	err   error
}

type sentCall struct {
	senderID   int64
	receiverID int64
	content    string
}

func (f *fakeMessageService) SendDirect(ctx context.Context, senderID, receiverID int64, content string) (model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.Message{}, f.err
	}
	f.calls = append(f.calls, sentCall{senderID, receiverID, content})
	return model.Message{ID: int64(len(f.calls)), SenderID: senderID, ReceiverID: &receiverID, Content: content}, nil
}

func (f *fakeMessageService) sent() []sentCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentCall(nil), f.calls...)
}

type testEnv struct {
	registry *Registry
	handler  *Handler
	messages *fakeMessageService
	jwtMgr   jwt.Manager
	srv      *httptest.Server
}

func newTestEnv(t *testing.T, ttl time.Duration) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtMgr, err := jwt.New(jwt.Config{SecretKey: testSecret, Issuer: "test", TTL: ttl}, nil)
	if err != nil {
		t.Fatalf("jwt.New() error = %v", err)
	}

	registry := NewRegistry()
	delivery := NewDelivery(registry, testLogger{})
	messages := &fakeMessageService{}

	handler := NewHandler(registry, delivery, jwtMgr, messages, testLogger{}, Config{
		PongWait:        60 * time.Second,
		PingInterval:    30 * time.Second,
		WriteWait:       time.Second,
		MaxMessageSize:  4096,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBufferSize:  16,
		ActiveThreshold: 5 * time.Minute,
	})

	router := gin.New()
	handler.SetupRoutes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		registry: registry,
		handler:  handler,
		messages: messages,
		jwtMgr:   jwtMgr,
		srv:      srv,
	}
}

func (e *testEnv) dial(t *testing.T, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.srv.URL, "http") + "/ws?token=" + token
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

// waitFor polls cond for up to a second.
func waitFor(t *testing.T, desc string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", desc)
}

func readEvent(t *testing.T, ws *websocket.Conn, v any) {
	t.Helper()
	_ = ws.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("event is not valid JSON: %v", err)
	}
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	ws := env.dial(t, "not-a-token")

	_ = ws.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := ws.ReadMessage()

	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		t.Fatalf("ReadMessage() error = %v, want close error", err)
	}
	if closeErr.Code != CloseInvalidToken {
		t.Errorf("close code = %d, want %d", closeErr.Code, CloseInvalidToken)
	}

	if got := env.registry.Stats().UniqueUsers; got != 0 {
		t.Errorf("registry users after rejected connect = %d, want 0", got)
	}
}

func TestHandler_RejectsExpiredToken(t *testing.T) {
	env := newTestEnv(t, time.Nanosecond)

	token, err := env.jwtMgr.Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	ws := env.dial(t, token)

	_ = ws.SetReadDeadline(time.Now().Add(time.Second))
	_, _, readErr := ws.ReadMessage()

	var closeErr *websocket.CloseError
	if !errors.As(readErr, &closeErr) {
		t.Fatalf("ReadMessage() error = %v, want close error", readErr)
	}
	if closeErr.Code != CloseTokenExpired {
		t.Errorf("close code = %d, want %d", closeErr.Code, CloseTokenExpired)
	}
}

func TestHandler_ConnectPingDisconnect(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	token, err := env.jwtMgr.Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	ws := env.dial(t, token)
	waitFor(t, "registration", func() bool { return env.registry.Stats().UniqueUsers == 1 })

	if err := ws.WriteJSON(InboundFrame{Type: FramePing}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var pong PongEvent
	readEvent(t, ws, &pong)
	if pong.Type != EventPong {
		t.Errorf("reply type = %q, want %q", pong.Type, EventPong)
	}

	ws.Close()
	waitFor(t, "unregistration", func() bool { return env.registry.Stats().UniqueUsers == 0 })
}

func TestHandler_GetActiveUsers(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	token, err := env.jwtMgr.Generate(7, "a@b.c")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	ws := env.dial(t, token)
	waitFor(t, "registration", func() bool { return env.registry.Stats().UniqueUsers == 1 })

	if err := ws.WriteJSON(InboundFrame{Type: FrameGetActiveUsers}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var ev ActiveUsersEvent
	readEvent(t, ws, &ev)
	if ev.Type != EventActiveUsers {
		t.Fatalf("reply type = %q, want %q", ev.Type, EventActiveUsers)
	}
	if len(ev.Users) != 1 || ev.Users[0] != 7 {
		t.Errorf("active users = %v, want [7]", ev.Users)
	}
}

func TestHandler_OnlineBroadcastOnFirstConnection(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	tokenA, _ := env.jwtMgr.Generate(1, "a@b.c")
	tokenB, _ := env.jwtMgr.Generate(2, "b@b.c")

	wsA := env.dial(t, tokenA)
	waitFor(t, "first registration", func() bool { return env.registry.Stats().UniqueUsers == 1 })

	env.dial(t, tokenB)
	waitFor(t, "second registration", func() bool { return env.registry.Stats().UniqueUsers == 2 })

	var ev UserStatusEvent
	readEvent(t, wsA, &ev)
	if ev.Type != EventUserStatus || ev.UserID != 2 || ev.Status != model.PresenceOnline {
		t.Errorf("broadcast = %+v, want user_status online for user 2", ev)
	}
}

func TestHandler_SendMessageFrame(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	token, _ := env.jwtMgr.Generate(1, "a@b.c")
	ws := env.dial(t, token)
	waitFor(t, "registration", func() bool { return env.registry.Stats().UniqueUsers == 1 })

	if err := ws.WriteJSON(InboundFrame{Type: FrameSendMessage, ReceiverID: 2, Content: "hello"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	waitFor(t, "message service call", func() bool { return len(env.messages.sent()) == 1 })
	call := env.messages.sent()[0]
	if call.senderID != 1 || call.receiverID != 2 || call.content != "hello" {
		t.Errorf("SendDirect call = %+v, want sender 1, receiver 2, content hello", call)
	}
}

func TestHandler_SendMessageValidation(t *testing.T) {
	tests := []struct {
		name  string
		frame InboundFrame
	}{
		{name: "missing receiver", frame: InboundFrame{Type: FrameSendMessage, Content: "x"}},
		{name: "empty content", frame: InboundFrame{Type: FrameSendMessage, ReceiverID: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, time.Hour)
			token, _ := env.jwtMgr.Generate(1, "a@b.c")
			ws := env.dial(t, token)
			waitFor(t, "registration", func() bool { return env.registry.Stats().UniqueUsers == 1 })

			if err := ws.WriteJSON(tt.frame); err != nil {
				t.Fatalf("WriteJSON() error = %v", err)
			}

			var ev ErrorEvent
			readEvent(t, ws, &ev)
			if ev.Type != EventError {
				t.Errorf("reply type = %q, want %q", ev.Type, EventError)
			}
			if got := len(env.messages.sent()); got != 0 {
				t.Errorf("message service called %d times, want 0", got)
			}
		})
	}
}

func TestHandler_MalformedFrame(t *testing.T) {
	env := newTestEnv(t, time.Hour)

	token, _ := env.jwtMgr.Generate(1, "a@b.c")
	ws := env.dial(t, token)
	waitFor(t, "registration", func() bool { return env.registry.Stats().UniqueUsers == 1 })

	if err := ws.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}

	var ev ErrorEvent
	readEvent(t, ws, &ev)
	if ev.Type != EventError {
		t.Errorf("reply type = %q, want %q", ev.Type, EventError)
	}

	// The connection survives a bad frame.
	if err := ws.WriteJSON(InboundFrame{Type: FramePing}); err != nil {
		t.Fatalf("WriteJSON() after bad frame error = %v", err)
	}
	var pong PongEvent
	readEvent(t, ws, &pong)
	if pong.Type != EventPong {
		t.Errorf("reply after bad frame = %q, want %q", pong.Type, EventPong)
	}
}
