package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-srv/internal/model"
	"chat-srv/pkg/jwt"
	"chat-srv/pkg/log"
	"chat-srv/pkg/response"
)

// MessageService persists a direct message and fans out the resulting
// new_message event to both conversation members. Implemented by the message
// usecase so the WS path and the REST path share one trigger.
type MessageService interface {
	SendDirect(ctx context.Context, senderID, receiverID int64, content string) (model.Message, error)
}

// Config holds the per-connection WebSocket settings.
type Config struct {
	PongWait        time.Duration
	PingInterval    time.Duration
	WriteWait       time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBufferSize  int

	// ActiveThreshold is the inactivity threshold for the active predicate.
	ActiveThreshold time.Duration
}

// Handler accepts WebSocket connections and drives each through its
// lifecycle: authenticate, register, read-loop dispatch, disconnect cleanup.
type Handler struct {
	registry *Registry
	delivery *Delivery
	jwtMgr   jwt.Manager
	messages MessageService
	logger   log.Logger
	cfg      Config

	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler.
func NewHandler(
	registry *Registry,
	delivery *Delivery,
	jwtMgr jwt.Manager,
	messages MessageService,
	logger log.Logger,
	cfg Config,
) *Handler {
	return &Handler{
		registry: registry,
		delivery: delivery,
		jwtMgr:   jwtMgr,
		messages: messages,
		logger:   logger,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Allow all origins for now (configure in production)
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// SetupRoutes sets up WebSocket routes.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket handles WebSocket connection requests. The credential
// arrives as a query parameter; a bad credential closes the connection with
// a distinguishing close code before any application frame is exchanged.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(ctx, "Failed to upgrade connection: %v", err)
		return
	}

	payload, err := h.jwtMgr.Verify(ctx, c.Query("token"))
	if err != nil {
		h.rejectConn(ctx, ws, err)
		return
	}

	conn := newConnection(ws, payload.UserID, h)

	if first := h.registry.Register(conn.userID, conn); first {
		h.delivery.BroadcastExcept(ctx, NewUserStatusEvent(conn.userID, model.PresenceOnline), conn.userID)
	}

	conn.start()

	h.logger.Infof(ctx, "WebSocket connection established for user %d", conn.userID)
}

// rejectConn closes an unauthenticated connection with the close code
// matching the credential failure. The user is never registered.
func (h *Handler) rejectConn(ctx context.Context, ws *websocket.Conn, verifyErr error) {
	code := CloseInvalidToken
	switch {
	case errors.Is(verifyErr, jwt.ErrTokenExpired):
		code = CloseTokenExpired
	case errors.Is(verifyErr, jwt.ErrTokenRevoked):
		code = CloseTokenRevoked
	}

	h.logger.Warnf(ctx, "WebSocket connection rejected: %v", verifyErr)

	deadline := time.Now().Add(h.cfg.WriteWait)
	_ = ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, verifyErr.Error()), deadline)
	_ = ws.Close()
}

// disconnect is the single cleanup path for a connection. Unregister is
// idempotent, so a redundant call (read error plus pruning) is safe.
func (h *Handler) disconnect(conn *Connection) {
	ctx := context.Background()

	last := h.registry.Unregister(conn.userID, conn)
	conn.Close()

	if last {
		h.logger.Infof(ctx, "User disconnected (all tabs closed): %d", conn.userID)
		h.delivery.BroadcastExcept(ctx, NewUserStatusEvent(conn.userID, model.PresenceOffline), conn.userID)
	}
}

// dispatch routes one inbound frame. A failure processing a frame is
// reported to the offending connection only and never terminates the read
// loop.
func (h *Handler) dispatch(ctx context.Context, conn *Connection, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorf(ctx, "Panic handling frame from user %d: %v", conn.userID, r)
			h.reply(ctx, conn, NewErrorEvent("internal error"))
		}
	}()

	frame, err := DecodeInbound(data)
	if err != nil {
		h.reply(ctx, conn, NewErrorEvent("malformed frame"))
		return
	}

	// Any well-formed inbound frame counts as activity.
	h.registry.Touch(conn.userID)

	switch frame.Type {
	case FramePing:
		h.reply(ctx, conn, NewPongEvent())

	case FrameActivityUpdate:
		// Touch above is the whole effect.

	case FrameSendMessage:
		h.handleSendMessage(ctx, conn, frame)

	case FrameGetActiveUsers:
		h.reply(ctx, conn, NewActiveUsersEvent(h.registry.ActiveUserIDs(h.cfg.ActiveThreshold)))

	default:
		h.reply(ctx, conn, NewErrorEvent("unknown frame type: "+frame.Type))
	}
}

func (h *Handler) handleSendMessage(ctx context.Context, conn *Connection, frame InboundFrame) {
	if frame.ReceiverID <= 0 {
		h.reply(ctx, conn, NewErrorEvent("receiver_id is required"))
		return
	}
	if frame.Content == "" {
		h.reply(ctx, conn, NewErrorEvent("content must not be empty"))
		return
	}

	// The message service persists and fans out new_message to both sides.
	if _, err := h.messages.SendDirect(ctx, conn.userID, frame.ReceiverID, frame.Content); err != nil {
		h.reply(ctx, conn, NewErrorEvent(err.Error()))
	}
}

// reply sends an event to a single connection, pruning it on failure.
func (h *Handler) reply(ctx context.Context, conn *Connection, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf(ctx, "internal.websocket.handler.reply.Marshal: %v", err)
		return
	}
	if err := conn.enqueue(data); err != nil {
		h.delivery.prune(ctx, conn.userID, conn)
	}
}

// ActiveUsers is the REST view of the active-user snapshot, mirroring the
// get_active_users frame.
// @Summary Active users
// @Tags User
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/users/active [GET]
func (h *Handler) ActiveUsers(c *gin.Context) {
	ids := h.registry.ActiveUserIDs(h.cfg.ActiveThreshold)
	if ids == nil {
		ids = []int64{}
	}
	response.OK(c, gin.H{"users": ids})
}

// Stats exposes registry occupancy for health endpoints.
func (h *Handler) Stats() RegistryStats {
	return h.registry.Stats()
}
