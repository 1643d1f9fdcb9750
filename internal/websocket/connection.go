package websocket

import (
	"context"
	"sync"
	"time"

	"chat-srv/pkg/log"

	"github.com/gorilla/websocket"
)

// Connection represents one live WebSocket connection of a user. A user may
// hold several connections (tabs); each is owned by exactly one registry
// entry until closed.
type Connection struct {
	ws     *websocket.Conn
	userID int64

	// Buffered channel of outbound frames
	send chan []byte
	done chan struct{}

	closeOnce sync.Once

	handler *Handler

	pongWait   time.Duration
	pingPeriod time.Duration
	writeWait  time.Duration
	maxMsgSize int64

	logger log.Logger
}

func newConnection(ws *websocket.Conn, userID int64, h *Handler) *Connection {
	return &Connection{
		ws:         ws,
		userID:     userID,
		send:       make(chan []byte, h.cfg.SendBufferSize),
		done:       make(chan struct{}),
		handler:    h,
		pongWait:   h.cfg.PongWait,
		pingPeriod: h.cfg.PingInterval,
		writeWait:  h.cfg.WriteWait,
		maxMsgSize: h.cfg.MaxMessageSize,
		logger:     h.logger,
	}
}

// UserID returns the authenticated owner of the connection.
func (c *Connection) UserID() int64 {
	return c.userID
}

// enqueue hands a serialized frame to the write pump without blocking.
// A closed connection or a full send buffer is a delivery failure; the
// caller prunes the connection from the registry.
func (c *Connection) enqueue(data []byte) error {
	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrConnClosed
	default:
		return ErrSendBufferFull
	}
}

// start runs the connection's read and write pumps.
func (c *Connection) start() {
	go c.writePump()
	go c.readPump()
}

// readPump pumps frames from the WebSocket connection into the handler's
// dispatcher.
//
// The application runs readPump in a per-connection goroutine, ensuring at
// most one reader per connection. The deferred disconnect is the single
// cleanup path for every exit: read error, protocol close or pruning.
func (c *Connection) readPump() {
	defer c.handler.disconnect(c)

	c.ws.SetReadLimit(c.maxMsgSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Errorf(context.Background(), "WebSocket read error for user %d: %v", c.userID, err)
			}
			return
		}

		c.handler.dispatch(context.Background(), c, data)
	}
}

// writePump pumps frames from the send buffer to the WebSocket connection
// and keeps the transport alive with pings.
//
// A goroutine running writePump is started for each connection, ensuring at
// most one writer per connection.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

// Close shuts the connection down. Safe to call multiple times.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.ws != nil {
			_ = c.ws.Close()
		}
	})
}
