package websocket

import (
	"encoding/json"
	"time"

	"chat-srv/internal/model"
)

// EventType discriminates outbound frames.
type EventType string

const (
	EventPong           EventType = "pong"
	EventNewMessage     EventType = "new_message"
	EventMessageUpdated EventType = "message_updated"
	EventMessageDeleted EventType = "message_deleted"
	EventUserStatus     EventType = "user_status"
	EventActiveUsers    EventType = "active_users"
	EventBroadcast      EventType = "broadcast"
	EventError          EventType = "error"
)

// Inbound frame types.
const (
	FramePing           = "ping"
	FrameSendMessage    = "send_message"
	FrameActivityUpdate = "activity_update"
	FrameGetActiveUsers = "get_active_users"
)

// InboundFrame is the envelope for every client-to-server frame.
type InboundFrame struct {
	Type       string `json:"type"`
	ReceiverID int64  `json:"receiver_id,omitempty"`
	Content    string `json:"content,omitempty"`
}

// PongEvent replies to a ping frame.
type PongEvent struct {
	Type EventType `json:"type"`
}

// MessageEvent carries a message lifecycle notification
// (new_message, message_updated or feed broadcast).
type MessageEvent struct {
	Type       EventType `json:"type"`
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID *int64    `json:"receiver_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MessageDeletedEvent notifies conversation members of a deletion.
type MessageDeletedEvent struct {
	Type       EventType `json:"type"`
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID *int64    `json:"receiver_id,omitempty"`
}

// UserStatusEvent announces a presence transition.
type UserStatusEvent struct {
	Type      EventType            `json:"type"`
	UserID    int64                `json:"user_id"`
	Status    model.PresenceStatus `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
}

// ActiveUsersEvent carries the active-user snapshot.
type ActiveUsersEvent struct {
	Type      EventType `json:"type"`
	Users     []int64   `json:"users"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorEvent reports a per-frame failure to the offending connection.
type ErrorEvent struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}

// NewPongEvent creates a pong reply.
func NewPongEvent() PongEvent {
	return PongEvent{Type: EventPong}
}

// NewMessageEvent creates a new_message event from a persisted message.
// Feed messages (no receiver) go out as type broadcast.
func NewMessageEvent(m model.Message) MessageEvent {
	typ := EventNewMessage
	if !m.IsDirect() {
		typ = EventBroadcast
	}
	return MessageEvent{
		Type:       typ,
		ID:         m.ID,
		Content:    m.Content,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		CreatedAt:  m.CreatedAt,
	}
}

// NewMessageUpdatedEvent creates a message_updated event.
func NewMessageUpdatedEvent(m model.Message) MessageEvent {
	return MessageEvent{
		Type:       EventMessageUpdated,
		ID:         m.ID,
		Content:    m.Content,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		CreatedAt:  m.CreatedAt,
	}
}

// NewMessageDeletedEvent creates a message_deleted event.
func NewMessageDeletedEvent(m model.Message) MessageDeletedEvent {
	return MessageDeletedEvent{
		Type:       EventMessageDeleted,
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
	}
}

// NewUserStatusEvent creates a user_status event.
func NewUserStatusEvent(userID int64, status model.PresenceStatus) UserStatusEvent {
	return UserStatusEvent{
		Type:      EventUserStatus,
		UserID:    userID,
		Status:    status,
		Timestamp: time.Now(),
	}
}

// NewActiveUsersEvent creates an active_users event.
func NewActiveUsersEvent(users []int64) ActiveUsersEvent {
	if users == nil {
		users = []int64{}
	}
	return ActiveUsersEvent{
		Type:      EventActiveUsers,
		Users:     users,
		Timestamp: time.Now(),
	}
}

// NewErrorEvent creates an error event.
func NewErrorEvent(message string) ErrorEvent {
	return ErrorEvent{Type: EventError, Message: message}
}

// DecodeInbound parses a raw text frame into an InboundFrame.
func DecodeInbound(data []byte) (InboundFrame, error) {
	var f InboundFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return InboundFrame{}, err
	}
	if f.Type == "" {
		return InboundFrame{}, ErrMalformedFrame
	}
	return f, nil
}
