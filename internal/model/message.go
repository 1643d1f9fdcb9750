package model

import "time"

// Message represents a persisted chat message. ReceiverID is nil for
// feed (broadcast) messages, set for direct messages.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID *int64    `json:"receiver_id,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsDirect reports whether the message targets a single receiver.
func (m Message) IsDirect() bool {
	return m.ReceiverID != nil
}
