package message

import (
	"chat-srv/internal/model"
)

type SendInput struct {
	// ReceiverID is nil for feed messages.
	ReceiverID *int64
	Content    string
}

type UpdateInput struct {
	ID      int64
	Content string
}

type MessageOutput struct {
	Message model.Message
}
