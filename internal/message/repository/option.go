package repository

import (
	"chat-srv/internal/model"
)

// CreateOptions contains options for creating a message.
type CreateOptions struct {
	Message model.Message
}

// UpdateOptions contains options for updating a message's content.
type UpdateOptions struct {
	ID      int64
	Content string
}

// ListOptions filters messages.
//
// InvolvingUserID selects messages the user sent or received, plus feed
// messages. ConversationWith narrows further to the direct exchange between
// InvolvingUserID and the given user.
type ListOptions struct {
	InvolvingUserID  int64
	ConversationWith *int64
}
