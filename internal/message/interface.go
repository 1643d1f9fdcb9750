package message

import (
	"context"

	"chat-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Send persists a message and fans out the new_message event. A nil
	// receiver means a feed message visible to everyone.
	Send(ctx context.Context, sc model.Scope, ip SendInput) (MessageOutput, error)
	// SendDirect is the WebSocket entry point: sender comes from the
	// connection identity rather than a request scope.
	SendDirect(ctx context.Context, senderID, receiverID int64, content string) (model.Message, error)
	List(ctx context.Context, sc model.Scope) ([]model.Message, error)
	Conversation(ctx context.Context, sc model.Scope, otherID int64) ([]model.Message, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (MessageOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}

// UserDirectory answers receiver-existence checks. Implemented by the user
// usecase.
type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
