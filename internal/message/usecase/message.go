package usecase

import (
	"context"
	"strings"

	"chat-srv/internal/message"
	"chat-srv/internal/message/repository"
	"chat-srv/internal/model"
	"chat-srv/internal/websocket"
)

func (uc *usecase) Send(ctx context.Context, sc model.Scope, ip message.SendInput) (message.MessageOutput, error) {
	if strings.TrimSpace(ip.Content) == "" {
		return message.MessageOutput{}, message.ErrEmptyContent
	}

	if ip.ReceiverID != nil {
		ok, err := uc.users.Exists(ctx, *ip.ReceiverID)
		if err != nil {
			uc.l.Errorf(ctx, "internal.message.usecase.Send.Exists: %v", err)
			return message.MessageOutput{}, err
		}
		if !ok {
			return message.MessageOutput{}, message.ErrReceiverNotFound
		}
	}

	msg, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Message: model.Message{
			SenderID:   sc.UserID,
			ReceiverID: ip.ReceiverID,
			Content:    ip.Content,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Send.Create: %v", err)
		return message.MessageOutput{}, err
	}

	uc.fanout(ctx, websocket.NewMessageEvent(msg), msg)

	return message.MessageOutput{Message: msg}, nil
}

func (uc *usecase) SendDirect(ctx context.Context, senderID, receiverID int64, content string) (model.Message, error) {
	out, err := uc.Send(ctx, model.Scope{UserID: senderID}, message.SendInput{
		ReceiverID: &receiverID,
		Content:    content,
	})
	if err != nil {
		return model.Message{}, err
	}
	return out.Message, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.Message, error) {
	msgs, err := uc.repo.List(ctx, sc, repository.ListOptions{InvolvingUserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.List: %v", err)
		return nil, err
	}

	return msgs, nil
}

func (uc *usecase) Conversation(ctx context.Context, sc model.Scope, otherID int64) ([]model.Message, error) {
	ok, err := uc.users.Exists(ctx, otherID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Conversation.Exists: %v", err)
		return nil, err
	}
	if !ok {
		return nil, message.ErrReceiverNotFound
	}

	msgs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		InvolvingUserID:  sc.UserID,
		ConversationWith: &otherID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Conversation: %v", err)
		return nil, err
	}

	return msgs, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip message.UpdateInput) (message.MessageOutput, error) {
	if strings.TrimSpace(ip.Content) == "" {
		return message.MessageOutput{}, message.ErrEmptyContent
	}

	existing, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return message.MessageOutput{}, message.ErrMessageNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.Update.Detail: %v", err)
		return message.MessageOutput{}, err
	}

	if existing.SenderID != sc.UserID {
		return message.MessageOutput{}, message.ErrNotAuthor
	}

	msg, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{ID: ip.ID, Content: ip.Content})
	if err != nil {
		if err == repository.ErrNotFound {
			return message.MessageOutput{}, message.ErrMessageNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.Update.Update: %v", err)
		return message.MessageOutput{}, err
	}

	uc.fanout(ctx, websocket.NewMessageUpdatedEvent(msg), msg)

	return message.MessageOutput{Message: msg}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	existing, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return message.ErrMessageNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.Delete.Detail: %v", err)
		return err
	}

	if existing.SenderID != sc.UserID {
		return message.ErrNotAuthor
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return message.ErrMessageNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.Delete.Delete: %v", err)
		return err
	}

	uc.fanout(ctx, websocket.NewMessageDeletedEvent(existing), existing)

	return nil
}

// fanout pushes a message lifecycle event to the affected users: both
// conversation members for a direct message, everyone for a feed message.
// Delivery is best-effort so the REST response never depends on it.
func (uc *usecase) fanout(ctx context.Context, event any, msg model.Message) {
	if msg.IsDirect() {
		uc.delivery.SendToConversation(ctx, event, msg.SenderID, *msg.ReceiverID)
		return
	}
	uc.delivery.BroadcastAll(ctx, event)
}
