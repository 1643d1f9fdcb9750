package http

import (
	"time"

	"chat-srv/internal/message"
	"chat-srv/internal/model"
)

type sendReq struct {
	ReceiverID *int64 `json:"receiver_id"`
	Content    string `json:"content" binding:"required"`
}

func (r sendReq) toInput() message.SendInput {
	return message.SendInput{
		ReceiverID: r.ReceiverID,
		Content:    r.Content,
	}
}

type updateReq struct {
	Content string `json:"content" binding:"required"`
}

func updateInput(id int64, r updateReq) message.UpdateInput {
	return message.UpdateInput{
		ID:      id,
		Content: r.Content,
	}
}

type messageResp struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID *int64    `json:"receiver_id,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func newMessageResp(msg model.Message) messageResp {
	return messageResp{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		CreatedAt:  msg.CreatedAt,
	}
}

func newListMessageResp(msgs []model.Message) []messageResp {
	res := make([]messageResp, len(msgs))
	for i, msg := range msgs {
		res[i] = newMessageResp(msg)
	}
	return res
}
