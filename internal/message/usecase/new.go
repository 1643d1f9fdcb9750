package usecase

import (
	"chat-srv/internal/message"
	"chat-srv/internal/message/repository"
	"chat-srv/internal/websocket"
	pkgLog "chat-srv/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	users    message.UserDirectory
	delivery *websocket.Delivery
}

func New(l pkgLog.Logger, repo repository.Repository, users message.UserDirectory, delivery *websocket.Delivery) message.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		users:    users,
		delivery: delivery,
	}
}

var _ websocket.MessageService = &usecase{}
