package http

import (
	"chat-srv/internal/message"
	pkgLog "chat-srv/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc message.UseCase
}

func New(l pkgLog.Logger, uc message.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
