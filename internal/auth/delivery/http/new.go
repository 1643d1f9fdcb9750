package http

import (
	"chat-srv/internal/auth"
	pkgLog "chat-srv/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc auth.UseCase
}

func New(l pkgLog.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
