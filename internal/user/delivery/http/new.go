package http

import (
	"chat-srv/internal/user"
	pkgLog "chat-srv/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

func New(l pkgLog.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
