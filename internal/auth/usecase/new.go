package usecase

import (
	"chat-srv/internal/auth"
	"chat-srv/internal/user"
	"chat-srv/pkg/jwt"
	pkgLog "chat-srv/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	users  user.UseCase
	jwtMgr jwt.Manager
}

func New(l pkgLog.Logger, users user.UseCase, jwtMgr jwt.Manager) auth.UseCase {
	return &usecase{
		l:      l,
		users:  users,
		jwtMgr: jwtMgr,
	}
}
