package middleware

import (
	"chat-srv/pkg/jwt"
	"chat-srv/pkg/log"
)

type Middleware struct {
	l      log.Logger
	jwtMgr jwt.Manager
}

func New(l log.Logger, jwtMgr jwt.Manager) Middleware {
	return Middleware{
		l:      l,
		jwtMgr: jwtMgr,
	}
}
