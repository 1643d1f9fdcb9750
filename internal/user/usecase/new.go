package usecase

import (
	"chat-srv/internal/user"
	"chat-srv/internal/user/repository"
	pkgLog "chat-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
