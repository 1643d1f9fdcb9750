package user

import (
	"chat-srv/internal/model"
)

type CreateInput struct {
	Name     string
	Email    string
	Password string
}

type GetOneInput struct {
	ID    int64
	Email string
}

type UserOutput struct {
	User model.User
}
