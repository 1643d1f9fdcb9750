package repository

import (
	"context"
	"errors"

	"chat-srv/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.User, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.User, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.User, error)
}
