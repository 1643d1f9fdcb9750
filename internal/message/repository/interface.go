package repository

import (
	"context"
	"errors"

	"chat-srv/internal/model"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Message, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Message, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Message, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Message, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
