package user

import (
	"context"

	"chat-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (UserOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (UserOutput, error)
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	List(ctx context.Context, sc model.Scope) ([]model.User, error)
	GetOne(ctx context.Context, sc model.Scope, ip GetOneInput) (model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
