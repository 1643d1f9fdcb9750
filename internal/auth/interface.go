package auth

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, token string) error
}
