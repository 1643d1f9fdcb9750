package usecase

import (
	"context"

	"chat-srv/internal/auth"
	"chat-srv/internal/model"
	"chat-srv/internal/user"
	"chat-srv/pkg/encrypter"
	"chat-srv/pkg/jwt"
)

func (uc *usecase) Register(ctx context.Context, ip auth.RegisterInput) (auth.RegisterOutput, error) {
	out, err := uc.users.Create(ctx, model.Scope{}, user.CreateInput{
		Name:     ip.Name,
		Email:    ip.Email,
		Password: ip.Password,
	})
	if err != nil {
		if err != user.ErrEmailExists {
			uc.l.Errorf(ctx, "internal.auth.usecase.Register: %v", err)
		}
		return auth.RegisterOutput{}, err
	}

	return auth.RegisterOutput{User: out.User}, nil
}

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	usr, err := uc.users.GetOne(ctx, model.Scope{}, user.GetOneInput{Email: ip.Email})
	if err != nil {
		if err == user.ErrUserNotFound {
			// Same error for unknown email and wrong password.
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetOne: %v", err)
		return auth.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.PasswordHash) {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtMgr.Generate(usr.ID, usr.Email)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Generate: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Token: token, User: usr}, nil
}

func (uc *usecase) Logout(ctx context.Context, token string) error {
	if err := uc.jwtMgr.Revoke(ctx, token); err != nil {
		if err == jwt.ErrInvalidToken || err == jwt.ErrTokenExpired {
			return auth.ErrInvalidToken
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout: %v", err)
		return err
	}
	return nil
}
