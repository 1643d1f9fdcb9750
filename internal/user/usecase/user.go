package usecase

import (
	"context"

	"chat-srv/internal/model"
	"chat-srv/internal/user"
	"chat-srv/internal/user/repository"
	"chat-srv/pkg/encrypter"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip user.CreateInput) (user.UserOutput, error) {
	_, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err == nil {
		return user.UserOutput{}, user.ErrEmailExists
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.GetOne: %v", err)
		return user.UserOutput{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.HashPassword: %v", err)
		return user.UserOutput{}, err
	}

	usr, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		User: model.User{
			Name:         ip.Name,
			Email:        ip.Email,
			PasswordHash: hash,
		},
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return user.UserOutput{}, user.ErrEmailExists
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Create.Create: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id int64) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.User, error) {
	usrs, err := uc.repo.List(ctx, sc, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return nil, err
	}

	return usrs, nil
}

func (uc *usecase) GetOne(ctx context.Context, sc model.Scope, ip user.GetOneInput) (model.User, error) {
	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{ID: ip.ID, Email: ip.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetOne: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

// Exists reports whether a user with the given id is registered. Used by the
// message flow to validate receivers.
func (uc *usecase) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := uc.repo.Detail(ctx, model.Scope{}, id)
	if err == repository.ErrNotFound {
		return false, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Exists: %v", err)
		return false, err
	}
	return true, nil
}
