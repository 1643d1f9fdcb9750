package http

import (
	"time"

	"chat-srv/internal/auth"
	"chat-srv/internal/model"
)

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type userResp struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(usr model.User) userResp {
	return userResp{
		ID:        usr.ID,
		Name:      usr.Name,
		Email:     usr.Email,
		CreatedAt: usr.CreatedAt,
	}
}

type loginResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userResp `json:"user"`
}

func newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		AccessToken: out.Token,
		TokenType:   "bearer",
		User:        newUserResp(out.User),
	}
}
