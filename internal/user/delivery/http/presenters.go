package http

import (
	"time"

	"chat-srv/internal/model"
)

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

func newListUserResp(usrs []model.User) []userResp {
	res := make([]userResp, len(usrs))
	for i, usr := range usrs {
		res[i] = newUserResp(usr)
	}
	return res
}
