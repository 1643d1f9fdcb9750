package repository

import (
	"chat-srv/internal/model"
)

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user.
// ID takes precedence over Email when both are set.
type GetOneOptions struct {
	ID    int64
	Email string
}

// ListOptions contains options for listing users.
type ListOptions struct {
	IDs []int64
}
