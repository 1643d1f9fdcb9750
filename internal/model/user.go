package model

import "time"

// User represents a user entity in the domain layer.
// PasswordHash never leaves the server; presenters strip it.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
