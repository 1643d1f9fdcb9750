package model

// Scope carries the identity of the caller through usecases and repositories.
type Scope struct {
	UserID int64
	Email  string
}
