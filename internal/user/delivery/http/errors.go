package http

import (
	"chat-srv/internal/user"
	pkgErrors "chat-srv/pkg/errors"
)

var errUserNotFound = pkgErrors.NewNotFoundHTTPError("User not found")

func (h *handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		user.ErrUserNotFound: errUserNotFound,
	}
}
