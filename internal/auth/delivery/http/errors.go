package http

import (
	"net/http"

	"chat-srv/internal/auth"
	"chat-srv/internal/user"
	pkgErrors "chat-srv/pkg/errors"
)

var (
	errInvalidCredentials = pkgErrors.NewHTTPError(401, "Incorrect email or password", http.StatusUnauthorized)
	errEmailExists        = pkgErrors.NewHTTPError(409, "Email already registered", http.StatusConflict)
	errInvalidToken       = pkgErrors.NewHTTPError(401, "Invalid token", http.StatusUnauthorized)
	errBadRequest         = pkgErrors.NewHTTPError(400, "Invalid request", http.StatusBadRequest)
)

func (h *handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		auth.ErrInvalidCredentials: errInvalidCredentials,
		auth.ErrInvalidToken:       errInvalidToken,
		user.ErrEmailExists:        errEmailExists,
	}
}
