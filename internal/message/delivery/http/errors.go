package http

import (
	"net/http"

	"chat-srv/internal/message"
	pkgErrors "chat-srv/pkg/errors"
)

var (
	errMessageNotFound  = pkgErrors.NewNotFoundHTTPError("Message not found")
	errReceiverNotFound = pkgErrors.NewNotFoundHTTPError("Receiver not found")
	errNotAuthor        = pkgErrors.NewHTTPError(403, "Only the author can modify a message", http.StatusForbidden)
	errEmptyContent     = pkgErrors.NewHTTPError(400, "Content must not be empty", http.StatusBadRequest)
	errBadRequest       = pkgErrors.NewHTTPError(400, "Invalid request", http.StatusBadRequest)
)

func (h *handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		message.ErrMessageNotFound:  errMessageNotFound,
		message.ErrReceiverNotFound: errReceiverNotFound,
		message.ErrNotAuthor:        errNotAuthor,
		message.ErrEmptyContent:     errEmptyContent,
	}
}
