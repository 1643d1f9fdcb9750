package message

import "errors"

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrNotAuthor        = errors.New("only the author can modify a message")
	ErrEmptyContent     = errors.New("content must not be empty")
)
