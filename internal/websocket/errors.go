package websocket

import "errors"

var (
	// ErrConnClosed is returned when enqueueing on a closed connection.
	ErrConnClosed = errors.New("connection closed")
	// ErrSendBufferFull is returned when the connection's send buffer is full.
	ErrSendBufferFull = errors.New("send buffer full")
	// ErrMalformedFrame is returned for undecodable or untyped inbound frames.
	ErrMalformedFrame = errors.New("malformed frame")
)

// WebSocket close codes distinguishing the credential failure on connect.
const (
	CloseInvalidToken = 4001
	CloseTokenExpired = 4002
	CloseTokenRevoked = 4003
)
