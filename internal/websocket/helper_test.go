package websocket

import (
	"context"
)

// testLogger discards everything. The realtime core logs on best-effort
// paths, which is noise in tests.
type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Info(ctx context.Context, arg ...any)                     {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Error(ctx context.Context, arg ...any)                    {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// newTestConn builds a connection that buffers up to n outbound frames
// without a running write pump. n == 0 yields a connection whose enqueue
// always fails, standing in for a dead peer.
func newTestConn(userID int64, n int) *Connection {
	return &Connection{
		userID: userID,
		send:   make(chan []byte, n),
		done:   make(chan struct{}),
		logger: testLogger{},
	}
}

// drain pops one buffered frame, or nil when none is pending.
func drain(c *Connection) []byte {
	select {
	case data := <-c.send:
		return data
	default:
		return nil
	}
}
