package websocket

import (
	"testing"
	"time"

	"chat-srv/internal/model"
)

func TestRegistry_RegisterUnregister(t *testing.T) {
	r := NewRegistry()
	c1 := newTestConn(1, 1)
	c2 := newTestConn(1, 1)

	if first := r.Register(1, c1); !first {
		t.Error("Register() first connection = false, want true")
	}
	if first := r.Register(1, c2); first {
		t.Error("Register() second connection = true, want false")
	}

	if got := len(r.Conns(1)); got != 2 {
		t.Errorf("Conns() len = %d, want 2", got)
	}

	if last := r.Unregister(1, c1); last {
		t.Error("Unregister() with one connection remaining = true, want false")
	}
	if last := r.Unregister(1, c2); !last {
		t.Error("Unregister() last connection = false, want true")
	}

	// A user with zero connections must not appear anywhere.
	if got := r.Conns(1); got != nil {
		t.Errorf("Conns() after full unregister = %v, want nil", got)
	}
	if got := len(r.UserIDs()); got != 0 {
		t.Errorf("UserIDs() len = %d, want 0", got)
	}
	if _, ok := r.LastActivity(1); ok {
		t.Error("LastActivity() after full unregister reported a session")
	}
}

func TestRegistry_UnregisterAbsent(t *testing.T) {
	r := NewRegistry()
	c1 := newTestConn(1, 1)
	stranger := newTestConn(1, 1)

	if last := r.Unregister(1, c1); last {
		t.Error("Unregister() on empty registry = true, want false")
	}

	r.Register(1, c1)
	if last := r.Unregister(1, stranger); last {
		t.Error("Unregister() of unknown connection = true, want false")
	}
	if got := len(r.Conns(1)); got != 1 {
		t.Errorf("Conns() len after no-op unregister = %d, want 1", got)
	}
}

func TestRegistry_Status(t *testing.T) {
	now := time.Now()
	threshold := 5 * time.Minute

	tests := []struct {
		name  string
		idle  time.Duration
		setup bool
		want  model.PresenceStatus
	}{
		{name: "unregistered user is offline", setup: false, want: model.PresenceOffline},
		{name: "fresh activity is active", setup: true, idle: 0, want: model.PresenceActive},
		{name: "just under threshold is active", setup: true, idle: threshold - time.Second, want: model.PresenceActive},
		{name: "at threshold is inactive", setup: true, idle: threshold, want: model.PresenceInactive},
		{name: "long idle is inactive", setup: true, idle: time.Hour, want: model.PresenceInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.clock = func() time.Time { return now }

			if tt.setup {
				r.Register(7, newTestConn(7, 1))
				r.clock = func() time.Time { return now.Add(tt.idle) }
			}

			if got := r.Status(7, threshold); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_TouchRefreshesActivity(t *testing.T) {
	now := time.Now()
	threshold := 5 * time.Minute

	r := NewRegistry()
	r.clock = func() time.Time { return now }
	r.Register(1, newTestConn(1, 1))

	// Cross the threshold, then touch at the later time.
	later := now.Add(threshold + time.Minute)
	r.clock = func() time.Time { return later }

	if got := r.Status(1, threshold); got != model.PresenceInactive {
		t.Fatalf("Status() before touch = %v, want inactive", got)
	}

	r.Touch(1)
	if got := r.Status(1, threshold); got != model.PresenceActive {
		t.Errorf("Status() after touch = %v, want active", got)
	}

	// Touching an unregistered user must not create a session.
	r.Touch(99)
	if _, ok := r.LastActivity(99); ok {
		t.Error("Touch() created a session for an unregistered user")
	}
}

func TestRegistry_ActiveUserIDs(t *testing.T) {
	now := time.Now()
	threshold := 5 * time.Minute

	r := NewRegistry()
	r.clock = func() time.Time { return now }
	r.Register(1, newTestConn(1, 1))
	r.Register(2, newTestConn(2, 1))

	// User 1 stays fresh, user 2 goes stale.
	later := now.Add(threshold + time.Second)
	r.clock = func() time.Time { return later }
	r.Touch(1)

	ids := r.ActiveUserIDs(threshold)
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("ActiveUserIDs() = %v, want [1]", ids)
	}
}

func TestRegistry_Stats(t *testing.T) {
	r := NewRegistry()
	r.Register(1, newTestConn(1, 1))
	r.Register(1, newTestConn(1, 1))
	r.Register(2, newTestConn(2, 1))

	stats := r.Stats()
	if stats.ActiveConnections != 3 {
		t.Errorf("Stats().ActiveConnections = %d, want 3", stats.ActiveConnections)
	}
	if stats.UniqueUsers != 2 {
		t.Errorf("Stats().UniqueUsers = %d, want 2", stats.UniqueUsers)
	}
}
