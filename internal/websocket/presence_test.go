package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"chat-srv/internal/model"
)

func newTestSweeper(r *Registry, d *Delivery, threshold time.Duration) *Sweeper {
	return NewSweeper(r, d, threshold, time.Minute, testLogger{})
}

func TestSweeper_BroadcastsInactiveCrossing(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	threshold := 5 * time.Minute

	r := NewRegistry()
	r.clock = func() time.Time { return now }
	d := NewDelivery(r, testLogger{})
	s := newTestSweeper(r, d, threshold)

	idle := newTestConn(1, 4)
	observer := newTestConn(2, 4)
	r.Register(1, idle)
	r.Register(2, observer)

	// Past the threshold for user 1; user 2 stays fresh.
	later := now.Add(threshold + time.Second)
	r.clock = func() time.Time { return later }
	s.clock = func() time.Time { return later }
	r.Touch(2)

	s.sweep(ctx)

	data := drain(observer)
	if data == nil {
		t.Fatal("observer did not receive the inactive broadcast")
	}
	var ev UserStatusEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("inactive broadcast is not valid JSON: %v", err)
	}
	if ev.Type != EventUserStatus || ev.UserID != 1 || ev.Status != model.PresenceInactive {
		t.Errorf("inactive broadcast = %+v, want user_status inactive for user 1", ev)
	}

	// The idle user is not told about their own transition.
	if drain(idle) != nil {
		t.Error("idle user received their own inactive broadcast")
	}
}

func TestSweeper_BroadcastsCrossingOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	threshold := 5 * time.Minute

	r := NewRegistry()
	r.clock = func() time.Time { return now }
	d := NewDelivery(r, testLogger{})
	s := newTestSweeper(r, d, threshold)

	r.Register(1, newTestConn(1, 4))
	observer := newTestConn(2, 8)
	r.Register(2, observer)

	later := now.Add(threshold + time.Second)
	r.clock = func() time.Time { return later }
	s.clock = func() time.Time { return later }
	r.Touch(2)

	s.sweep(ctx)
	s.sweep(ctx)

	if drain(observer) == nil {
		t.Fatal("first sweep did not broadcast")
	}
	if drain(observer) != nil {
		t.Error("second sweep re-broadcast an already-flagged user")
	}
}

func TestSweeper_ReactivationRearmsBroadcast(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	threshold := 5 * time.Minute

	r := NewRegistry()
	r.clock = func() time.Time { return now }
	d := NewDelivery(r, testLogger{})
	s := newTestSweeper(r, d, threshold)

	r.Register(1, newTestConn(1, 4))
	observer := newTestConn(2, 8)
	r.Register(2, observer)

	step := func(at time.Time) {
		r.clock = func() time.Time { return at }
		s.clock = func() time.Time { return at }
		r.Touch(2)
	}

	// First crossing.
	step(now.Add(threshold + time.Second))
	s.sweep(ctx)
	if drain(observer) == nil {
		t.Fatal("first crossing did not broadcast")
	}

	// User 1 becomes active again, then goes idle a second time.
	r.Touch(1)
	s.sweep(ctx)
	if drain(observer) != nil {
		t.Fatal("sweep broadcast for an active user")
	}

	step(now.Add(3 * threshold))
	s.sweep(ctx)
	if drain(observer) == nil {
		t.Error("second crossing after reactivation did not broadcast")
	}
}

func TestSweeper_DropsFlagsOfDepartedUsers(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	threshold := 5 * time.Minute

	r := NewRegistry()
	r.clock = func() time.Time { return now }
	d := NewDelivery(r, testLogger{})
	s := newTestSweeper(r, d, threshold)

	conn := newTestConn(1, 4)
	r.Register(1, conn)

	later := now.Add(threshold + time.Second)
	r.clock = func() time.Time { return later }
	s.clock = func() time.Time { return later }

	s.sweep(ctx)
	if _, ok := s.flagged[1]; !ok {
		t.Fatal("sweep did not flag the idle user")
	}

	r.Unregister(1, conn)
	s.sweep(ctx)
	if _, ok := s.flagged[1]; ok {
		t.Error("flag survived the user going offline")
	}
}

func TestSweeper_StopTerminatesRun(t *testing.T) {
	r := NewRegistry()
	d := NewDelivery(r, testLogger{})
	s := NewSweeper(r, d, time.Minute, time.Millisecond, testLogger{})

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	s.Stop()
	s.Stop() // idempotent

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after Stop()")
	}
}
