package websocket

import (
	"context"
	"sync"
	"time"

	"chat-srv/internal/model"
	"chat-srv/pkg/log"
)

// Sweeper periodically scans the registry and broadcasts the inactive
// transition for users whose last activity crossed the threshold. It runs
// for the lifetime of the process.
type Sweeper struct {
	registry *Registry
	delivery *Delivery

	threshold time.Duration
	interval  time.Duration

	// Users already flagged inactive, so each crossing broadcasts once.
	flagged map[int64]struct{}

	logger log.Logger

	done     chan struct{}
	stopOnce sync.Once
	clock    func() time.Time
}

// NewSweeper creates a Sweeper with the given inactivity threshold and tick
// interval.
func NewSweeper(registry *Registry, delivery *Delivery, threshold, interval time.Duration, logger log.Logger) *Sweeper {
	return &Sweeper{
		registry:  registry,
		delivery:  delivery,
		threshold: threshold,
		interval:  interval,
		flagged:   make(map[int64]struct{}),
		logger:    logger,
		done:      make(chan struct{}),
		clock:     time.Now,
	}
}

// Run starts the sweep loop. It blocks until Stop is called.
func (s *Sweeper) Run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(context.Background())
		case <-s.done:
			return
		}
	}
}

// Stop terminates the sweep loop. Safe to call multiple times.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// sweep classifies every registered user and broadcasts user_status inactive
// for fresh crossings. A failure delivering to one user never aborts the
// sweep for the others: delivery is best-effort and swallows per-connection
// errors internally.
func (s *Sweeper) sweep(ctx context.Context) {
	now := s.clock()
	registered := make(map[int64]struct{})

	for _, userID := range s.registry.UserIDs() {
		registered[userID] = struct{}{}

		last, ok := s.registry.LastActivity(userID)
		if !ok {
			// Went offline between snapshot and lookup.
			continue
		}

		if now.Sub(last) < s.threshold {
			// Active again; next crossing broadcasts anew.
			delete(s.flagged, userID)
			continue
		}

		if _, already := s.flagged[userID]; already {
			continue
		}
		s.flagged[userID] = struct{}{}

		s.logger.Debugf(ctx, "User %d inactive for %s, broadcasting", userID, now.Sub(last))
		s.delivery.BroadcastExcept(ctx, NewUserStatusEvent(userID, model.PresenceInactive), userID)
	}

	// Drop flags of users no longer registered.
	for userID := range s.flagged {
		if _, ok := registered[userID]; !ok {
			delete(s.flagged, userID)
		}
	}
}
