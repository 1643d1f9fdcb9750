package websocket

import (
	"sync"
	"time"

	"chat-srv/internal/model"
)

// session holds the live connections and the last-activity timestamp for one
// user. A session exists iff the user has at least one connection.
type session struct {
	conns        map[*Connection]struct{}
	lastActivity time.Time
}

// Registry maps user IDs to their live connections (one user, many tabs) and
// tracks per-user activity. All methods are safe for concurrent use; callers
// iterate over snapshots, never over the live sets.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*session

	clock func() time.Time
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*session),
		clock:    time.Now,
	}
}

// Register adds conn to the user's connection set, creating the session if
// absent, and refreshes the activity timestamp. It reports whether this is
// the user's first live connection (the online transition).
func (r *Registry) Register(userID int64, conn *Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.sessions[userID]
	if !exists {
		s = &session{conns: make(map[*Connection]struct{})}
		r.sessions[userID] = s
	}
	s.conns[conn] = struct{}{}
	s.lastActivity = r.clock()

	return !exists
}

// Unregister removes conn from the user's connection set, deleting the whole
// session when the set becomes empty. Removing an absent connection is a
// no-op. It reports whether the user has gone fully offline.
func (r *Registry) Unregister(userID int64, conn *Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.sessions[userID]
	if !exists {
		return false
	}
	if _, ok := s.conns[conn]; !ok {
		return false
	}

	delete(s.conns, conn)
	if len(s.conns) == 0 {
		delete(r.sessions, userID)
		return true
	}
	return false
}

// Touch refreshes the user's activity timestamp. No-op when the user has no
// registered session.
func (r *Registry) Touch(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		s.lastActivity = r.clock()
	}
}

// Conns returns a snapshot of the user's current connections.
func (r *Registry) Conns(userID int64) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[userID]
	if !ok {
		return nil
	}
	conns := make([]*Connection, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	return conns
}

// UserIDs returns a snapshot of the currently registered user identities.
func (r *Registry) UserIDs() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}

// LastActivity returns the user's last-activity timestamp.
func (r *Registry) LastActivity(userID int64) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[userID]
	if !ok {
		return time.Time{}, false
	}
	return s.lastActivity, true
}

// Status classifies the user for the given inactivity threshold.
func (r *Registry) Status(userID int64, threshold time.Duration) model.PresenceStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[userID]
	if !ok {
		return model.PresenceOffline
	}
	if r.clock().Sub(s.lastActivity) < threshold {
		return model.PresenceActive
	}
	return model.PresenceInactive
}

// ActiveUserIDs returns the registered users whose last activity is within
// the threshold.
func (r *Registry) ActiveUserIDs(threshold time.Duration) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.clock()
	ids := make([]int64, 0, len(r.sessions))
	for id, s := range r.sessions {
		if now.Sub(s.lastActivity) < threshold {
			ids = append(ids, id)
		}
	}
	return ids
}

// RegistryStats reports registry occupancy for health endpoints.
type RegistryStats struct {
	ActiveConnections int `json:"active_connections"`
	UniqueUsers       int `json:"unique_users"`
}

// Stats returns current registry statistics.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, s := range r.sessions {
		total += len(s.conns)
	}
	return RegistryStats{
		ActiveConnections: total,
		UniqueUsers:       len(r.sessions),
	}
}
