package model

// PresenceStatus classifies a user's realtime availability.
// online/offline are connection-existence facts; active/inactive are derived
// from the time since the user's last activity.
type PresenceStatus string

const (
	PresenceOnline   PresenceStatus = "online"
	PresenceActive   PresenceStatus = "active"
	PresenceInactive PresenceStatus = "inactive"
	PresenceOffline  PresenceStatus = "offline"
)
