package websocket

import (
	"context"
	"encoding/json"

	"chat-srv/internal/model"
	"chat-srv/pkg/log"
)

// Delivery fans out events to registered connections. Delivery is always
// best-effort: a write failure prunes the dead connection from the registry
// and is never surfaced to the caller; there is no retry and no backlog.
type Delivery struct {
	registry *Registry
	logger   log.Logger
}

// NewDelivery creates a Delivery bound to the given registry.
func NewDelivery(registry *Registry, logger log.Logger) *Delivery {
	return &Delivery{
		registry: registry,
		logger:   logger,
	}
}

// SendToUser serializes event and writes it to every connection of userID.
func (d *Delivery) SendToUser(ctx context.Context, event any, userID int64) {
	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Errorf(ctx, "internal.websocket.delivery.SendToUser.Marshal: %v", err)
		return
	}
	d.deliver(ctx, data, userID)
}

// SendToConversation delivers event to both members of a conversation.
// Idempotent when both sides are the same user.
func (d *Delivery) SendToConversation(ctx context.Context, event any, userA, userB int64) {
	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Errorf(ctx, "internal.websocket.delivery.SendToConversation.Marshal: %v", err)
		return
	}
	d.deliver(ctx, data, userA)
	if userB != userA {
		d.deliver(ctx, data, userB)
	}
}

// BroadcastExcept delivers event to every registered user except excluded.
func (d *Delivery) BroadcastExcept(ctx context.Context, event any, excluded int64) {
	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Errorf(ctx, "internal.websocket.delivery.BroadcastExcept.Marshal: %v", err)
		return
	}
	for _, userID := range d.registry.UserIDs() {
		if userID == excluded {
			continue
		}
		d.deliver(ctx, data, userID)
	}
}

// BroadcastAll delivers event to every registered user.
func (d *Delivery) BroadcastAll(ctx context.Context, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Errorf(ctx, "internal.websocket.delivery.BroadcastAll.Marshal: %v", err)
		return
	}
	for _, userID := range d.registry.UserIDs() {
		d.deliver(ctx, data, userID)
	}
}

// deliver writes data to a snapshot of the user's connections, pruning any
// connection whose send fails. Failures are isolated per connection.
func (d *Delivery) deliver(ctx context.Context, data []byte, userID int64) {
	for _, conn := range d.registry.Conns(userID) {
		if err := conn.enqueue(data); err != nil {
			d.logger.Warnf(ctx, "Dropping dead connection for user %d: %v", userID, err)
			d.prune(ctx, userID, conn)
		}
	}
}

// prune removes a dead connection from the registry, cascading the offline
// broadcast when it was the user's last one.
func (d *Delivery) prune(ctx context.Context, userID int64, conn *Connection) {
	last := d.registry.Unregister(userID, conn)
	conn.Close()
	if last {
		d.logger.Infof(ctx, "User %d went offline (dead connection pruned)", userID)
		d.BroadcastExcept(ctx, NewUserStatusEvent(userID, model.PresenceOffline), userID)
	}
}
