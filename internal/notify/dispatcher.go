package notify

import (
	"context"
	"errors"
	"time"

	model "trader-bot/internal/models"
	"trader-bot/internal/worker"
	"trader-bot/utils"
)

const deliverTimeout = 5 * time.Second

// Dispatcher hands notifications to a sink on a bounded worker pool.
// Enqueue never blocks; a full queue drops the notification with a warning.
type Dispatcher struct {
	pool *worker.Pool
	sink Sink
}

// NewDispatcher creates a dispatcher delivering through sink
func NewDispatcher(pool *worker.Pool, sink Sink) *Dispatcher {
	return &Dispatcher{pool: pool, sink: sink}
}

// Enqueue schedules delivery of n and reports whether it was accepted
func (d *Dispatcher) Enqueue(n model.Notification) bool {
	err := d.pool.Submit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
		defer cancel()

		if err := d.sink.Deliver(ctx, n); err != nil {
			utils.Warn("notification delivery failed", map[string]any{
				"notification_id": n.ID,
				"recipient":       n.Recipient,
				"kind":            n.Kind,
				"error":           err.Error(),
			})
			return
		}
		utils.Debug("notification delivered", map[string]any{
			"notification_id": n.ID,
			"recipient":       n.Recipient,
		})
	})
	if err != nil {
		reason := "queue full"
		if errors.Is(err, worker.ErrClosed) {
			reason = "dispatcher closed"
		}
		utils.Warn("notification dropped", map[string]any{
			"notification_id": n.ID,
			"recipient":       n.Recipient,
			"kind":            n.Kind,
			"reason":          reason,
		})
		return false
	}
	return true
}

// Close waits for queued notifications to be delivered
func (d *Dispatcher) Close(ctx context.Context) error {
	return d.pool.Close(ctx)
}

// NewNotification builds a notification with a fresh event id
func NewNotification(guildID, recipient string, kind model.NotificationKind, payload map[string]any, at time.Time) model.Notification {
	return model.Notification{
		ID:        utils.GenerateID(),
		GuildID:   guildID,
		Recipient: recipient,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: at,
	}
}
