// Package notify defines the toast-style notification contract the portal
// core uses to surface outcomes to whatever front end is attached.
package notify

import (
	"context"
	"log/slog"

	"github.com/hrportal/employee-portal/internal/core/events"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// EventTypeNotification is published on the event bus for every notification.
const EventTypeNotification = "notification.raised"

type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

// BusNotifier fans notifications out over the event bus so front ends can
// subscribe without the workflows knowing about them.
type BusNotifier struct {
	bus    *events.EventBus
	logger *slog.Logger
}

func NewBusNotifier(bus *events.EventBus, logger *slog.Logger) *BusNotifier {
	return &BusNotifier{bus: bus, logger: logger}
}

func (n *BusNotifier) Notify(ctx context.Context, message string, severity Severity) {
	n.logger.Debug("notification raised", "severity", string(severity), "message", message)

	event := events.NewBaseEvent(EventTypeNotification, map[string]interface{}{
		"message":  message,
		"severity": string(severity),
	})
	if err := n.bus.Publish(ctx, event); err != nil {
		n.logger.Error("failed to publish notification", "error", err)
	}
}
