// Package events publishes presence changes after they commit.
package events

import (
	"context"
	"time"
)

// PresenceEvent describes one committed transition.
type PresenceEvent struct {
	RecordID           string    `json:"recordId"`
	Action             string    `json:"action"`
	UserID             string    `json:"userId"`
	LocationID         string    `json:"locationId,omitempty"`
	PreviousLocationID string    `json:"previousLocationId,omitempty"`
	ActionTime         time.Time `json:"actionTime"`
	RecordedAt         time.Time `json:"recordedAt"`
}

// Publisher delivers presence events. Delivery is best effort; callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, e PresenceEvent) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, PresenceEvent) error { return nil }
func (Nop) Close() error                                 { return nil }
