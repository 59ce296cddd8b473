// Package events publishes ledger changes for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Event types.
const (
	EntryRecorded = "ledger.entry_recorded"
	EntryDeleted  = "ledger.entry_deleted"
	LedgerReset   = "ledger.reset"
)

// Event describes one change to a group's ledger.
type Event struct {
	Type       string    `json:"type"`
	GroupID    string    `json:"groupId"`
	EntryID    string    `json:"entryId,omitempty"`
	Kind       string    `json:"kind,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	ActorID    string    `json:"actorId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ToJSON encodes the event as a message body.
func (e Event) ToJSON() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return body, nil
}

// Publisher delivers ledger events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
