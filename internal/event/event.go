package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event is a notification published on the bus
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata, nil otherwise
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	// PlayerUpdated is published after an update has been folded into the snapshot
	PlayerUpdated Type = "player.updated"
	// PlayerBaselineLoaded is published once the hiscores baseline has been fetched
	PlayerBaselineLoaded Type = "player.baseline_loaded"
)

// PlayerUpdatedPayloadV1 describes one applied update
type PlayerUpdatedPayloadV1 struct {
	Kind      string `json:"kind"`
	Username  string `json:"username"`
	Revision  uint64 `json:"revision"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerBaselineLoadedPayloadV1 describes the outcome of the baseline fetch
type PlayerBaselineLoadedPayloadV1 struct {
	Username    string `json:"username"`
	Skills      int    `json:"skills"`
	CombatLevel int    `json:"combat_level"`
	Timestamp   int64  `json:"timestamp"`
}

// NewPlayerUpdatedEvent creates a player updated event
func NewPlayerUpdatedEvent(kind, username string, revision uint64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerUpdated,
		Payload: PlayerUpdatedPayloadV1{
			Kind:      kind,
			Username:  username,
			Revision:  revision,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyKind: kind,
		},
	}
}

// NewPlayerBaselineLoadedEvent creates a baseline loaded event
func NewPlayerBaselineLoadedEvent(username string, skills, combatLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerBaselineLoaded,
		Payload: PlayerBaselineLoadedPayloadV1{
			Username:    username,
			Skills:      skills,
			CombatLevel: combatLevel,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber for the event type synchronously and joins
// their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
