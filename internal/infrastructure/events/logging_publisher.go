package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

// Wildcard subscribes a handler to every event type.
const Wildcard = "*"

// LoggingPublisher delivers widget events to subscribers and writes each one
// as a structured log entry.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher. A nil logger disables the log entries
// but subscribers still receive events.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and invokes the handlers subscribed to its type,
// then the wildcard handlers, in subscription order.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	handlers = append(handlers, p.subs[Wildcard]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Info(ctx, "widget event", eventFields(event)...)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}

	return nil
}

func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

// Subscribe registers a handler for eventType, or for every event when
// eventType is Wildcard.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)
