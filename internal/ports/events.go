package ports

import "context"

// DomainEvent represents a notification published by the widget. Events carry
// a structured payload that subscribers can use for logging or UI updates.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns only after every handler ran, so a handler
// observes the state the event describes. Handlers may call back into the
// publishing component.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// surfaced via the returned error so publishers can log and keep delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
