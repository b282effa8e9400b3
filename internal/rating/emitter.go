package rating

import (
	"context"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

const (
	// DefaultNamespace is appended to event names unless configured otherwise.
	DefaultNamespace = "ferrl"

	// EventReady is emitted once a widget finished Init.
	EventReady = "ready"
	// EventChanged is emitted after Update with the new value as payload.
	EventChanged = "changed"

	eventCategory = "star_rating"
)

// EventType composes the namespaced event type, e.g. "changed.ferrl.star_rating".
func EventType(name, namespace string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return name + "." + namespace + "." + eventCategory
}

// Event is a published widget notification. Args holds the payload in the
// order it was emitted.
type Event struct {
	Type    string
	Element *Element
	Args    []any
}

// EventType implements ports.DomainEvent.
func (e Event) EventType() string {
	return e.Type
}

// Payload implements ports.DomainEvent.
func (e Event) Payload() interface{} {
	payload := map[string]interface{}{}
	if e.Element != nil {
		payload["element_id"] = e.Element.ID().String()
	}
	if len(e.Args) > 0 {
		payload["args"] = e.Args
	}
	return payload
}

// Emitter publishes namespaced widget events.
type Emitter struct {
	publisher ports.EventPublisher
	namespace string
	logger    ports.Logger
}

// NewEmitter creates an Emitter. A nil publisher drops every event.
func NewEmitter(publisher ports.EventPublisher, namespace string, logger ports.Logger) *Emitter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Emitter{publisher: publisher, namespace: namespace, logger: logger}
}

// Namespace returns the namespace appended to event names.
func (e *Emitter) Namespace() string {
	return e.namespace
}

// Emit publishes name scoped to element. Delivery failures are logged and
// never returned.
func (e *Emitter) Emit(ctx context.Context, name string, element *Element, payload ...any) {
	if e == nil || e.publisher == nil {
		return
	}
	event := Event{
		Type:    EventType(name, e.namespace),
		Element: element,
		Args:    payload,
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn(ctx, "event delivery failed", "event_type", event.Type, "error", err)
	}
}
