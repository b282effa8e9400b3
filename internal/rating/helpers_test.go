package rating

import (
	"context"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

// recorder is an EventPublisher capturing every event in order.
type recorder struct {
	events []Event
	hooks  map[string]func(context.Context, Event)
}

func newRecorder() *recorder {
	return &recorder{hooks: make(map[string]func(context.Context, Event))}
}

func (r *recorder) Publish(ctx context.Context, event ports.DomainEvent) error {
	e := event.(Event)
	r.events = append(r.events, e)
	if hook := r.hooks[e.Type]; hook != nil {
		hook(ctx, e)
	}
	return nil
}

func (r *recorder) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, nil
}

func (r *recorder) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *recorder) count(eventType string) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

var (
	readyType   = EventType(EventReady, DefaultNamespace)
	changedType = EventType(EventChanged, DefaultNamespace)
)
