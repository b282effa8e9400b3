package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

// ErrNotActive is returned by operations that need an initialized widget.
var ErrNotActive = errors.New("rating widget is not initialized")

// State is the lifecycle state of a widget.
type State int

const (
	// Uninitialized widgets show plain text and ignore activations.
	Uninitialized State = iota
	// Active widgets show icons and accept activations.
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "uninitialized"
}

// Option customizes a Widget.
type Option func(*Widget)

// WithResolver sets the settings resolver, typically bound to a global source.
func WithResolver(resolver *Resolver) Option {
	return func(w *Widget) {
		if resolver != nil {
			w.resolver = resolver
		}
	}
}

// WithPublisher sets the publisher events are emitted to.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(w *Widget) {
		w.publisher = publisher
	}
}

// WithNamespace sets the namespace appended to event names.
func WithNamespace(namespace string) Option {
	return func(w *Widget) {
		w.namespace = namespace
	}
}

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Widget is a star rating picker bound to one Element. All of its state lives
// in the element's Attributes, so a second Widget bound to the same element
// sees an initialized widget and replaces it on Init.
type Widget struct {
	element   *Element
	resolver  *Resolver
	emitter   *Emitter
	logger    ports.Logger
	publisher ports.EventPublisher
	namespace string
}

// New binds a widget to element. The element stays owned by the caller.
func New(element *Element, opts ...Option) *Widget {
	w := &Widget{
		element:  element,
		resolver: NewResolver(nil),
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("component", "widget", "element_id", element.ID().String())
	w.emitter = NewEmitter(w.publisher, w.namespace, w.logger)
	return w
}

// Element returns the host element.
func (w *Widget) Element() *Element {
	return w.element
}

// Namespace returns the namespace appended to emitted event names.
func (w *Widget) Namespace() string {
	return w.emitter.Namespace()
}

// State reports the lifecycle state.
func (w *Widget) State() State {
	if w.element.attrs.Initialized {
		return Active
	}
	return Uninitialized
}

// Value returns the stored value, or NaN when none is stored.
func (w *Widget) Value() Value {
	v, _ := w.element.storedValue()
	return v
}

// Icons returns the currently rendered icons.
func (w *Widget) Icons() []Icon {
	return w.element.Icons()
}

// Settings resolves the effective settings for the element.
func (w *Widget) Settings() (Settings, error) {
	return w.resolver.Resolve(w.element.attrs.Settings)
}

// Setting resolves a single settings key, or the whole Settings when key is unknown.
func (w *Widget) Setting(key string) (any, error) {
	return w.resolver.ResolveKey(w.element.attrs.Settings, key)
}

// Init converts the element's numeric text into icons and emits ready. An
// active widget is destroyed first. When the settings cannot be resolved the
// element is left untouched.
func (w *Widget) Init(ctx context.Context) error {
	settings, err := w.Settings()
	if err != nil {
		w.logger.Error(ctx, "init aborted", "error", err)
		return fmt.Errorf("init: %w", err)
	}

	if w.element.attrs.Initialized {
		w.Destroy(ctx)
	}

	value := ParseValue(w.element.Text())
	if value.IsNaN() {
		w.logger.Debug(ctx, "element content is not numeric", "content", w.element.Text())
	}

	w.element.attrs.Initialized = true
	w.element.storeValue(value)
	w.element.setIcons(Render(value, settings))
	w.element.bind(w.element.OnActivate(NewInputHandler(w).Handle))

	w.logger.Debug(ctx, "widget initialized", "value", value, "top_limit", settings.TopLimit)
	w.emitter.Emit(ctx, EventReady, w.element)
	return nil
}

// Destroy writes the last known value back as plain text and clears the
// widget state. On an element that was never initialized the displayed text
// is kept as is.
func (w *Widget) Destroy(ctx context.Context) {
	value, stored := w.element.storedValue()

	w.element.unbind()
	w.element.attrs.Initialized = false
	w.element.attrs.Value = nil

	if stored {
		w.element.SetText(value.String())
	} else {
		w.element.SetText(w.element.Text())
	}
	w.logger.Debug(ctx, "widget destroyed", "content", w.element.Text())
}

// Update stores value, renders it and emits changed. The value is stored as
// given; range checks belong to the input handler.
func (w *Widget) Update(ctx context.Context, value Value) error {
	if w.State() != Active {
		return ErrNotActive
	}

	settings, err := w.Settings()
	if err != nil {
		w.logger.Error(ctx, "update aborted", "error", err)
		return fmt.Errorf("update: %w", err)
	}

	w.element.storeValue(value)
	w.element.setIcons(Render(value, settings))

	w.logger.Debug(ctx, "value changed", "value", value)
	w.emitter.Emit(ctx, EventChanged, w.element, value)
	return nil
}

// Render redraws the stored value with freshly resolved settings. It emits no
// event.
func (w *Widget) Render(ctx context.Context) error {
	if w.State() != Active {
		return ErrNotActive
	}

	settings, err := w.Settings()
	if err != nil {
		w.logger.Error(ctx, "render aborted", "error", err)
		return fmt.Errorf("render: %w", err)
	}

	w.element.setIcons(Render(w.Value(), settings))
	return nil
}
