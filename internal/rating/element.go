package rating

import (
	"context"
	"strconv"

	"github.com/google/uuid"
)

// Attributes is the persisted widget state carried by an element. It is the
// complete externally visible representation of a bound widget.
type Attributes struct {
	Initialized bool
	Value       *Value
	Settings    *string
}

// ActivationEvent is a pointer or key activation that reached the element.
// Target holds the index attribute of the activated icon and is empty when
// the activation did not originate from an icon.
type ActivationEvent struct {
	Target string
}

// Index parses the target's icon index.
func (e ActivationEvent) Index() (int, bool) {
	if e.Target == "" {
		return 0, false
	}
	index, err := strconv.Atoi(e.Target)
	if err != nil {
		return 0, false
	}
	return index, true
}

// ActivationListener receives activations bubbling up to the element.
type ActivationListener func(context.Context, ActivationEvent)

type listenerEntry struct {
	id       int
	listener ActivationListener
}

// Element is the host display surface a widget binds to. It shows either
// plain text or a row of rendered icons. An Element is not safe for
// concurrent use.
type Element struct {
	id        uuid.UUID
	text      string
	icons     []Icon
	attrs     Attributes
	listeners []listenerEntry
	nextID    int
	binding   func()
}

// NewElement creates an element displaying content.
func NewElement(content string) *Element {
	return &Element{id: uuid.New(), text: content}
}

// ID returns the element's opaque handle.
func (e *Element) ID() uuid.UUID {
	return e.id
}

// Text returns the plain text content. It is empty while icons are rendered.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the content with plain text.
func (e *Element) SetText(text string) {
	e.icons = nil
	e.text = text
}

// Icons returns a copy of the rendered icons.
func (e *Element) Icons() []Icon {
	if len(e.icons) == 0 {
		return nil
	}
	out := make([]Icon, len(e.icons))
	copy(out, e.icons)
	return out
}

// Attributes returns a copy of the persisted widget state.
func (e *Element) Attributes() Attributes {
	attrs := Attributes{Initialized: e.attrs.Initialized}
	if e.attrs.Value != nil {
		v := *e.attrs.Value
		attrs.Value = &v
	}
	if e.attrs.Settings != nil {
		s := *e.attrs.Settings
		attrs.Settings = &s
	}
	return attrs
}

// SetOverride attaches a serialized per-instance settings override. It is
// read on the next resolution.
func (e *Element) SetOverride(raw string) {
	e.attrs.Settings = &raw
}

// ClearOverride removes the per-instance settings override.
func (e *Element) ClearOverride() {
	e.attrs.Settings = nil
}

// OnActivate registers a listener and returns the function that removes it.
func (e *Element) OnActivate(listener ActivationListener) func() {
	if listener == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listenerEntry{id: id, listener: listener})

	return func() {
		for i, entry := range e.listeners {
			if entry.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Activate delivers an activation to the listeners registered when it started.
func (e *Element) Activate(ctx context.Context, event ActivationEvent) {
	listeners := append([]listenerEntry(nil), e.listeners...)
	for _, entry := range listeners {
		entry.listener(ctx, event)
	}
}

// ActivateIcon activates the icon at the 1-based position of the current
// render. Positions without an icon activate the element itself.
func (e *Element) ActivateIcon(ctx context.Context, position int) {
	event := ActivationEvent{}
	if position >= 1 && position <= len(e.icons) {
		event.Target = strconv.Itoa(e.icons[position-1].Index)
	}
	e.Activate(ctx, event)
}

func (e *Element) setIcons(icons []Icon) {
	e.text = ""
	e.icons = icons
}

func (e *Element) storeValue(v Value) {
	e.attrs.Value = &v
}

func (e *Element) storedValue() (Value, bool) {
	if e.attrs.Value == nil {
		return Value{}, false
	}
	return *e.attrs.Value, true
}

func (e *Element) bind(unbind func()) {
	e.unbind()
	e.binding = unbind
}

func (e *Element) unbind() {
	if e.binding != nil {
		e.binding()
		e.binding = nil
	}
}
