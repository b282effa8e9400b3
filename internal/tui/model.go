package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	eventsinfra "github.com/alexisbeaulieu97/starrating/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/starrating/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/starrating/internal/ports"
	"github.com/alexisbeaulieu97/starrating/internal/rating"
)

// RefreshMsg asks the picker to redraw the widget with freshly resolved
// settings, e.g. after the global override changed.
type RefreshMsg struct{}

// reloadFailedMsg carries the error of a failed configuration reload.
type reloadFailedMsg struct {
	err error
}

// ReloadFunc re-reads the global settings source. It runs outside the update
// loop.
type ReloadFunc func(context.Context) error

// Options configures the picker model.
type Options struct {
	Title     string
	Glyphs    GlyphSet
	Publisher ports.EventPublisher
	Logger    ports.Logger
	// Reload is invoked by the reload key. Without it the key does nothing.
	Reload ReloadFunc
}

// feed keeps the most recent widget event for the status line. It is shared
// by all copies of a Model.
type feed struct {
	last  string
	args  []any
	count int
	sub   ports.Subscription
}

// Model is the Bubble Tea model hosting one rating widget.
type Model struct {
	ctx    context.Context
	widget *rating.Widget
	glyphs GlyphSet
	keys   KeyMap
	help   help.Model
	logger ports.Logger
	feed   *feed
	reload ReloadFunc

	title    string
	cursor   int
	err      error
	quitting bool
	width    int
}

// NewModel creates a picker for w. The widget is expected to be initialized
// already; an inactive widget is shown as plain text until it is initialized
// from the keyboard.
func NewModel(ctx context.Context, w *rating.Widget, opts Options) Model {
	glyphs := opts.Glyphs
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	title := opts.Title
	if title == "" {
		title = "Rating"
	}

	m := Model{
		ctx:    ctx,
		widget: w,
		glyphs: glyphs,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger.With("component", "tui"),
		feed:   &feed{},
		reload: opts.Reload,
		title:  title,
		width:  80,
	}

	if opts.Publisher != nil {
		f := m.feed
		sub, err := opts.Publisher.Subscribe(eventsinfra.Wildcard, func(_ context.Context, event ports.DomainEvent) error {
			f.last = event.EventType()
			f.args = nil
			if e, ok := event.(rating.Event); ok {
				f.args = e.Args
			}
			f.count++
			return nil
		})
		if err != nil {
			m.logger.Warn(ctx, "event subscription failed", "error", err)
		}
		f.sub = sub
	}

	if n, ok := w.Value().Int(); ok && n >= 1 {
		m.cursor = n
	} else {
		m.cursor = 1
	}
	m.clampCursor()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the event subscription.
func (m Model) Close() {
	if m.feed != nil && m.feed.sub != nil {
		m.feed.sub.Unsubscribe()
		m.feed.sub = nil
	}
}

// Widget returns the hosted widget.
func (m Model) Widget() *rating.Widget {
	return m.widget
}

// Value returns the widget's current value.
func (m Model) Value() rating.Value {
	return m.widget.Value()
}

// Cursor returns the focused icon position.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the last operation error shown to the user.
func (m Model) Err() error {
	return m.err
}

// EventCount returns how many widget events the picker observed.
func (m Model) EventCount() int {
	return m.feed.count
}

func (m *Model) clampCursor() {
	limit := len(m.widget.Element().Icons())
	if m.cursor > limit {
		m.cursor = limit
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}
