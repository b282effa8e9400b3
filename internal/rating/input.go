package rating

import (
	"context"
)

// InputHandler maps icon activations to value updates.
type InputHandler struct {
	widget *Widget
}

// NewInputHandler creates the handler for w.
func NewInputHandler(w *Widget) InputHandler {
	return InputHandler{widget: w}
}

// Candidate applies the toggle rule: activating the icon whose index equals
// the current value clears the rating, any other icon selects its index.
func Candidate(current Value, index int) Value {
	if current.Equals(index) {
		return IntValue(0)
	}
	return IntValue(index)
}

// Handle processes one activation. Activations without a usable icon index
// are ignored.
func (h InputHandler) Handle(ctx context.Context, event ActivationEvent) {
	w := h.widget
	if w == nil || w.State() != Active {
		return
	}

	index, ok := event.Index()
	if !ok {
		w.logger.Debug(ctx, "activation without icon index ignored", "target", event.Target)
		return
	}

	settings, err := w.Settings()
	if err != nil {
		w.logger.Warn(ctx, "activation ignored", "error", err)
		return
	}
	if index < 1 || index > settings.TopLimit {
		w.logger.Debug(ctx, "activation outside icon range ignored", "index", index, "top_limit", settings.TopLimit)
		return
	}

	if err := w.Update(ctx, Candidate(w.Value(), index)); err != nil {
		w.logger.Warn(ctx, "activation update failed", "index", index, "error", err)
	}
}
