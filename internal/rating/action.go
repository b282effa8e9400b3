package rating

import (
	"context"
	"fmt"
)

// Action is one of InitAction, DestroyAction or UpdateAction.
type Action interface {
	isAction()
}

// InitAction runs Widget.Init.
type InitAction struct{}

// DestroyAction runs Widget.Destroy.
type DestroyAction struct{}

// UpdateAction runs Widget.Update with Value.
type UpdateAction struct {
	Value Value
}

func (InitAction) isAction()    {}
func (DestroyAction) isAction() {}
func (UpdateAction) isAction()  {}

// Dispatch runs action against the widget.
func (w *Widget) Dispatch(ctx context.Context, action Action) error {
	switch a := action.(type) {
	case InitAction:
		return w.Init(ctx)
	case DestroyAction:
		w.Destroy(ctx)
		return nil
	case UpdateAction:
		return w.Update(ctx, a.Value)
	default:
		return fmt.Errorf("unsupported action %T", action)
	}
}
