package rating

import (
	"context"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

// nopLogger is used until a logger is injected with WithLogger.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...interface{}) {}

func (nopLogger) Info(context.Context, string, ...interface{}) {}

func (nopLogger) Warn(context.Context, string, ...interface{}) {}

func (nopLogger) Error(context.Context, string, ...interface{}) {}

func (n nopLogger) With(...interface{}) ports.Logger { return n }

var _ ports.Logger = nopLogger{}
