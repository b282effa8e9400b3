package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

// Options configures the zerolog adapter.
type Options struct {
	Writer        io.Writer
	Level         string
	HumanReadable bool
	Component     string
	Fields        map[string]interface{}
}

// Logger implements ports.Logger using zerolog.
type Logger struct {
	base   zerolog.Logger
	fields []interface{}
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	fields := mapToFields(opts.Fields)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &Logger{
		base:   zerolog.New(output).Level(level).With().Timestamp().Logger(),
		fields: fields,
	}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	next = append(next, fields...)
	return &Logger{base: l.base, fields: next}
}

func (l *Logger) log(ctx context.Context, level zerolog.Level, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if event == nil {
		return
	}
	for _, pair := range mergeFields(l.fields, fields) {
		if err, ok := pair.value.(error); ok {
			event = event.AnErr(pair.key, err)
			continue
		}
		event = event.Interface(pair.key, pair.value)
	}
	if id := GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event.Msg(msg)
}

type field struct {
	key   string
	value interface{}
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

// mergeFields flattens key/value lists; later keys replace earlier ones but
// keep their first position. Pairs with a non-string key are dropped.
func mergeFields(base []interface{}, additions []interface{}) []field {
	index := make(map[string]int)
	var result []field

	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok || key == "" {
				continue
			}
			if pos, exists := index[key]; exists {
				result[pos].value = values[i+1]
				continue
			}
			index[key] = len(result)
			result = append(result, field{key: key, value: values[i+1]})
		}
	}

	process(base)
	process(additions)
	return result
}

// compile-time assurance
var _ ports.Logger = (*Logger)(nil)
