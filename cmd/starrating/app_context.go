package main

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alexisbeaulieu97/starrating/internal/config"
	eventsinfra "github.com/alexisbeaulieu97/starrating/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/starrating/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/starrating/internal/ports"
	"github.com/alexisbeaulieu97/starrating/internal/rating"
	"github.com/alexisbeaulieu97/starrating/internal/tui"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Logger    ports.Logger
	Store     *config.Store
	Publisher *eventsinfra.LoggingPublisher
	Glyphs    tui.GlyphSet
	Namespace string

	configPath string
	logFile    *lumberjack.Logger
}

// newAppContext loads the global configuration and wires logging. Logs go to
// the rotating log file when one is configured, otherwise to fallback.
func newAppContext(flags *rootFlags, fallback io.Writer) (*AppContext, error) {
	app := &AppContext{configPath: strings.TrimSpace(flags.configPath)}

	writer := fallback
	if strings.TrimSpace(flags.logFile) != "" {
		app.logFile = &lumberjack.Logger{
			Filename:   flags.logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writer = app.logFile
	}

	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Writer: writer, Level: level, Component: "cli"})
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Logger = logger

	file := &config.File{}
	if app.configPath != "" {
		file, err = config.ParseFile(app.configPath)
		if err != nil {
			app.Close()
			return nil, err
		}
	}

	app.Store = config.NewStoreFromFile(file)
	app.Publisher = eventsinfra.NewLoggingPublisher(logger.With("component", "events"))
	app.Glyphs = tui.DefaultGlyphs().Merge(file.Glyphs)
	app.Namespace = file.Namespace
	if flags.namespace != "" {
		app.Namespace = flags.namespace
	}

	return app, nil
}

// CommandContext returns a context carrying a fresh correlation ID and a logger
// tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	return ctx, a.Logger.With("command", name)
}

// NewWidget binds a widget to a new element showing content.
func (a *AppContext) NewWidget(content, override string, logger ports.Logger) *rating.Widget {
	element := rating.NewElement(content)
	if override != "" {
		element.SetOverride(override)
	}
	return rating.New(element,
		rating.WithResolver(rating.NewResolver(a.Store)),
		rating.WithPublisher(a.Publisher),
		rating.WithNamespace(a.Namespace),
		rating.WithLogger(logger),
	)
}

// ReloadConfig re-reads the settings of the --config file into the store.
// Namespace and glyph changes need a restart. Without a config file there is
// nothing to reload.
func (a *AppContext) ReloadConfig(ctx context.Context) error {
	if a.configPath == "" {
		return nil
	}

	file, err := config.ParseFile(a.configPath)
	if err != nil {
		a.Logger.Warn(ctx, "config reload failed", "path", a.configPath, "error", err)
		return err
	}

	var override *rating.Override
	if file.HasSettings() {
		override = &file.Settings
	}
	if err := a.Store.Set(override); err != nil {
		return err
	}

	a.Logger.Info(ctx, "config reloaded", "path", a.configPath)
	return nil
}

// Close flushes the log file, if any.
func (a *AppContext) Close() {
	if a != nil && a.logFile != nil {
		_ = a.logFile.Close()
	}
}
