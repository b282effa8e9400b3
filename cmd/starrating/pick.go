package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/starrating/internal/tui"
)

type pickOptions struct {
	settings string
	title    string
	noTUI    bool
}

func newPickCmd(flags *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick [value]",
		Short: "Choose a rating interactively",
		Long: `Pick shows VALUE as a row of stars and lets you change it with the
keyboard or mouse. Selecting the current value again clears the rating.
The chosen value is printed when the picker exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := !opts.noTUI && isTerminal(os.Stdin) && isTerminal(os.Stdout)

			var fallback io.Writer = cmd.ErrOrStderr()
			if interactive {
				fallback = io.Discard
			}
			app, err := newAppContext(flags, fallback)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "pick")
			w := app.NewWidget(contentArg(args), opts.settings, logger)
			if err := w.Init(ctx); err != nil {
				logger.Error(ctx, "picker init failed", "error", err)
				return err
			}

			if !interactive {
				logger.Debug(ctx, "no terminal attached, rendering once")
				return writeRender(cmd.OutOrStdout(), w, app.Glyphs, false)
			}

			model := tui.NewModel(ctx, w, tui.Options{
				Title:     opts.title,
				Glyphs:    app.Glyphs,
				Publisher: app.Publisher,
				Logger:    logger,
				Reload:    app.ReloadConfig,
			})
			defer model.Close()

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				logger.Error(ctx, "picker execution failed", "error", err)
				return fmt.Errorf("failed to run picker: %w", err)
			}

			if m, ok := final.(tui.Model); ok {
				fmt.Fprintln(cmd.OutOrStdout(), m.Value())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.settings, "settings", "", "JSON settings override for this rating")
	cmd.Flags().StringVar(&opts.title, "title", "", "Title shown above the stars")
	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "Render once instead of starting the interactive picker")

	return cmd
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
