package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/starrating/internal/rating"
	"github.com/alexisbeaulieu97/starrating/internal/tui"
)

type renderOptions struct {
	settings string
	classes  bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [value]",
		Short: "Print the icon row for a value",
		Long: `Render converts VALUE the way the picker would and prints the result once.
Non-numeric values render every icon as outline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "render")
			w := app.NewWidget(contentArg(args), opts.settings, logger)
			if err := w.Init(ctx); err != nil {
				logger.Error(ctx, "render failed", "error", err)
				return err
			}
			return writeRender(cmd.OutOrStdout(), w, app.Glyphs, opts.classes)
		},
	}

	cmd.Flags().StringVar(&opts.settings, "settings", "", "JSON settings override for this rating, e.g. '{\"topLimit\": 10}'")
	cmd.Flags().BoolVar(&opts.classes, "classes", false, "Print one line per icon with its index, state and class")

	return cmd
}

func contentArg(args []string) string {
	if len(args) == 0 {
		return "0"
	}
	return args[0]
}

func writeRender(out io.Writer, w *rating.Widget, glyphs tui.GlyphSet, classes bool) error {
	icons := w.Icons()

	if classes {
		for _, icon := range icons {
			if _, err := fmt.Fprintf(out, "%d\t%s\t%s\n", icon.Index, icon.State, icon.Class); err != nil {
				return err
			}
		}
		return nil
	}

	cells := make([]string, 0, len(icons))
	for _, icon := range icons {
		cells = append(cells, glyphs.Glyph(icon))
	}
	_, err := fmt.Fprintf(out, "%s %s/%d\n", strings.Join(cells, " "), w.Value(), len(icons))
	return err
}
