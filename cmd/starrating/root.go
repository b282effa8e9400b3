package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	namespace  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "starrating",
		Short:         "Pick a star rating in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML file with global settings")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	cmd.PersistentFlags().StringVar(&flags.namespace, "namespace", "", "Namespace appended to event names")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
