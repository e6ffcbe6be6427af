package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "recapurl [url]",
		Short: "Parse Teams recap sharing URLs into identifiers and Graph endpoint hints",
		Long: `recapurl extracts the drive, file and meeting identifiers carried by a
Microsoft Teams meeting recap link and prints candidate Microsoft Graph
paths for resolving the recording, transcript or notes. No API calls are made.

Called with a single URL it behaves like "recapurl parse <url>".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runParse(cmd, flags, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML/JSON config file (default: $RECAPURL_CONFIG_PATH, then ./config.yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	pf.StringVarP(&flags.format, "format", "o", "", "Output format: json or yaml (overrides config)")
	pf.StringVar(&flags.envFile, "env-file", ".env", "Env file loaded before the config; missing files are ignored")

	root.AddCommand(
		newParseCmd(flags),
		newBatchCmd(flags),
		newDecodeTokenCmd(),
	)

	return root
}
