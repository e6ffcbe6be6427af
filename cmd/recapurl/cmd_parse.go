package main

import (
	"github.com/spf13/cobra"
)

func newParseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse one recap URL and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, flags, args[0])
		},
	}
}

func runParse(cmd *cobra.Command, flags *globalFlags, rawURL string) error {
	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.parser.Parse(rawURL)
	if err != nil {
		a.logger().Error().Err(err).Str("url", rawURL).Msg("Failed to parse recap URL")
		return err
	}

	a.logger().Info().
		Str("host", report.URLMeta.Host).
		Int("warnings", len(report.Warnings)).
		Bool("has_hints", !report.GraphHints.IsEmpty()).
		Msg("Parsed recap URL")
	for _, w := range report.Warnings {
		a.logger().Debug().Str("warning", w).Msg("Recap URL warning")
	}

	return a.reporter.WriteReport(cmd.OutOrStdout(), report)
}
