package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleister1102/recapurl/internal/common/batchprocessor"
	"github.com/aleister1102/recapurl/internal/reporter"
	"github.com/aleister1102/recapurl/internal/urlhandler"
)

func newBatchCmd(flags *globalFlags) *cobra.Command {
	var source string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse a list of recap URLs, one per line",
		Long: `Reads recap URLs from a file (or stdin with "-f -"), one per line.
Blank lines and lines starting with '#' are skipped. Reports are printed as a
single list in input order; URLs that fail carry an error instead of a report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, flags, source, concurrency)
		},
	}

	cmd.Flags().StringVarP(&source, "file", "f", urlhandler.StdinSource, `File with one URL per line, "-" for stdin`)
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "URLs parsed at once (overrides config)")

	return cmd
}

func runBatch(cmd *cobra.Command, flags *globalFlags, source string, concurrency int) error {
	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}
	defer a.close()

	tm := urlhandler.NewTargetManagerWithStdin(*a.logger(), cmd.InOrStdin())
	targets, err := tm.LoadTargets(source)
	if err != nil {
		return err
	}

	bpConfig := a.cfg.BatchConfig.ToBatchProcessorConfig()
	if concurrency > 0 {
		bpConfig.MaxConcurrency = concurrency
	}
	bp := batchprocessor.NewBatchProcessor(bpConfig, *a.logger())

	entries := make([]reporter.BatchEntry, len(targets))
	_, err = bp.ProcessBatches(cmd.Context(), tm.GetTargetStrings(targets), func(ctx context.Context, index int, rawURL string) error {
		entry := reporter.BatchEntry{Line: targets[index].Line, SourceURL: rawURL}
		report, parseErr := a.parser.Parse(rawURL)
		if parseErr != nil {
			entry.Error = parseErr.Error()
			a.logger().Warn().Err(parseErr).Int("line", entry.Line).Msg("Failed to parse recap URL")
		} else {
			entry.Report = report
		}
		entries[index] = entry
		return nil
	})
	if err != nil {
		return err
	}

	failed := 0
	for _, e := range entries {
		if e.Error != "" {
			failed++
		}
	}
	a.logger().Info().Int("total", len(entries)).Int("failed", failed).Msg("Batch finished")

	if err := a.reporter.WriteBatch(cmd.OutOrStdout(), entries); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d URLs could not be parsed", failed, len(entries))
	}
	return nil
}
