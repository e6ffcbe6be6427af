package batchprocessor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BatchProcessorConfig holds configuration for batch processing
type BatchProcessorConfig struct {
	BatchSize      int // Max items per batch (default: 500)
	MaxConcurrency int // Max items processed at once within a batch (default: 8)
}

// DefaultBatchProcessorConfig returns default configuration
func DefaultBatchProcessorConfig() BatchProcessorConfig {
	return BatchProcessorConfig{
		BatchSize:      500,
		MaxConcurrency: 8,
	}
}

// BatchResult holds the result of a batch processing
type BatchResult struct {
	BatchIndex int
	Success    bool
	Error      error
	Processed  int
	Duration   time.Duration
}

// BatchProcessor splits large inputs into batches and processes the items
// of each batch concurrently.
type BatchProcessor struct {
	config BatchProcessorConfig
	logger zerolog.Logger
}

// NewBatchProcessor creates a new batch processor. Non-positive settings
// fall back to the defaults.
func NewBatchProcessor(config BatchProcessorConfig, logger zerolog.Logger) *BatchProcessor {
	defaults := DefaultBatchProcessorConfig()
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = defaults.MaxConcurrency
	}
	return &BatchProcessor{
		config: config,
		logger: logger.With().Str("component", "BatchProcessor").Logger(),
	}
}

// ProcessFunc processes one item. index is the item's position in the full
// input, so callers can store results in input order without locking.
type ProcessFunc func(ctx context.Context, index int, item string) error

// SplitIntoBatches splits a slice of strings into batches
func (bp *BatchProcessor) SplitIntoBatches(input []string) [][]string {
	if len(input) <= bp.config.BatchSize {
		return [][]string{input}
	}

	var batches [][]string
	for i := 0; i < len(input); i += bp.config.BatchSize {
		end := i + bp.config.BatchSize
		if end > len(input) {
			end = len(input)
		}
		batches = append(batches, input[i:end])
	}

	return batches
}

// ProcessBatches processes batches one after another. A failing item stops
// the rest of its batch, but later batches still run. Only context
// cancellation is returned as an error.
func (bp *BatchProcessor) ProcessBatches(ctx context.Context, input []string, processFunc ProcessFunc) ([]BatchResult, error) {
	batches := bp.SplitIntoBatches(input)
	results := make([]BatchResult, 0, len(batches))

	bp.logger.Debug().
		Int("total_items", len(input)).
		Int("batch_count", len(batches)).
		Int("max_concurrency", bp.config.MaxConcurrency).
		Msg("Starting batch processing")

	offset := 0
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			bp.logger.Info().
				Int("completed_batches", i).
				Int("total_batches", len(batches)).
				Msg("Batch processing interrupted by context cancellation")
			return results, err
		}

		start := time.Now()
		err := bp.processBatch(ctx, batch, offset, processFunc)
		result := BatchResult{
			BatchIndex: i,
			Success:    err == nil,
			Error:      err,
			Processed:  len(batch),
			Duration:   time.Since(start),
		}
		results = append(results, result)
		offset += len(batch)

		if err != nil {
			bp.logger.Error().Err(err).Int("batch_index", i).Msg("Batch processing failed")
			continue
		}
		bp.logger.Debug().
			Int("batch_index", i).
			Dur("duration", result.Duration).
			Int("processed", len(batch)).
			Msg("Batch processing completed")
	}

	return results, nil
}

func (bp *BatchProcessor) processBatch(ctx context.Context, batch []string, offset int, processFunc ProcessFunc) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(bp.config.MaxConcurrency)

	for i, item := range batch {
		index := offset + i
		eg.Go(func() error {
			return processFunc(egCtx, index, item)
		})
	}

	return eg.Wait()
}
