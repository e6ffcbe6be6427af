package batchprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%d", i)
	}
	return out
}

func TestNewBatchProcessor_Defaults(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{}, zerolog.Nop())
	assert.Equal(t, DefaultBatchProcessorConfig(), bp.config)
}

func TestSplitIntoBatches(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 3, MaxConcurrency: 1}, zerolog.Nop())

	assert.Len(t, bp.SplitIntoBatches(items(2)), 1)
	assert.Len(t, bp.SplitIntoBatches(items(3)), 1)

	batches := bp.SplitIntoBatches(items(7))
	require.Len(t, batches, 3)
	assert.Equal(t, []string{"item-6"}, batches[2])
}

func TestProcessBatches_OrderByIndex(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 4, MaxConcurrency: 3}, zerolog.Nop())
	input := items(10)
	out := make([]string, len(input))

	results, err := bp.ProcessBatches(context.Background(), input, func(ctx context.Context, index int, item string) error {
		out[index] = item
		return nil
	})

	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Success)
	}
	assert.Equal(t, input, out)
}

func TestProcessBatches_ConcurrencyLimit(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 100, MaxConcurrency: 2}, zerolog.Nop())

	var active, peak int32
	_, err := bp.ProcessBatches(context.Background(), items(20), func(ctx context.Context, index int, item string) error {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&active, -1)
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestProcessBatches_FailureContinuesWithNextBatch(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 2, MaxConcurrency: 1}, zerolog.Nop())
	boom := errors.New("boom")

	results, err := bp.ProcessBatches(context.Background(), items(4), func(ctx context.Context, index int, item string) error {
		if index == 0 {
			return boom
		}
		return nil
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.ErrorIs(t, results[0].Error, boom)
	assert.True(t, results[1].Success)
}

func TestProcessBatches_Cancelled(t *testing.T) {
	bp := NewBatchProcessor(DefaultBatchProcessorConfig(), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := bp.ProcessBatches(ctx, items(3), func(ctx context.Context, index int, item string) error {
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
