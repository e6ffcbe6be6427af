package config

import "github.com/aleister1102/recapurl/internal/common/batchprocessor"

// BatchConfig defines configuration for parsing URL lists
type BatchConfig struct {
	MaxConcurrency int `json:"max_concurrency,omitempty" yaml:"max_concurrency,omitempty" validate:"min=1,max=256"`
	BatchSize      int `json:"batch_size,omitempty" yaml:"batch_size,omitempty" validate:"min=1"`
}

// NewDefaultBatchConfig creates default batch configuration
func NewDefaultBatchConfig() BatchConfig {
	return BatchConfig{
		MaxConcurrency: DefaultBatchMaxConcurrency,
		BatchSize:      DefaultBatchSize,
	}
}

// ToBatchProcessorConfig converts BatchConfig to batchprocessor.BatchProcessorConfig
func (bc BatchConfig) ToBatchProcessorConfig() batchprocessor.BatchProcessorConfig {
	return batchprocessor.BatchProcessorConfig{
		BatchSize:      bc.BatchSize,
		MaxConcurrency: bc.MaxConcurrency,
	}
}
