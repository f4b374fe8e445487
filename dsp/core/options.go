package core

import "math"

// DefaultLookahead is the default lookahead window in seconds.
const DefaultLookahead = 0.01

// ProcessorConfig defines common host settings for streaming processing.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	// Lookahead is the analysis delay in seconds.
	Lookahead float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline and live use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  512,
		Lookahead:  DefaultLookahead,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithLookahead sets the lookahead window in seconds.
func WithLookahead(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			cfg.Lookahead = seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// LookaheadSamples returns the lookahead window length in whole samples.
func (c ProcessorConfig) LookaheadSamples() int {
	return int(c.SampleRate * c.Lookahead)
}
