package core

import (
	"context"

	"github.com/ib-77/outcome/internal/logging"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

type poolConfig struct {
	lines     int
	queueSize int
	log       *logging.Logger
}

// PoolOption configures a Pool. Options override values taken from the context.
type PoolOption func(*poolConfig)

// WithLines sets the number of worker lines.
func WithLines(n int) PoolOption {
	return func(c *poolConfig) {
		c.lines = n
	}
}

// WithQueueSize sets how many submitted jobs may wait for a free line.
func WithQueueSize(n int) PoolOption {
	return func(c *poolConfig) {
		c.queueSize = n
	}
}

func WithLogger(l *logging.Logger) PoolOption {
	return func(c *poolConfig) {
		if l != nil {
			c.log = l
		}
	}
}
