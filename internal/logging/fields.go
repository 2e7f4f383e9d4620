package logging

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

const (
	TaskID  = "task_id"
	Line    = "line"
	Lines   = "lines"
	Elapsed = "elapsed"
)

func ID[S ~string](s S, id uuid.UUID) Field {
	return zap.Stringer(string(s), id)
}

func Duration[S ~string](s S, t time.Duration) Field {
	return zap.Duration(string(s), t)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}
