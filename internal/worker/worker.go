package worker

import (
	"context"
)

// Worker - фоновый процесс с собственным жизненным циклом.
// Start блокирует до остановки через Stop или отмену контекста.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
