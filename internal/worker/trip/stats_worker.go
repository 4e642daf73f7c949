package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/worker"
	"go.uber.org/zap"
)

const emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста

// StatsWorker потребляет журнал поездок и накапливает агрегаты по режимам.
// Сообщение подтверждается только после успешной записи в хранилище,
// поэтому при сбое базы событие будет доставлено повторно.
type StatsWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	statsRepo    repository.StatsRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	batchSize    int
}

// NewStatsWorker создает новый StatsWorker
func NewStatsWorker(
	streamRepo repository.StreamRepository,
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *StatsWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &StatsWorker{
		BaseWorker:   worker.NewBaseWorker("trip-stats", consumerGroup, logger),
		streamRepo:   streamRepo,
		statsRepo:    statsRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start запускает воркер
func (w *StatsWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting StatsWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTripPlanned, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает и обрабатывает пачку событий журнала.
// Возвращает количество подтверждённых сообщений.
func (w *StatsWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamTripPlanned,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		var event domain.TripPlannedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Skipping malformed event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// Повтор не поможет - подтверждаем и выбрасываем
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if err := w.statsRepo.RecordTrip(ctx, &event); err != nil {
			logger.Error("Failed to record trip, leaving message pending",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	if len(ackIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamTripPlanned, w.ConsumerGroup(), ackIDs); err != nil {
			return 0, fmt.Errorf("failed to ack messages: %w", err)
		}

		// Сводка изменилась - сбрасываем кеш статистики
		if w.cacheRepo != nil {
			if err := w.cacheRepo.Delete(ctx, "stats:trips"); err != nil {
				logger.Warn("Failed to invalidate stats cache", zap.Error(err))
			}
		}
	}

	return len(ackIDs), nil
}
