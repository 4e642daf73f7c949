package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/domain"
	redisRepo "github.com/trip-planner/internal/repository/redis"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, "test:stream:trip:planned")

	return client
}

func testEvent() domain.TripPlannedEvent {
	return domain.TripPlannedEvent{
		EventID:       uuid.New(),
		Mode:          domain.ModeTransit,
		StopCount:     4,
		LegCount:      4,
		TotalDuration: 5400,
		TotalDistance: 32000,
		Success:       true,
		PlannedAt:     time.Now(),
	}
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-group"

	defer client.Del(ctx, streamName)

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, streamName).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, groupName, groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, streamName, groupName)
	assert.NoError(t, err)
}

func TestStreamRepository_PublishAndConsume(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-group"
	defer client.Del(ctx, streamName)

	require.NoError(t, repo.CreateConsumerGroup(ctx, streamName, groupName))

	event := testEvent()
	require.NoError(t, repo.PublishToStream(ctx, streamName, event))

	messages, err := repo.ConsumeBatch(ctx, streamName, groupName, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	var decoded domain.TripPlannedEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, domain.ModeTransit, decoded.Mode)
	assert.Equal(t, 4, decoded.LegCount)
	assert.True(t, decoded.Success)
}

func TestStreamRepository_ConsumeEmptyStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-group"
	defer client.Del(ctx, streamName)

	require.NoError(t, repo.CreateConsumerGroup(ctx, streamName, groupName))

	messages, err := repo.ConsumeBatch(ctx, streamName, groupName, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStreamRepository_AckMessages(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-group"
	defer client.Del(ctx, streamName)

	require.NoError(t, repo.CreateConsumerGroup(ctx, streamName, groupName))
	require.NoError(t, repo.PublishToStream(ctx, streamName, testEvent()))
	require.NoError(t, repo.PublishToStream(ctx, streamName, testEvent()))

	messages, err := repo.ConsumeBatch(ctx, streamName, groupName, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	ids := []string{messages[0].ID, messages[1].ID}
	require.NoError(t, repo.AckMessages(ctx, streamName, groupName, ids))

	pending, err := client.XPending(ctx, streamName, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)

	// Ack пустого списка не должен падать
	assert.NoError(t, repo.AckMessages(ctx, streamName, groupName, nil))
}
