// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type TripPlannedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Mode          string    `json:"mode"`
	StopCount     int       `json:"stop_count"`
	LegCount      int       `json:"leg_count"`
	TotalDuration int       `json:"total_duration"`
	TotalDistance int       `json:"total_distance"`
	Success       bool      `json:"success"`
	ErrorCode     string    `json:"error_code,omitempty"`
	PlannedAt     time.Time `json:"planned_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	mode := flag.String("mode", "transit", "Transport mode for the test event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (маршрут по Сеулу на 4 остановки)
	event := TripPlannedEvent{
		EventID:       uuid.New(),
		Mode:          *mode,
		StopCount:     4,
		LegCount:      4,
		TotalDuration: 2400,
		TotalDistance: 5200,
		Success:       true,
		PlannedAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:trip:planned",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:trip:planned\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Mode: %s, stops: %d\n", event.Mode, event.StopCount)

	// Даем воркеру время обработать событие и проверяем pending
	fmt.Printf("\n⏳ Checking pending entries for the stats worker...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout: event was not acknowledged, is the worker running?")
			return
		case <-ticker.C:
			pending, err := client.XPending(ctx, "stream:trip:planned", "trip-stats-workers").Result()
			if err != nil {
				continue
			}

			if pending.Count == 0 {
				fmt.Printf("\n✅ Event consumed and acknowledged by the stats worker\n")
				return
			}

			fmt.Printf("   %d message(s) still pending...\n", pending.Count)
		}
	}
}
