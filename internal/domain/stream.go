package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с потребителями аналитики)
const (
	StreamTripPlanned = "stream:trip:planned"
)

// TripPlannedEvent - событие о завершённой (успешно или нет) сборке маршрута.
// Публикуется API после каждого вызова планировщика, потребляется воркером статистики.
type TripPlannedEvent struct {
	EventID       uuid.UUID     `json:"event_id"`
	Mode          TransportMode `json:"mode"`
	StopCount     int           `json:"stop_count"`
	LegCount      int           `json:"leg_count"`
	TotalDuration int           `json:"total_duration"`
	TotalDistance int           `json:"total_distance"`
	Success       bool          `json:"success"`
	ErrorCode     string        `json:"error_code,omitempty"`
	PlannedAt     time.Time     `json:"planned_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
