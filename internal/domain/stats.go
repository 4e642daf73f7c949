package domain

import "time"

// ModeStats - агрегаты планирования по одному режиму передвижения
type ModeStats struct {
	Mode             string  `json:"mode" db:"mode"`
	Trips            int64   `json:"trips" db:"trips"`
	FailedTrips      int64   `json:"failed_trips" db:"failed_trips"`
	TotalLegs        int64   `json:"total_legs" db:"total_legs"`
	TotalDurationSec int64   `json:"total_duration_sec" db:"total_duration_sec"`
	TotalDistanceM   int64   `json:"total_distance_m" db:"total_distance_m"`
	AvgDurationSec   float64 `json:"avg_duration_sec" db:"avg_duration_sec"`
}

// TripStatistics - сводная статистика планирования маршрутов
type TripStatistics struct {
	TotalTrips  int64       `json:"total_trips"`
	TotalFailed int64       `json:"total_failed"`
	ByMode      []ModeStats `json:"by_mode"`
	LastUpdated time.Time   `json:"last_updated"`
}
