package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-planner/internal/pkg/utils"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"zero", 0, "0분"},
		{"under a minute", 45, "0분"},
		{"minutes only", 2700, "45분"},
		{"just under an hour", 3599, "59분"},
		{"exactly one hour", 3600, "1시간 0분"},
		{"hours and minutes", 8100, "2시간 15분"},
		{"long trip", 37800, "10시간 30분"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.FormatDuration(tt.seconds))
		})
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		meters   int
		expected string
	}{
		{"zero", 0, "0.0km"},
		{"under a kilometer", 450, "0.5km"},
		{"kilometers", 12340, "12.3km"},
		{"rounding", 1250, "1.2km"},
		{"long distance", 325000, "325.0km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.FormatDistance(tt.meters))
		})
	}
}
