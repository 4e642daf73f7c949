package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/trip-planner/internal/domain"
)

const externalMapsBaseURL = "https://www.google.com/maps/dir/"

// BuildExternalMapsURL собирает deep link на внешнее картографическое
// приложение для запасного сценария, когда маршрутизация не удалась.
// Содержит старт, все остановки в текущем порядке и режим передвижения.
func BuildExternalMapsURL(start domain.Coordinate, stops []domain.Coordinate, mode domain.TransportMode) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", fmt.Sprintf("%f,%f", start.Lat, start.Lng))
	params.Set("travelmode", string(mode))

	if len(stops) > 0 {
		last := stops[len(stops)-1]
		params.Set("destination", fmt.Sprintf("%f,%f", last.Lat, last.Lng))

		if len(stops) > 1 {
			waypoints := make([]string, 0, len(stops)-1)
			for _, s := range stops[:len(stops)-1] {
				waypoints = append(waypoints, fmt.Sprintf("%f,%f", s.Lat, s.Lng))
			}
			params.Set("waypoints", strings.Join(waypoints, "|"))
		}
	}

	return externalMapsBaseURL + "?" + params.Encode()
}
