package usecase

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/trip-planner/internal/domain"
)

// Цвета отрисовки сегментов. Для driving и walking цвет единый на весь
// маршрут; transit использует цвет линии, когда провайдер его сообщает.
const (
	ColorDriving        = "#4285F4"
	ColorWalking        = "#9AA0A6"
	ColorTransitDefault = "#9AA0A6"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// stripHTML убирает разметку из текста инструкции провайдера
func stripHTML(s string) string {
	plain := htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(plain))
}

// ParseLeg преобразует сырой лег провайдера в сегменты и шаги маршрута.
// Порядок шагов внутри лега сохраняется ровно таким, каким его вернул провайдер.
func ParseLeg(leg *domain.DirectionsLeg, mode domain.TransportMode) domain.RouteLeg {
	segments := make([]domain.RouteSegment, 0, len(leg.Steps))
	steps := make([]domain.RouteStep, 0, len(leg.Steps))

	for _, raw := range leg.Steps {
		transit := strings.EqualFold(raw.TravelMode, "TRANSIT") && raw.TransitDetails != nil

		step := domain.RouteStep{
			Instruction:  stripHTML(raw.HTMLInstructions),
			DurationText: raw.Duration.Text,
			Transit:      transit,
		}

		if transit {
			td := raw.TransitDetails
			step.LineName = td.Line.ShortName
			if step.LineName == "" {
				step.LineName = td.Line.Name
			}
			step.LineColor = td.Line.Color
			step.Detail = fmt.Sprintf("%s → %s (%d stops)",
				td.DepartureStop.Name, td.ArrivalStop.Name, td.NumStops)
		} else {
			step.Detail = raw.Distance.Text
		}

		segment := domain.RouteSegment{
			Path: raw.Polyline.Points,
		}

		switch mode {
		case domain.ModeDriving:
			segment.Color = ColorDriving
		case domain.ModeWalking:
			segment.Color = ColorWalking
			segment.Pedestrian = true
		default:
			if transit && step.LineColor != "" {
				segment.Color = step.LineColor
			} else {
				segment.Color = ColorTransitDefault
			}
			segment.Pedestrian = !transit
		}

		segments = append(segments, segment)
		steps = append(steps, step)
	}

	return domain.RouteLeg{
		Segments: segments,
		Steps:    steps,
		Duration: leg.Duration.Value,
		Distance: leg.Distance.Value,
	}
}
