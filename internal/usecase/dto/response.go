package dto

import "github.com/trip-planner/internal/domain"

// ItineraryResponse - построенный маршрут для отрисовки и навигации
type ItineraryResponse struct {
	Mode          string                `json:"mode"`
	OrderedStops  []PlaceOutput         `json:"ordered_stops"`
	Segments      []domain.RouteSegment `json:"segments"`
	Steps         []domain.RouteStep    `json:"steps"`
	TotalDuration int                   `json:"total_duration"`
	TotalDistance int                   `json:"total_distance"`
	DurationText  string                `json:"duration_text"`
	DistanceText  string                `json:"distance_text"`
	// FallbackURL - deep link во внешнее картографическое приложение
	FallbackURL string `json:"fallback_url"`
}

// PlaceOutput - место в ответе API
type PlaceOutput struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// OptimizeTourResponse - упорядоченный список остановок
type OptimizeTourResponse struct {
	OrderedStops []PlaceOutput `json:"ordered_stops"`
}

// PlaceSearchResponse - результат поиска места
type PlaceSearchResponse struct {
	Place  *PlaceOutput `json:"place"`
	Cached bool         `json:"cached"`
}

// FavoritesResponse - список избранных мест
type FavoritesResponse struct {
	Places []PlaceOutput `json:"places"`
	Total  int           `json:"total"`
}

// ConvertPlace преобразует доменное место в DTO
func ConvertPlace(p domain.Place) PlaceOutput {
	return PlaceOutput{
		ID:      p.ID,
		Name:    p.Name,
		Lat:     p.Location.Lat,
		Lng:     p.Location.Lng,
		Address: p.Address,
	}
}

// ConvertPlaces преобразует список доменных мест в DTO
func ConvertPlaces(places []domain.Place) []PlaceOutput {
	out := make([]PlaceOutput, 0, len(places))
	for _, p := range places {
		out = append(out, ConvertPlace(p))
	}
	return out
}

// ToPlace преобразует входное место в доменный тип
func (p PlaceInput) ToPlace() domain.Place {
	return domain.Place{
		ID:   p.ID,
		Name: p.Name,
		Location: domain.Coordinate{
			Lat: p.Lat,
			Lng: p.Lng,
		},
		Address: p.Address,
	}
}

// ToPlaces преобразует список входных мест в доменные типы
func ToPlaces(inputs []PlaceInput) []domain.Place {
	out := make([]domain.Place, 0, len(inputs))
	for _, p := range inputs {
		out = append(out, p.ToPlace())
	}
	return out
}
