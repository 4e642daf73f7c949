package domain

// Coordinate - географическая точка в десятичных градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place - место поездки (результат поиска или избранное).
// Идентичность определяется только по ID: два места с одинаковым ID
// считаются одним и тем же местом независимо от остальных полей.
type Place struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
	Address  string     `json:"address"`
}

// Same сравнивает места по идентификатору
func (p Place) Same(other Place) bool {
	return p.ID == other.ID
}

// TransportMode - способ передвижения между остановками
type TransportMode string

const (
	ModeDriving TransportMode = "driving"
	ModeTransit TransportMode = "transit"
	ModeWalking TransportMode = "walking"
)

// Valid проверяет, что режим входит в поддерживаемый набор
func (m TransportMode) Valid() bool {
	switch m {
	case ModeDriving, ModeTransit, ModeWalking:
		return true
	}
	return false
}

// TripRequest - запрос на планирование: точка старта и набор остановок.
// Старт никогда не входит в список остановок; остановки дедуплицируются по ID
// и сохраняют порядок добавления до оптимизации.
type TripRequest struct {
	Start        Place   `json:"start"`
	Destinations []Place `json:"destinations"`
}

// AddDestination добавляет остановку, если её ещё нет в списке
// и она не совпадает со стартом. Возвращает false для дубликата.
func (t *TripRequest) AddDestination(p Place) bool {
	if p.Same(t.Start) {
		return false
	}
	for _, d := range t.Destinations {
		if d.Same(p) {
			return false
		}
	}
	t.Destinations = append(t.Destinations, p)
	return true
}

// RemoveDestination удаляет остановку по идентификатору
func (t *TripRequest) RemoveDestination(id string) bool {
	for i, d := range t.Destinations {
		if d.ID == id {
			t.Destinations = append(t.Destinations[:i], t.Destinations[i+1:]...)
			return true
		}
	}
	return false
}

// TotalPoints возвращает общее число точек маршрута (старт + остановки)
func (t *TripRequest) TotalPoints() int {
	if t.Start.ID == "" {
		return len(t.Destinations)
	}
	return 1 + len(t.Destinations)
}
