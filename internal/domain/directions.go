package domain

// Ответ Directions API провайдера. Структура повторяет JSON Google Directions,
// разбирается парсером легов в RouteLeg.

// DirectionsResponse - сырой ответ провайдера маршрутизации
type DirectionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []DirectionsRoute `json:"routes"`
}

// DirectionsRoute - один вариант маршрута
type DirectionsRoute struct {
	Summary string          `json:"summary"`
	Legs    []DirectionsLeg `json:"legs"`
}

// DirectionsLeg - участок маршрута между двумя точками запроса
type DirectionsLeg struct {
	Distance TextValue        `json:"distance"`
	Duration TextValue        `json:"duration"`
	Steps    []DirectionsStep `json:"steps"`
}

// DirectionsStep - атомарный шаг внутри лега
type DirectionsStep struct {
	HTMLInstructions string          `json:"html_instructions"`
	TravelMode       string          `json:"travel_mode"`
	Distance         TextValue       `json:"distance"`
	Duration         TextValue       `json:"duration"`
	Polyline         EncodedPolyline `json:"polyline"`
	TransitDetails   *TransitDetails `json:"transit_details,omitempty"`
}

// EncodedPolyline - закодированная полилиния шага
type EncodedPolyline struct {
	Points string `json:"points"`
}

// TextValue - пара "человекочитаемый текст + числовое значение"
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// TransitDetails - метаданные шага на общественном транспорте
type TransitDetails struct {
	DepartureStop TransitStop `json:"departure_stop"`
	ArrivalStop   TransitStop `json:"arrival_stop"`
	NumStops      int         `json:"num_stops"`
	Line          TransitLine `json:"line"`
}

// TransitStop - остановка посадки или высадки
type TransitStop struct {
	Name string `json:"name"`
}

// TransitLine - линия общественного транспорта
type TransitLine struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Color     string `json:"color"`
}

// Статусы ответа провайдера
const (
	DirectionsStatusOK          = "OK"
	DirectionsStatusZeroResults = "ZERO_RESULTS"
)
