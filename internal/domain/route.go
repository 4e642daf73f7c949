package domain

// RouteSegment - один отрезок ломаной для отрисовки на карте
type RouteSegment struct {
	// Path - полилиния в кодировке провайдера (encoded polyline)
	Path string `json:"path"`
	// Color - цвет отрисовки (цвет линии транспорта либо цвет режима)
	Color string `json:"color"`
	// Pedestrian - пешеходный отрезок, рисуется пунктиром
	Pedestrian bool `json:"pedestrian"`
}

// RouteStep - одна инструкция текстового маршрута
type RouteStep struct {
	// Instruction - текст инструкции без HTML-разметки
	Instruction string `json:"instruction"`
	// Detail - для транспорта: "{посадка} → {высадка} (N stops)",
	// для пешеходных шагов: текст расстояния
	Detail       string `json:"detail"`
	DurationText string `json:"duration_text"`
	// Transit - шаг на общественном транспорте (иначе пешком)
	Transit   bool   `json:"transit"`
	LineName  string `json:"line_name,omitempty"`
	LineColor string `json:"line_color,omitempty"`
}

// RouteLeg - результат маршрутизации одной пары (откуда, куда).
// Лег либо целиком успешен, либо целиком отсутствует - частичных легов нет.
type RouteLeg struct {
	Segments []RouteSegment `json:"segments"`
	Steps    []RouteStep    `json:"steps"`
	// Duration - длительность лега в секундах
	Duration int `json:"duration"`
	// Distance - длина лега в метрах
	Distance int `json:"distance"`
}

// Itinerary - итоговый маршрут по всем остановкам в одном режиме.
// Сегменты и шаги конкатенированы строго в порядке легов.
// Неизменяемый снимок: пересоздаётся при смене остановок или режима.
type Itinerary struct {
	Mode     TransportMode  `json:"mode"`
	Segments []RouteSegment `json:"segments"`
	Steps    []RouteStep    `json:"steps"`
	// TotalDuration - суммарная длительность в секундах
	TotalDuration int `json:"total_duration"`
	// TotalDistance - суммарная длина в метрах
	TotalDistance int    `json:"total_distance"`
	DurationText  string `json:"duration_text"`
	DistanceText  string `json:"distance_text"`
}
