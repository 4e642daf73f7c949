package dto

// PlaceInput - место в запросе на планирование
type PlaceInput struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Address string  `json:"address"`
}

// PlanTripRequest - запрос на построение полного маршрута поездки
type PlanTripRequest struct {
	// SessionID идентифицирует планировочную сессию пользователя,
	// чтобы устаревшие результаты отбрасывались при смене параметров
	SessionID    string       `json:"session_id" validate:"required"`
	Start        PlaceInput   `json:"start" validate:"required"`
	Destinations []PlaceInput `json:"destinations" validate:"required,min=1,max=30,dive"`
	Mode         string       `json:"mode" validate:"required,transport_mode"`
}

// OptimizeTourRequest - запрос только на упорядочивание остановок (без маршрутизации)
type OptimizeTourRequest struct {
	Start        PlaceInput   `json:"start" validate:"required"`
	Destinations []PlaceInput `json:"destinations" validate:"omitempty,max=30,dive"`
}

// PlaceSearchRequest - запрос на поиск места по тексту
type PlaceSearchRequest struct {
	Query  string `json:"query" validate:"required,min=1,max=200"`
	Region string `json:"region" validate:"omitempty,max=64"`
}

// FavoritesRequest - запрос на список избранных мест пользователя
type FavoritesRequest struct {
	UserID string   `json:"user_id" validate:"required"`
	Tags   []string `json:"tags" validate:"omitempty,max=10,dive,min=1"`
}
