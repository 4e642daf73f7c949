// Package docs Trip Planner Service API.
//
// Сервис планирования многоостановочных поездок: упорядочивание остановок,
// построение маршрута через внешнего провайдера направлений, поиск мест,
// избранное пользователя и статистика планирования.
//
// Основные возможности:
// - Построение маршрута по набору остановок (driving / transit / walking)
// - Упорядочивание остановок алгоритмом ближайшего соседа
// - Поиск мест по тексту с кешированием
// - Список избранных мест пользователя
// - Агрегированная статистика построенных маршрутов
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
