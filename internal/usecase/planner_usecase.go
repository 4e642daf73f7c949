package usecase

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

// PlannerState - состояние планировочной сессии
type PlannerState string

const (
	StateIdle            PlannerState = "idle"
	StateOptimizingOrder PlannerState = "optimizing_order"
	StateFetchingRoute   PlannerState = "fetching_route"
	StateReady           PlannerState = "ready"
	StateFailed          PlannerState = "failed"
)

// PlannerSession - сессия планирования одной поездки. Хранит текущий снимок
// запроса и последний принятый результат. Терминального состояния нет:
// смена режима или остановок возвращает сессию в fetching_route.
type PlannerSession struct {
	ID        string
	Trip      domain.TripRequest
	Mode      domain.TransportMode
	State     PlannerState
	Itinerary *domain.Itinerary
	LastError error

	// fetchToken помечает активный запрос; результат с устаревшим
	// токеном отбрасывается и не меняет состояние сессии
	fetchToken uuid.UUID
	mu         sync.Mutex
}

// PlannerUseCase управляет сессиями планирования: оптимизация порядка,
// запрос маршрута, подавление устаревших результатов и публикация
// событий в журнал поездок.
type PlannerUseCase struct {
	tour       *TourUseCase
	itinerary  *ItineraryUseCase
	streamRepo repository.StreamRepository
	logger     *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*PlannerSession
}

func NewPlannerUseCase(
	tour *TourUseCase,
	itinerary *ItineraryUseCase,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *PlannerUseCase {
	return &PlannerUseCase{
		tour:       tour,
		itinerary:  itinerary,
		streamRepo: streamRepo,
		logger:     logger,
		sessions:   make(map[string]*PlannerSession),
	}
}

// Session возвращает сессию по идентификатору, создавая её при первом обращении
func (uc *PlannerUseCase) Session(id string) *PlannerSession {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if ok {
		return s
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if s, ok = uc.sessions[id]; ok {
		return s
	}
	s = &PlannerSession{
		ID:    id,
		State: StateIdle,
	}
	uc.sessions[id] = s
	return s
}

// PlanTrip выполняет полный цикл планирования для сессии: упорядочивает
// остановки, запрашивает маршрут и фиксирует результат в сессии, если
// за время запроса параметры сессии не изменились. Возвращаемые значения
// отражают именно этот вызов независимо от судьбы снимка сессии.
func (uc *PlannerUseCase) PlanTrip(
	ctx context.Context,
	sessionID string,
	trip domain.TripRequest,
	mode domain.TransportMode,
) ([]domain.Place, *domain.Itinerary, error) {
	session := uc.Session(sessionID)

	session.mu.Lock()
	token := uuid.New()
	session.fetchToken = token
	session.Trip = trip
	session.Mode = mode
	session.State = StateOptimizingOrder
	session.mu.Unlock()

	ordered := uc.tour.Optimize(trip.Start, trip.Destinations)

	session.mu.Lock()
	if session.fetchToken == token {
		session.State = StateFetchingRoute
	}
	session.mu.Unlock()

	itinerary, err := uc.itinerary.FetchItinerary(ctx, trip.Start, ordered, mode)

	uc.publishPlanned(ctx, trip, ordered, mode, itinerary, err)

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.fetchToken != token {
		// Параметры сменились, пока запрос был в полёте - снимок сессии
		// принадлежит более новому запросу и не трогается
		uc.logger.Debug("Stale itinerary result discarded",
			zap.String("session_id", sessionID))
		return ordered, itinerary, err
	}

	if err != nil {
		session.State = StateFailed
		session.Itinerary = nil
		session.LastError = err
		return ordered, nil, err
	}

	session.State = StateReady
	session.Itinerary = itinerary
	session.LastError = nil
	return ordered, itinerary, nil
}

// SetMode меняет режим передвижения сессии. Активный запрос, если он есть,
// становится устаревшим; новый маршрут строится следующим вызовом PlanTrip.
func (uc *PlannerUseCase) SetMode(sessionID string, mode domain.TransportMode) error {
	if !mode.Valid() {
		return errors.ErrInvalidTransportMode
	}

	session := uc.Session(sessionID)
	session.mu.Lock()
	defer session.mu.Unlock()

	session.Mode = mode
	session.fetchToken = uuid.New()
	session.Itinerary = nil
	if session.Trip.TotalPoints() < 2 {
		session.State = StateIdle
	} else {
		session.State = StateFetchingRoute
	}
	return nil
}

// AddStop добавляет остановку в сессию. Дубликаты по идентификатору
// игнорируются; любой активный запрос становится устаревшим.
func (uc *PlannerUseCase) AddStop(sessionID string, place domain.Place) bool {
	session := uc.Session(sessionID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.Trip.AddDestination(place) {
		return false
	}
	session.fetchToken = uuid.New()
	session.Itinerary = nil
	session.State = StateFetchingRoute
	return true
}

// RemoveStop удаляет остановку из сессии по идентификатору места
func (uc *PlannerUseCase) RemoveStop(sessionID, placeID string) bool {
	session := uc.Session(sessionID)
	session.mu.Lock()
	defer session.mu.Unlock()

	if !session.Trip.RemoveDestination(placeID) {
		return false
	}
	session.fetchToken = uuid.New()
	session.Itinerary = nil
	if session.Trip.TotalPoints() < 2 {
		session.State = StateIdle
	} else {
		session.State = StateFetchingRoute
	}
	return true
}

// SessionState возвращает текущее состояние сессии
func (uc *PlannerUseCase) SessionState(sessionID string) PlannerState {
	session := uc.Session(sessionID)
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.State
}

// publishPlanned отправляет событие о завершённой сборке маршрута в журнал.
// Сбой публикации не влияет на результат планирования.
func (uc *PlannerUseCase) publishPlanned(
	ctx context.Context,
	trip domain.TripRequest,
	ordered []domain.Place,
	mode domain.TransportMode,
	itinerary *domain.Itinerary,
	planErr error,
) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.TripPlannedEvent{
		EventID:   uuid.New(),
		Mode:      mode,
		StopCount: trip.TotalPoints(),
		LegCount:  len(ordered),
		Success:   planErr == nil,
		PlannedAt: time.Now(),
	}
	if itinerary != nil {
		event.TotalDuration = itinerary.TotalDuration
		event.TotalDistance = itinerary.TotalDistance
	}
	if planErr != nil {
		var appErr *errors.AppError
		if stderrors.As(planErr, &appErr) {
			event.ErrorCode = appErr.Code
		} else {
			event.ErrorCode = "UNKNOWN"
		}
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamTripPlanned, event); err != nil {
		uc.logger.Warn("Failed to publish trip planned event", zap.Error(err))
	}
}
