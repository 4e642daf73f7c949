package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

const directionsEndpoint = "/maps/api/directions/json"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	region     string
	logger     *zap.Logger
}

func newClient(cfg *config.GoogleConfig, logger *zap.Logger) *client {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		region:   cfg.Region,
		logger:   logger,
	}
}

// NewDirectionsClient создает новый клиент Directions API
func NewDirectionsClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.DirectionsRepository {
	return newClient(cfg, logger)
}

// GetDirections запрашивает маршрут между двумя точками.
// Non-OK статус провайдера не считается ошибкой транспорта -
// ответ возвращается как есть, классификацию выполняет вызывающий.
func (c *client) GetDirections(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	mode domain.TransportMode,
) (*domain.DirectionsResponse, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported transport mode: %s", mode)
	}

	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	params.Set("mode", string(mode))
	params.Set("language", c.language)
	if c.region != "" {
		params.Set("region", c.region)
	}
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + directionsEndpoint + "?" + params.Encode()

	c.logger.Debug("Calling Directions API",
		zap.String("mode", string(mode)),
		zap.Float64("origin_lat", origin.Lat),
		zap.Float64("origin_lng", origin.Lng),
		zap.Float64("dest_lat", destination.Lat),
		zap.Float64("dest_lng", destination.Lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Directions API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("directions API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var directions domain.DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode directions response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedProviderResponse, err)
	}

	c.logger.Debug("Directions API call finished",
		zap.String("status", directions.Status),
		zap.Int("routes", len(directions.Routes)))

	return &directions, nil
}
