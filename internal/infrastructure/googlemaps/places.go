package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

const findPlaceEndpoint = "/maps/api/place/findplacefromtext/json"

type findPlaceResponse struct {
	Status     string           `json:"status"`
	Candidates []placeCandidate `json:"candidates"`
}

type placeCandidate struct {
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	FormattedAddress string         `json:"formatted_address"`
	Geometry         placeGeometry  `json:"geometry"`
}

type placeGeometry struct {
	Location placeLocation `json:"location"`
}

type placeLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewPlacesClient создает новый клиент Places API
func NewPlacesClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.PlaceRepository {
	return newClient(cfg, logger)
}

// FindPlace ищет место по текстовому запросу.
// Возвращает (nil, nil), если кандидатов не найдено.
func (c *client) FindPlace(ctx context.Context, query string, region string) (*domain.Place, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name,formatted_address,geometry")
	params.Set("language", c.language)
	if region != "" {
		params.Set("locationbias", region)
	}
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + findPlaceEndpoint + "?" + params.Encode()

	c.logger.Debug("Calling Find Place API", zap.String("query", query))

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
		c.logger.Error("Find Place API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("find place API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("Failed to decode find place response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedProviderResponse, err)
	}

	if result.Status == domain.DirectionsStatusZeroResults || len(result.Candidates) == 0 {
		c.logger.Debug("No place candidates found", zap.String("query", query))
		return nil, nil
	}
	if result.Status != domain.DirectionsStatusOK {
		c.logger.Error("Find Place API returned non-OK status", zap.String("status", result.Status))
		return nil, fmt.Errorf("find place API status: %s", result.Status)
	}

	best := result.Candidates[0]
	place := &domain.Place{
		ID:   best.PlaceID,
		Name: best.Name,
		Location: domain.Coordinate{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
		Address: best.FormattedAddress,
	}

	c.logger.Debug("Place found",
		zap.String("place_id", place.ID),
		zap.String("name", place.Name))

	return place, nil
}
