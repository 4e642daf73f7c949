package googlemaps

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *client {
	cfg := &config.GoogleConfig{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Language:       "ko",
		Region:         "kr",
		RequestTimeout: 5,
	}
	return newClient(cfg, zap.NewNop())
}

func TestGetDirections(t *testing.T) {
	t.Run("successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, directionsEndpoint, r.URL.Path)
			assert.Equal(t, "37.566500,126.978000", r.URL.Query().Get("origin"))
			assert.Equal(t, "transit", r.URL.Query().Get("mode"))
			assert.Equal(t, "ko", r.URL.Query().Get("language"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "OK",
				"routes": [{
					"summary": "올림픽대로",
					"legs": [{
						"distance": {"text": "12.3km", "value": 12300},
						"duration": {"text": "35분", "value": 2100},
						"steps": [{
							"html_instructions": "<b>시청역</b>에서 지하철 탑승",
							"travel_mode": "TRANSIT",
							"distance": {"text": "10km", "value": 10000},
							"duration": {"text": "25분", "value": 1500},
							"polyline": {"points": "abc123"}
						}]
					}]
				}]
			}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		resp, err := c.GetDirections(context.Background(),
			domain.Coordinate{Lat: 37.5665, Lng: 126.978},
			domain.Coordinate{Lat: 37.5796, Lng: 126.977},
			domain.ModeTransit)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, domain.DirectionsStatusOK, resp.Status)
		require.Len(t, resp.Routes, 1)
		require.Len(t, resp.Routes[0].Legs, 1)

		leg := resp.Routes[0].Legs[0]
		assert.Equal(t, 12300, leg.Distance.Value)
		assert.Equal(t, 2100, leg.Duration.Value)
		require.Len(t, leg.Steps, 1)
		assert.Equal(t, "abc123", leg.Steps[0].Polyline.Points)
	})

	t.Run("zero results passed through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		resp, err := c.GetDirections(context.Background(),
			domain.Coordinate{Lat: 37.5665, Lng: 126.978},
			domain.Coordinate{Lat: 0, Lng: 0},
			domain.ModeDriving)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, domain.DirectionsStatusZeroResults, resp.Status)
		assert.Empty(t, resp.Routes)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		resp, err := c.GetDirections(context.Background(),
			domain.Coordinate{Lat: 37.5665, Lng: 126.978},
			domain.Coordinate{Lat: 37.5796, Lng: 126.977},
			domain.ModeDriving)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "OK", "routes": [`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		resp, err := c.GetDirections(context.Background(),
			domain.Coordinate{Lat: 37.5665, Lng: 126.978},
			domain.Coordinate{Lat: 37.5796, Lng: 126.977},
			domain.ModeWalking)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, stderrors.Is(err, errors.ErrMalformedProviderResponse))
	})

	t.Run("invalid transport mode", func(t *testing.T) {
		c := newTestClient("http://localhost")
		resp, err := c.GetDirections(context.Background(),
			domain.Coordinate{Lat: 37.5665, Lng: 126.978},
			domain.Coordinate{Lat: 37.5796, Lng: 126.977},
			domain.TransportMode("bicycle"))

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestFindPlace(t *testing.T) {
	t.Run("successful search", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, findPlaceEndpoint, r.URL.Path)
			assert.Equal(t, "경복궁", r.URL.Query().Get("input"))
			assert.Equal(t, "textquery", r.URL.Query().Get("inputtype"))

			w.Write([]byte(`{
				"status": "OK",
				"candidates": [{
					"place_id": "ChIJod7tSseifDUR9hXHLFNGMIs",
					"name": "경복궁",
					"formatted_address": "서울특별시 종로구 사직로 161",
					"geometry": {"location": {"lat": 37.579617, "lng": 126.977041}}
				}]
			}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		place, err := c.FindPlace(context.Background(), "경복궁", "")

		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "ChIJod7tSseifDUR9hXHLFNGMIs", place.ID)
		assert.Equal(t, "경복궁", place.Name)
		assert.InDelta(t, 37.579617, place.Location.Lat, 1e-9)
		assert.InDelta(t, 126.977041, place.Location.Lng, 1e-9)
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "candidates": []}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		place, err := c.FindPlace(context.Background(), "존재하지않는장소", "")

		assert.NoError(t, err)
		assert.Nil(t, place)
	})

	t.Run("non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "REQUEST_DENIED", "candidates": []}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		place, err := c.FindPlace(context.Background(), "경복궁", "")

		assert.Error(t, err)
		assert.Nil(t, place)
	})
}
