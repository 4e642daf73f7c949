package errors

import "net/http"

var (
	ErrInsufficientStops = New(
		"INSUFFICIENT_STOPS",
		"Add at least one stop to build a route",
		http.StatusBadRequest,
	)

	ErrLegFetchFailed = New(
		"LEG_FETCH_FAILED",
		"Failed to fetch directions for a route leg",
		http.StatusBadGateway,
	)

	ErrNoRouteData = New(
		"NO_ROUTE_DATA",
		"Directions provider returned no usable route",
		http.StatusBadGateway,
	)

	ErrMalformedProviderResponse = New(
		"MALFORMED_PROVIDER_RESPONSE",
		"Directions provider returned an unexpected response",
		http.StatusBadGateway,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"No place matched the query",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTransportMode = New(
		"INVALID_TRANSPORT_MODE",
		"Unsupported transport mode",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
