package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"casamx/internal/auth"
	"casamx/internal/errors"
	"casamx/internal/service"
)

// AddressHandler handles BAN autocomplete and the local address index.
type AddressHandler struct {
	addressService service.AddressService
	quotaService   service.QuotaService
	codec          *auth.TokenCodec
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(addressService service.AddressService, quotaService service.QuotaService, codec *auth.TokenCodec) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		quotaService:   quotaService,
		codec:          codec,
	}
}

// BanLogRequest persists a selected BAN suggestion.
type BanLogRequest struct {
	Label      string   `json:"label" validate:"required"`
	PostalCode *string  `json:"postal_code"`
	City       *string  `json:"city"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
}

// checkQuota resolves the caller (authenticated ones bypass the daily
// limit) and logs the search.
func (h *AddressHandler) checkQuota(c echo.Context, query string) error {
	var userID *uuid.UUID
	if identity := auth.OptionalIdentity(c, h.codec); identity != nil {
		userID = &identity.UserID
	}

	if err := h.quotaService.CheckAndLog(c.Request().Context(), c.RealIP(), query, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return nil
}

func queryLimit(c echo.Context, def, max int) int {
	limit := def
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 && parsed <= max {
			limit = parsed
		}
	}
	return limit
}

// BanAutocomplete godoc
// @Summary Autocomplete an address against the Base Adresse Nationale
// @Tags addresses
// @Produce json
// @Param q query string true "Free-text address query"
// @Param limit query int false "Max suggestions (1-20, default 8)"
// @Success 200 {array} ban.Suggestion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /addresses/ban-autocomplete [get]
func (h *AddressHandler) BanAutocomplete(c echo.Context) error {
	q := c.QueryParam("q")
	if len(q) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "query must contain at least 2 characters")
	}
	limit := queryLimit(c, 8, 20)

	if err := h.checkQuota(c, q); err != nil {
		return err
	}

	suggestions, err := h.addressService.Autocomplete(c.Request().Context(), q, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, suggestions)
}

// BanLog godoc
// @Summary Persist a selected BAN suggestion into the local index
// @Tags addresses
// @Accept json
// @Produce json
// @Param request body BanLogRequest true "Selected suggestion"
// @Success 200 {object} model.Address
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /addresses/ban-log [post]
func (h *AddressHandler) BanLog(c echo.Context) error {
	var req BanLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.addressService.LogSelection(c.Request().Context(), service.Selection{
		Label:      req.Label,
		PostalCode: req.PostalCode,
		City:       req.City,
		Lat:        req.Lat,
		Lng:        req.Lng,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, address)
}

// Search godoc
// @Summary Search the local address index
// @Tags addresses
// @Produce json
// @Param q query string true "Text matched against address, city and postal code"
// @Param limit query int false "Max results (1-50, default 10)"
// @Param lat query number false "Latitude for distance sorting"
// @Param lng query number false "Longitude for distance sorting"
// @Success 200 {array} service.AddressResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /addresses/search [get]
func (h *AddressHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if len(q) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "query must contain at least 2 characters")
	}
	limit := queryLimit(c, 10, 50)

	var lat, lng *float64
	if rawLat, rawLng := c.QueryParam("lat"), c.QueryParam("lng"); rawLat != "" && rawLng != "" {
		parsedLat, errLat := strconv.ParseFloat(rawLat, 64)
		parsedLng, errLng := strconv.ParseFloat(rawLng, 64)
		if errLat != nil || errLng != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lat/lng")
		}
		lat, lng = &parsedLat, &parsedLng
	}

	if err := h.checkQuota(c, q); err != nil {
		return err
	}

	results, err := h.addressService.Search(c.Request().Context(), q, limit, lat, lng)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, results)
}

// Near godoc
// @Summary List local addresses around a GPS point
// @Tags addresses
// @Produce json
// @Param lat query number true "Latitude of the reference point"
// @Param lng query number true "Longitude of the reference point"
// @Param radius_m query int false "Search radius in meters (10-20000, default 500)"
// @Param limit query int false "Max results (1-100, default 20)"
// @Success 200 {array} service.AddressResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /addresses/near [get]
func (h *AddressHandler) Near(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "lat and lng are required")
	}

	radius := 500
	if raw := c.QueryParam("radius_m"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 10 || parsed > 20000 {
			return echo.NewHTTPError(http.StatusBadRequest, "radius_m must be between 10 and 20000")
		}
		radius = parsed
	}
	limit := queryLimit(c, 20, 100)

	queryLabel := fmt.Sprintf("near:%g,%g,r=%d", lat, lng, radius)
	if err := h.checkQuota(c, queryLabel); err != nil {
		return err
	}

	results, err := h.addressService.Near(c.Request().Context(), lat, lng, radius, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, results)
}
