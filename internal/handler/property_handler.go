package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"casamx/internal/errors"
	"casamx/internal/service"
)

// PropertyHandler handles property, ESG and simulation endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ESGReportRequest asks for an ESG report of a property.
type ESGReportRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
}

// SimulateRequest projects a property value.
type SimulateRequest struct {
	PropertyID *string         `json:"property_id"`
	Value      decimal.Decimal `json:"value"`
	Years      int             `json:"years"`
}

// ByAddress godoc
// @Summary Property record for a local address
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param address_id query string true "Local address UUID"
// @Success 200 {object} service.PropertyRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/by-address [get]
func (h *PropertyHandler) ByAddress(c echo.Context) error {
	addressID, err := uuid.Parse(c.QueryParam("address_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid address ID",
			Code:  "INVALID_UUID",
		})
	}

	record, err := h.propertyService.ByAddress(c.Request().Context(), addressID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, record)
}

// ESGReport godoc
// @Summary ESG report for a property
// @Tags esg
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ESGReportRequest true "Property reference"
// @Success 200 {object} service.ESGReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /esg/report [post]
func (h *PropertyHandler) ESGReport(c echo.Context) error {
	var req ESGReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, h.propertyService.ESGReport(req.PropertyID))
}

// Simulate godoc
// @Summary Project a property value over time
// @Tags simulate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SimulateRequest true "Simulation input"
// @Success 200 {object} service.SimulationResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /simulate/run [post]
func (h *PropertyHandler) Simulate(c echo.Context) error {
	var req SimulateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	return c.JSON(http.StatusOK, h.propertyService.Simulate(req.PropertyID, req.Value, req.Years))
}
