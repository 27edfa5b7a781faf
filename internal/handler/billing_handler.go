package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"casamx/internal/auth"
	"casamx/internal/errors"
	"casamx/internal/service"
)

// BillingHandler handles plan, subscription and credits endpoints.
type BillingHandler struct {
	billingService service.BillingService
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// SubscribeRequest selects a billing plan.
type SubscribeRequest struct {
	PlanCode string `json:"plan_code" validate:"required"`
}

// ListPlans godoc
// @Summary List active billing plans
// @Tags billing
// @Produce json
// @Success 200 {array} model.BillingPlan
// @Failure 500 {object} errors.ErrorResponse
// @Router /billing/plans [get]
func (h *BillingHandler) ListPlans(c echo.Context) error {
	plans, err := h.billingService.ListPlans(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, plans)
}

// Summary godoc
// @Summary Current plan and spendable credits of the caller
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.BillingSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /billing/summary [get]
func (h *BillingHandler) Summary(c echo.Context) error {
	identity, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.billingService.Summary(c.Request().Context(), identity.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}

// Subscribe godoc
// @Summary Subscribe to a billing plan
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubscribeRequest true "Plan selection"
// @Success 200 {object} service.BillingSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /billing/subscribe [post]
func (h *BillingHandler) Subscribe(c echo.Context) error {
	identity, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.billingService.Subscribe(c.Request().Context(), identity.UserID, req.PlanCode)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}
