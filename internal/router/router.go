package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"casamx/internal/auth"
	"casamx/internal/config"
	"casamx/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	codec *auth.TokenCodec,
	authHandler *handler.AuthHandler,
	addressHandler *handler.AddressHandler,
	billingHandler *handler.BillingHandler,
	propertyHandler *handler.PropertyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "env": cfg.Env})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	// Address routes are open to anonymous traffic; the daily per-IP quota
	// is enforced inside the handlers.
	api.GET("/addresses/ban-autocomplete", addressHandler.BanAutocomplete)
	api.POST("/addresses/ban-log", addressHandler.BanLog)
	api.GET("/addresses/search", addressHandler.Search)
	api.GET("/addresses/near", addressHandler.Near)

	api.GET("/billing/plans", billingHandler.ListPlans)

	// Secured routes (require a valid session token)
	secured := api.Group("", auth.Middleware(codec))

	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/billing/summary", billingHandler.Summary)
	secured.POST("/billing/subscribe", billingHandler.Subscribe)

	secured.GET("/properties/by-address", propertyHandler.ByAddress)
	secured.POST("/esg/report", propertyHandler.ESGReport)
	secured.POST("/simulate/run", propertyHandler.Simulate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
