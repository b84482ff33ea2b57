package http

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "ordertracker/internal/generated/docs" // registers the OpenAPI document with swag
	"ordertracker/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries what NewRouter needs besides the API server.
type RouterConfig struct {
	AllowOrigins []string
	Production   bool
	LogLevel     log.Lvl
	// Notifications serves the websocket endpoint; nil leaves /ws unregistered.
	Notifications http.Handler
	Logger        *slog.Logger
}

// NewRouter builds the echo instance: middleware, the order API, health,
// websocket notifications and the API documentation. It fails when the
// embedded OpenAPI document does not load or validate.
func NewRouter(api servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load api document: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)

	logger := cfg.Logger.With("component", "http")
	e.HTTPErrorHandler = errorResponder{production: cfg.Production, logger: logger}.HTTPErrorHandler

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/api-docs/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	if cfg.Notifications != nil {
		e.GET("/ws", echo.WrapHandler(cfg.Notifications))
	}

	servers.RegisterHandlers(e, api)

	return e, nil
}
