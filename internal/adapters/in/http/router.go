package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"luggage/internal/core/ports"
	"luggage/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// AuthRoutesPrefix is the route group throttled by the rate limiter.
const AuthRoutesPrefix = "/api/auth/"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	Verifier ports.TokenVerifier
	// AuthRateLimit throttles the auth endpoints per client IP. Nil disables it.
	AuthRateLimit middleware.RateLimiterStore
	Database      Pinger
	Logger        *slog.Logger
}

// NewRouter builds the echo instance serving the whole API.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	e.Use(middleware.CORS())
	if cfg.AuthRateLimit != nil {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: func(ctx echo.Context) bool {
				return !strings.HasPrefix(ctx.Request().URL.Path, AuthRoutesPrefix)
			},
			Store: cfg.AuthRateLimit,
			IdentifierExtractor: func(ctx echo.Context) (string, error) {
				return ctx.RealIP(), nil
			},
		}))
	}
	e.Use(Authenticate(cfg.Verifier))

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/health/db", databaseHealth(cfg.Database))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.ErrorContext(ctx.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

func databaseHealth(db Pinger) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 5*time.Second)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":  "error",
				"message": err.Error(),
			})
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string { return string(d) }

var swaggerDocOnce sync.Once

// registerSwaggerDoc publishes the API document to the swagger UI as JSON.
// swag keeps a process-wide registry, so only the first call registers.
func registerSwaggerDoc(swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return fmt.Errorf("failed to encode openapi document: %w", err)
	}
	swaggerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(doc))
	})
	return nil
}
