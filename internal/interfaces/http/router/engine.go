package router

import (
	"fmt"
	"net/http"

	"github.com/dashboard/backend/internal/infrastructure/config"
	"github.com/dashboard/backend/internal/infrastructure/logger"
	"github.com/dashboard/backend/internal/infrastructure/metrics"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/dashboard/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Options configures the middleware chain and operational endpoints.
type Options struct {
	Logger   *zap.Logger
	HTTP     config.HTTPConfig
	Tracing  middleware.TracingConfig
	Security middleware.SecurityConfig

	// Metrics enables request metrics when set. Gatherer is then served
	// on MetricsPath.
	Metrics     *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	MetricsPath string
}

// NewEngine builds the gin engine with the full middleware chain, the
// health and metrics endpoints and every domain route. Paths are
// registered without a trailing slash; gin redirects the other form.
func NewEngine(opts Options, h Handlers) (*gin.Engine, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.RedirectTrailingSlash = true
	if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(opts.Logger),
		logger.Recovery(opts.Logger),
		middleware.Tracing(opts.Tracing),
		middleware.SpanAttributes(),
	)
	if opts.Metrics != nil {
		engine.Use(middleware.Metrics(opts.Metrics))
	}
	engine.Use(
		middleware.CORSWithConfig(corsConfig(opts.HTTP)),
		middleware.SecureWithConfig(opts.Security),
	)
	if opts.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(opts.HTTP.MaxBodySize))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "Not Found", middleware.GetRequestID(c)))
	})

	if h.Health != nil {
		engine.GET("/health", h.Health.Check)
	}
	if opts.Metrics != nil && opts.Gatherer != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(metrics.Handler(opts.Gatherer)))
	}

	registerDomainRoutes(NewRouter(engine), h)
	return engine, nil
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = cfg.CORSAllowOrigins
	}
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
