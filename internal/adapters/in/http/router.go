package http

import (
	"net/http"

	"sellerops/internal/pkg/logger"
	"sellerops/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterOptions struct {
	Logger *logger.Logger
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
	MetricsPath string
	// EchoLogLevel is one of debug, info, warn, error, off.
	EchoLogLevel string
}

// NewRouter builds the echo instance with middleware, ops endpoints and the API routes.
func NewRouter(server *Server, opts RouterOptions) *echo.Echo {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(parseEchoLogLevel(opts.EchoLogLevel))
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log, opts.HTTPMetrics))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if opts.Gatherer != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		e.GET(path, echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError})))
	}
	e.GET(BaseURL+"/openapi.json", getOpenAPI)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server)
	return e
}

func parseEchoLogLevel(level string) gommonlog.Lvl {
	switch level {
	case "debug":
		return gommonlog.DEBUG
	case "warn":
		return gommonlog.WARN
	case "error":
		return gommonlog.ERROR
	case "off":
		return gommonlog.OFF
	default:
		return gommonlog.INFO
	}
}
