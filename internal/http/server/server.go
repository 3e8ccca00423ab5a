// Package server assembles the Fiber application: middleware chain, resource
// routes, metrics, API docs and the NotFound fallback.
package server

import (
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"tutormock/docs"
	"tutormock/internal/config"
	handlers "tutormock/internal/http/handler"
	"tutormock/internal/http/middleware"
	"tutormock/internal/service"
)

// Options carries everything New needs.
type Options struct {
	Config   *config.AppConfig
	Logger   *zap.Logger
	Service  service.FixtureService
	Registry *prometheus.Registry

	// TracerProvider overrides the global provider for request spans.
	TracerProvider trace.TracerProvider
}

// New builds the application. It never binds a socket.
func New(opts Options) (*fiber.App, error) {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "tutormock " + opts.Config.Version,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	tracingOpts := []otelfiber.Option{
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return c.Path() == middleware.MetricsPath
		}),
	}
	if opts.TracerProvider != nil {
		tracingOpts = append(tracingOpts, otelfiber.WithTracerProvider(opts.TracerProvider))
	}

	// otelfiber runs the error handler itself and restores the user context,
	// so it must wrap Logger and metrics for them to see the span and raw error.
	// recover sits innermost so panics surface as errors to everything above it.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(tracingOpts...))
	app.Use(middleware.Logger(opts.Logger))
	app.Use(prom.Handler())
	app.Use(middleware.CORS(opts.Config.CORS.AllowOrigins, opts.Config.CORS.AllowCredentials))
	app.Use(recover.New())

	handlers.RegisterRoutes(app, opts.Service)

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterFallback(app)

	return app, nil
}
