package server

import (
	"strings"
	"sync"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"formpdf/docs"
	handlers "formpdf/internal/http/handler"
	"formpdf/internal/http/middleware"
	"formpdf/internal/service"
)

// Options configures the HTTP application.
type Options struct {
	Logger       *zap.Logger
	Documents    service.DocumentService
	AllowOrigins []string

	// Metrics and Gatherer enable request metrics and the /metrics endpoint.
	Metrics  *middleware.PrometheusMiddleware
	Gatherer prometheus.Gatherer

	// Tracing adds OpenTelemetry server spans.
	Tracing bool
}

// New builds the Fiber app with global middleware and all routes registered.
func New(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "formpdf",
		ErrorHandler:          handlers.ErrorHandler(log),
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	if opts.Tracing {
		app.Use(otelfiber.Middleware())
	}
	// RequestID adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Handler())
	}
	app.Use(middleware.Logger(log))
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(opts.AllowOrigins)))

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", swaggerHandler())

	handlers.RegisterRoutes(app, opts.Documents)
	return app
}

// corsConfig allows exactly the listed origins, including the literal "null"
// origin sent by pages opened from disk. Any method is accepted and requested
// headers are reflected. Credentials are never forwarded.
func corsConfig(origins []string) cors.Config {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		}, ","),
		ExposeHeaders:    middleware.RequestIDHeader,
		AllowCredentials: false,
	}
}

// swaggerHandler serves the UI with host and scheme taken from the request.
// SwaggerInfo is package-global, so updates are serialized and the values are
// copied out of the request buffer before being retained.
func swaggerHandler() fiber.Handler {
	var mu sync.Mutex
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}
		host := utils.CopyString(c.Get(fiber.HeaderHost))
		scheme = utils.CopyString(scheme)

		mu.Lock()
		defer mu.Unlock()
		docs.SwaggerInfo.Host = host
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
