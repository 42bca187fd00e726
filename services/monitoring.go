package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	SERVICE_NAME            = "course_api"
	DEFAULT_PROMETHEUS_PORT = 2112

	// unmatchedRoute labels requests that fell through to the 404 handler, so
	// scanners trying random paths do not create one series per path.
	unmatchedRoute = "unmatched"
)

// HTTP Metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route pattern, method and final status",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestsActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_active",
			Help: "HTTP requests currently being served",
		},
		[]string{"method"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"route", "method", "status"},
	)

	httpResponseSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response body size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		},
		[]string{"route", "method"},
	)
)

// Admission Metrics
var (
	rateLimitDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_decisions_total",
			Help: "Rate limiter decisions by policy and outcome",
		},
		[]string{"policy", "decision"},
	)

	classifiedErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classified_errors_total",
			Help: "Errors returned to callers by response status",
		},
		[]string{"status"},
	)
)

func recordRateLimitDecision(policy string, allowed bool) {
	decision := "allowed"
	if !allowed {
		decision = "rejected"
	}
	rateLimitDecisionsTotal.WithLabelValues(policy, decision).Inc()
}

func recordClassifiedError(status int) {
	classifiedErrorsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

func recordRequest(route, method string, status int, duration time.Duration, responseSize int) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(route, method, code).Inc()
	httpRequestDurationSeconds.WithLabelValues(route, method, code).Observe(duration.Seconds())
	httpResponseSizeBytes.WithLabelValues(route, method).Observe(float64(responseSize))
}

// MonitoringService exposes the Prometheus registry and a health check on their
// own port, away from the public API.
type MonitoringService struct {
	context.DefaultService

	port     int
	register *prometheus.Registry
	server   *fiber.App
}

func (svc *MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Configure(ctx *context.Context) error {
	svc.port = DEFAULT_PROMETHEUS_PORT
	if port, err := strconv.Atoi(os.Getenv("PROMETHEUS_PORT")); err == nil {
		svc.port = port
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *MonitoringService) Start() error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequestsTotal,
		httpRequestsActive,
		httpRequestDurationSeconds,
		httpResponseSizeBytes,
		rateLimitDecisionsTotal,
		classifiedErrorsTotal,
	)
	svc.register = reg

	svc.server = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	})
	svc.server.Use(recover.New())
	svc.server.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	svc.server.Get("/health", svc.healthHandler)

	go func() {
		if err := svc.server.Listen(fmt.Sprintf(":%v", svc.port)); err != nil {
			log.Error().Err(err).Msg("Prometheus metrics server stopped")
		}
	}()

	log.Info().Int("port", svc.port).Msg("Prometheus metrics server started")
	return nil
}

func (svc *MonitoringService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *MonitoringService) healthHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   SERVICE_NAME,
		"timestamp": time.Now().Unix(),
	})
}

// Middleware records one sample per request. It must be the outermost handler:
// an error from the chain is passed to the app's error handler here, so the
// status that is recorded is the one the caller receives.
func (svc *MonitoringService) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		method := c.Method()

		active := httpRequestsActive.WithLabelValues(method)
		active.Inc()
		defer active.Dec()

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		recordRequest(routeLabel(c), method, c.Response().StatusCode(), time.Since(start), len(c.Response().Body()))
		return nil
	}
}

// routeLabel is the pattern of the last route that handled the request, read
// after the chain ran. Handlers mounted with Use sit on the root path, which
// serves nothing itself, so a request that ended there matched no route.
func routeLabel(c *fiber.Ctx) string {
	route := c.Route()
	if route == nil || route.Path == "/" {
		return unmatchedRoute
	}
	return route.Path
}
