package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// CacheResults counts response-cache lookups by key family and outcome.
	CacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_results_total",
		Help: "Response cache lookups by key family and hit/miss outcome",
	}, []string{"family", "outcome"})

	// LoginThrottleRejections counts logins rejected by the failed-login throttle.
	LoginThrottleRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_login_throttle_rejections_total",
		Help: "Total number of login attempts rejected by the failed-login throttle",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler recording HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
