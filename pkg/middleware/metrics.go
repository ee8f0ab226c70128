package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/unalcansuu/kds-jolly/pkg/telemetry"
)

// Metrics records a request counter and a latency histogram per route
func Metrics() gin.HandlerFunc {
	requests, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http.server.requests",
		Description: "Number of HTTP requests handled",
		Unit:        "{request}",
	})
	latency, _ := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "http.server.duration",
		Description: "HTTP request latency",
		Unit:        "ms",
	})

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.status_code", strconv.Itoa(c.Writer.Status())),
		}

		if requests != nil {
			requests.Inc(c.Request.Context(), attrs...)
		}
		if latency != nil {
			latency.Record(c.Request.Context(), float64(time.Since(start).Milliseconds()), attrs...)
		}
	}
}
