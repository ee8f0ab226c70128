package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/unalcansuu/kds-jolly"

// GetMeter returns the meter used for all application metrics. Without an
// SDK installed this is a no-op meter, so instrumentation is always safe
// to call.
func GetMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}
