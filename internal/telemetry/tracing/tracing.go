package tracing

import (
	"fmt"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fitstats-backend")

// HoneycombSetup uses the honeycomb distro to set up the OpenTelemetry SDK.
// When tracing is disabled a no-op shutdown func is returned, and the
// GlobalTracer spans all over the place become no-ops too.
func HoneycombSetup(
	tracingEnabled bool,
	serviceName string,
	rdb *redis.Client,
) (shutdown func(), err error) {
	if !tracingEnabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry sdk: %w", err)
	}

	rdb.AddHook(redisotel.NewTracingHook())

	log.Debugln("honeycomb tracing set up")
	return otelShutdown, nil
}

// EndSpanWithErrCheck records the error on the span (if any) and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
