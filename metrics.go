package mazerun

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter. They resolve against the global providers,
// which are no-ops until internal/telemetry.Init installs real ones.
var (
	tracer = otel.Tracer("mazerun.search")
	meter  = otel.Meter("mazerun.search")
)

var (
	searchLatency  metric.Float64Histogram
	searchTotal    metric.Int64Counter
	statesExpanded metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"mazerun_search_duration_seconds",
			metric.WithDescription("Duration of oriented grid searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"mazerun_search_total",
			metric.WithDescription("Total number of oriented grid searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		statesExpanded, err = meter.Int64Histogram(
			"mazerun_states_expanded",
			metric.WithDescription("Number of states finalized per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSearchMetrics records one finished search.
func recordSearchMetrics(ctx context.Context, mode string, duration time.Duration, expanded int, found bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("found", found),
	)
	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	statesExpanded.Record(ctx, int64(expanded), attrs)
}

// startSearchSpan creates a span for one search over grid.
func startSearchSpan(ctx context.Context, mode string, grid *Grid) (context.Context, trace.Span) {
	return tracer.Start(ctx, "mazerun."+mode,
		trace.WithAttributes(
			attribute.Int("grid.rows", grid.Rows()),
			attribute.Int("grid.cols", grid.Cols()),
		),
	)
}

// endSearchSpan sets result attributes and ends the span.
func endSearchSpan(span trace.Span, cost, expanded int, found bool, err error) {
	span.SetAttributes(
		attribute.Int("search.cost", cost),
		attribute.Int("search.expanded", expanded),
		attribute.Bool("search.found", found),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
