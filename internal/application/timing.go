package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/fibdrv/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// timedGenerate brackets one generation with two clock readings. The caller
// decides where the duration goes; readers never see it directly.
func (d *Device) timedGenerate(ctx context.Context, k int64) (domain.Value, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return domain.Value{}, 0, err
	}

	_, span := d.tracer.Start(ctx, "fibdrv.generate", trace.WithAttributes(attribute.Int64("fib.index", k)))
	defer span.End()

	start := d.clock.Now()
	value, err := d.gen.Generate(k)
	elapsed := d.clock.Now().Sub(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Value{}, elapsed, fmt.Errorf("generate F(%d): %w", k, err)
	}

	span.SetAttributes(
		attribute.Int("fib.digits", value.Len()),
		attribute.Int64("fib.elapsed_ns", elapsed.Nanoseconds()),
	)

	return value, elapsed, nil
}
