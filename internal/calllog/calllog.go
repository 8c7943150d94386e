// Package calllog wraps controller and service calls with structured
// entry/exit logging.
//
// Every call logs its layer and operation name on entry, the elapsed time in
// milliseconds on success, and the error message on failure. The wrapper is
// transparent: results, errors, and panics pass through unchanged.
//
// Callers declare the layer explicitly:
//
//	greeting, err := calllog.Call(ctx, calllog.Service, "Greeting", s.greeting)
//
// The logger is taken from ctx (zerolog.Ctx), so the request-scoped fields
// attached by middleware.Logger (request_id, path, ...) appear on every line.
package calllog

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Layer names the logical tier an operation belongs to.
type Layer string

const (
	Controller Layer = "Controller"
	Service    Layer = "Service"
)

// Call invokes fn with ctx and logs around it. The elapsed time covers the
// whole call, including time spent blocked inside fn.
func Call[T any](ctx context.Context, layer Layer, op string, fn func(context.Context) (T, error)) (T, error) {
	lg := loggerFrom(ctx).With().
		Str("layer", string(layer)).
		Str("op", op).
		Logger()

	start := time.Now()
	lg.Info().Msg("call start")

	defer func() {
		if rec := recover(); rec != nil {
			lg.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Int64("elapsed_ms", time.Since(start).Milliseconds()).
				Msg("call failed")
			panic(rec)
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		lg.Error().
			Str("error", err.Error()).
			Int64("elapsed_ms", time.Since(start).Milliseconds()).
			Msg("call failed")
		return v, err
	}

	lg.Info().
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("call end")
	return v, nil
}

// Do is Call for operations without a result.
func Do(ctx context.Context, layer Layer, op string, fn func(context.Context) error) error {
	_, err := Call(ctx, layer, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// loggerFrom returns the context logger, or the global one when ctx has
// none attached.
func loggerFrom(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	return &log.Logger
}
