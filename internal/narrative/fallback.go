package narrative

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single generation attempt
const DefaultTimeout = 10 * time.Second

var tracer = otel.Tracer("github.com/KirkDiggler/signature-weapons/internal/narrative")

// Narration is the text to show and, when generation failed, why
type Narration struct {
	Text      string
	Generated bool
	Failure   *Failure
}

// Fallback wraps a Generator with a timeout and the static flavor fallback
type Fallback struct {
	generator Generator
	provider  Provider
	timeout   time.Duration
	logger    *zap.Logger
}

// NewFallback wraps gen. A nil generator always yields the flavor text.
func NewFallback(gen Generator, provider Provider, timeout time.Duration, logger *zap.Logger) *Fallback {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{
		generator: gen,
		provider:  provider,
		timeout:   timeout,
		logger:    logger,
	}
}

// Enabled reports whether a generator is configured
func (f *Fallback) Enabled() bool {
	return f != nil && f.generator != nil
}

// Provider names the backing service
func (f *Fallback) Provider() Provider {
	return f.provider
}

// Narrate never fails: any error becomes a Failure alongside the request's
// flavor text.
func (f *Fallback) Narrate(ctx context.Context, req *Request) Narration {
	if !f.Enabled() {
		return Narration{Text: req.Flavor}
	}

	ctx, span := tracer.Start(ctx, "narrative.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("narrative.provider", string(f.provider)),
		attribute.String("narrative.attack", req.AttackName),
		attribute.String("narrative.outcome", req.Outcome),
	)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	text, err := f.generator.Generate(ctx, req)
	if err != nil {
		failure := AsFailure(f.provider, err)
		if ctx.Err() != nil && failure.Kind == KindGeneric {
			failure.Kind = KindNetwork
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, string(failure.Kind))
		f.logger.Warn("narrative generation failed",
			zap.String("provider", string(f.provider)),
			zap.String("kind", string(failure.Kind)),
			zap.Int("status", failure.StatusCode),
			zap.Error(err),
		)
		return Narration{Text: req.Flavor, Failure: failure}
	}

	return Narration{Text: text, Generated: true}
}
