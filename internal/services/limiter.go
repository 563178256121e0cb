package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimitedCompleter struct {
	next    Completer
	limiter *rate.Limiter
}

// NewRateLimitedCompleter caps outbound calls at rpm per minute with a burst
// of rpm/60 (at least 1). A non-positive rpm returns next unchanged.
func NewRateLimitedCompleter(next Completer, rpm int) Completer {
	if rpm <= 0 {
		return next
	}

	burst := rpm / 60
	if burst < 1 {
		burst = 1
	}

	return &rateLimitedCompleter{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
	}
}

// Complete implements Completer.
func (r *rateLimitedCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return r.next.Complete(ctx, req)
}
