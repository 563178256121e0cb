package services

import (
	"context"
	"errors"
	"fmt"
)

// FirstSuccess calls attempt for each option in order and returns the first
// result that comes back without error, along with the option that produced
// it. When every option fails the individual failures are joined.
func FirstSuccess[T any](ctx context.Context, options []string, attempt func(ctx context.Context, option string) (T, error)) (T, string, error) {
	var zero T

	if len(options) == 0 {
		return zero, "", errors.New("no options to try")
	}

	var errs []error
	for _, opt := range options {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		result, err := attempt(ctx, opt)
		if err == nil {
			return result, opt, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", opt, err))
	}

	return zero, "", errors.Join(errs...)
}
