// Reelmatch - Movie Recommendations with Live Catalog Metadata
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package fanout runs a function over a batch of inputs on a bounded number
// of goroutines and collects the results in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item with at most width calls in flight and
// returns once all calls have finished. Result i is fn(items[i]) regardless
// of completion order. fn must not fail; callers fold errors into R.
//
// A width below 1 is treated as 1.
func Map[T, R any](ctx context.Context, items []T, width int, fn func(context.Context, T) R) []R {
	if len(items) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}

	results := make([]R, len(items))

	var g errgroup.Group
	g.SetLimit(width)
	for i := range items {
		g.Go(func() error {
			results[i] = fn(ctx, items[i])
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors

	return results
}
