package intake

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// StoreAll stores independent requests concurrently, at most the configured
// concurrency at a time. Outcomes are returned in request order.
// Every request is attempted; one rejection never cancels the others.
func (in *Intake) StoreAll(ctx context.Context, reqs []Request) []Outcome {
	outcomes := make([]Outcome, len(reqs))

	var g errgroup.Group
	g.SetLimit(in.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			outcomes[i] = in.Store(ctx, req)
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}
