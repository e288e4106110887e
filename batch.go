// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"iter"

	"golang.org/x/sync/errgroup"
)

// CollectBatch collects many independent pipelines concurrently and yields
// the per-pipeline results in input order.
//
// Each pipeline is drained with [Collect] in its own goroutine; limit
// bounds how many run at once (zero or negative means no limit). The
// returned sequence is lazy only in its delivery: ranging over it runs the
// whole batch, then yields one value-and-error pair per pipeline, which
// feeds directly into [CastErrs] for aggregation by an outer pipeline.
//
// Each pipeline remains single-threaded internally; concurrency exists
// only between pipelines, which share no state.
//
// Example:
//
//	pipelines := make([]validseq.Seq[[]float64], 0, len(rows))
//	for _, raw := range rows {
//	    pipelines = append(pipelines, validateRow(raw))
//	}
//	outer := validseq.ConstOver(
//	    validseq.CastErrs(validseq.CollectBatch(4, pipelines)),
//	    func(r []float64) int { return len(r) },
//	)
func CollectBatch[T any](limit int, pipelines []Seq[T]) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		values := make([][]T, len(pipelines))
		errs := make([]error, len(pipelines))

		var group errgroup.Group
		if limit > 0 {
			group.SetLimit(limit)
		}
		for i, p := range pipelines {
			group.Go(func() error {
				values[i], errs[i] = Collect(p)
				return nil
			})
		}
		// Workers never fail; rejections land in errs.
		_ = group.Wait()

		for i := range pipelines {
			if !yield(values[i], errs[i]) {
				return
			}
		}
	}
}
