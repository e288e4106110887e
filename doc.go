// SPDX-License-Identifier: Apache-2.0

// Package validseq provides a lazy validation pipeline for sequences: wrap
// an [iter.Seq], chain per-element rules onto it, and pull a stream of
// accepted-or-rejected outcomes without materializing the sequence or
// stopping at the first failure.
//
// # The Problem
//
// Validating a stream usually forces a choice: fail fast and lose sight of
// every later problem, or buffer the whole input to report them all.
// Validation rules with memory — "all rows the same length", "each reading
// above the one before it" — additionally tangle bookkeeping state into
// the loop that consumes the data.
//
// Validseq keeps validation lazy and complete. Each element is checked as
// it is pulled, each rule keeps its own private state, and a rejection
// becomes one outcome in the stream rather than the end of it. The
// consumer decides what failure means: collect all-or-nothing, partition,
// count, or stop early.
//
// # Core Concepts
//
// [Seq] is the pipeline type: a lazy sequence of per-element outcomes.
//
//	type Seq[T any] = iter.Seq[Outcome[T]]
//
// An [Outcome] is either Accepted, carrying the element, or Rejected,
// carrying a [*ValidationError] with a closed set of kinds — one kind per
// adapter family.
//
// [Validate] lifts a plain sequence into a pipeline, and each adapter
// wraps a prior stage and exposes the same contract:
//
//	pipeline := validseq.AtLeast(
//	    validseq.Ensure(
//	        validseq.Between(
//	            validseq.Validate(slices.Values(readings)),
//	            0.0, 100.0,
//	        ),
//	        isCalibrated,
//	    ),
//	    10,
//	)
//
// Adapters compose in any order, and order is observable: an element
// rejected by an earlier stage passes through every later stage untouched,
// uninspected, and uncounted. This pass-through rule is the backbone of
// the package; every adapter obeys it.
//
// The available rules:
//
//   - [AtLeast], [AtMost] — bound how many elements are accepted
//
//   - [Between] — inclusive range check over ordered types
//
//   - [Ensure] — arbitrary predicate, with [And], [Or], [Not] combinators
//
//   - [ConstOver] — a derived property must be constant over the sequence
//
//   - [LookBack], [LookBackN] — validate against the element a fixed
//     number of accepted steps back
//
// # Consuming a Pipeline
//
// Ranging over a pipeline yields every outcome in input order. [Collect]
// stops at the first rejection and returns it as an [IndexedError];
// [Values], [Failures], and [Partition] drain the stream without
// stopping.
//
// Stopping early is always safe — nothing is buffered beyond LookBackN's
// fixed window — but note the one asymmetry: [AtLeast] can only detect
// "too few" at natural end of source, so a consumer that stops pulling
// early never sees its synthetic trailing rejection.
//
// # Nested Pipelines
//
// To validate a sequence of already-validated collections — is this
// sequence of independently-checked rows itself non-empty and uniform? —
// bridge the collected results back into a pipeline with [CastErrs], or
// lift foreign errors such as parse failures with [LiftErrs]. Either way
// every inner failure becomes a single opaque Bridged rejection.
// [CollectBatch] collects many independent pipelines concurrently and
// feeds CastErrs directly.
//
// # Messages and Observability
//
// [WithMessage] and [WithMessagef] attach human-readable messages to an
// adapter's rejections, and [Describe] or [Named] rewrite messages already
// in flight; none of them affect control flow. [Logged] reports rejections
// through log/slog, and [Traced] records every outcome into a queryable
// [Trace], optionally streaming JSON Lines.
//
// # Requirements
//
// Validseq requires Go 1.24 or later and has minimal external dependencies.
package validseq
