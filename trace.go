// SPDX-License-Identifier: Apache-2.0

package validseq

import (
	"encoding/json"
	"fmt"
	"io"
)

// TraceEvent records a single outcome observed by a traced pipeline.
type TraceEvent struct {
	// Index is the outcome's position in iteration order.
	Index int `json:"index"`

	// Accepted reports whether the element passed every stage upstream of
	// the trace point.
	Accepted bool `json:"accepted"`

	// Kind is the rejection kind's name, empty for accepted outcomes.
	Kind string `json:"kind,omitempty"`

	// Error is the formatted rejection, empty for accepted outcomes.
	Error string `json:"error,omitempty"`
}

// A Trace accumulates the events recorded by [Traced] as the pipeline is
// pulled. Fields are directly accessible for querying once iteration has
// finished; reading them mid-iteration from another goroutine is not
// supported, matching the pipeline's single-threaded model.
type Trace struct {
	// Events is the list of all recorded events, in iteration order.
	Events []TraceEvent

	// TotalOutcomes is the number of outcomes observed.
	TotalOutcomes int

	// TotalRejected is the number of observed outcomes that were rejections.
	TotalRejected int
}

// Rejections returns the subset of events that recorded a rejection.
func (t *Trace) Rejections() []TraceEvent {
	var rejected []TraceEvent
	for _, e := range t.Events {
		if !e.Accepted {
			rejected = append(rejected, e)
		}
	}
	return rejected
}

// WriteTextTo writes a human-readable summary of the trace.
//
// Example output:
//
//	12 outcomes, 2 rejected
//	  [3] out of bounds: 42
//	  [7] invalid element: -1
func (t *Trace) WriteTextTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d outcomes, %d rejected\n", t.TotalOutcomes, t.TotalRejected); err != nil {
		return err
	}
	for _, e := range t.Events {
		if e.Accepted {
			continue
		}
		if _, err := fmt.Fprintf(w, "  [%d] %s\n", e.Index, e.Error); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSONTo writes the recorded events as an indented JSON array.
func (t *Trace) WriteJSONTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Events)
}

// A TraceOption configures tracing behavior.
type TraceOption func(*traceOptions)

type traceOptions struct {
	// streamTo receives events as JSON Lines while the pipeline runs.
	streamTo io.Writer
}

// WithStreamTo streams events as JSON Lines (one event per line) to the
// given writer as outcomes are pulled, in addition to retaining them in
// the [Trace] for post-run querying.
//
// Write failures are best-effort and never disturb the outcome stream;
// tracing infrastructure must not break the pipeline itself.
//
// Example:
//
//	f, _ := os.Create("outcomes.jsonl")
//	defer f.Close()
//	traced, trace := validseq.Traced(pipeline, validseq.WithStreamTo(f))
func WithStreamTo(w io.Writer) TraceOption {
	return func(opts *traceOptions) {
		opts.streamTo = w
	}
}

// Traced wraps a pipeline so that every outcome pulled through it is
// recorded into the returned [Trace].
//
// The trace fills in as the returned sequence is ranged; a pipeline that
// is never pulled records nothing. Outcomes pass through unchanged.
// Ranging the returned sequence more than once keeps appending to the
// same Trace, with indexes continuing where the previous run stopped;
// call Traced again for a fresh trace.
//
// Example:
//
//	traced, trace := validseq.Traced(pipeline)
//	values, _ := validseq.Partition(traced)
//	fmt.Printf("rejected %d of %d\n", trace.TotalRejected, trace.TotalOutcomes)
func Traced[T any](src Seq[T], opts ...TraceOption) (Seq[T], *Trace) {
	options := traceOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	result := &Trace{}
	var encoder *json.Encoder
	if options.streamTo != nil {
		encoder = json.NewEncoder(options.streamTo)
	}

	seq := func(yield func(Outcome[T]) bool) {
		for o := range src {
			event := TraceEvent{
				Index:    result.TotalOutcomes,
				Accepted: o.IsAccepted(),
			}
			if o.IsRejected() {
				event.Kind = o.err.Kind.String()
				event.Error = o.err.Error()
				result.TotalRejected++
			}
			result.Events = append(result.Events, event)
			result.TotalOutcomes++
			if encoder != nil {
				_ = encoder.Encode(event) // Best-effort
			}
			if !yield(o) {
				return
			}
		}
	}
	return seq, result
}
