// Package batch implements the request batching pipeline for Steam Web API
// endpoints that accept a bounded number of identifiers per call.
//
// The pipeline is: deduplicate the requested identifiers, split them into
// bounded-size chunks, then run one task per chunk strictly in sequence with
// a fixed delay between calls (Steam throttles bursty clients aggressively).
//
// Example usage:
//
//	ids = batch.Dedupe(ids)
//	chunks, err := batch.Chunk(ids, 20)
//	if err != nil {
//		return err
//	}
//	tasks := make([]func(context.Context) (Result, error), len(chunks))
//	for i, chunk := range chunks {
//		tasks[i] = fetchTaskFor(chunk)
//	}
//	results, err := batch.RunSeries(ctx, tasks, time.Second)
//
// RunSeries is all-or-nothing: the first task failure aborts the batch and
// unstarted tasks are never invoked.
package batch
