package batch

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for batch execution.
var (
	batchTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "steam_batch_tasks_total",
		Help: "Total batch tasks executed by outcome",
	}, []string{"outcome"})

	batchSeriesDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "steam_batch_series_duration_seconds",
		Help:    "Duration of a full sequential batch run",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})
)

// RunSeries executes tasks one at a time, in order, and returns their results
// index-aligned with the task slice. Only one task is ever in flight; task
// i+1 does not start until task i's result has been observed. After each
// successful task except the last, execution pauses for delay.
//
// The batch is all-or-nothing: the first task error aborts the run, tasks not
// yet started are never invoked, and results accumulated so far are
// discarded. Context cancellation is honored between tasks and during the
// inter-task delay; the tasks themselves receive ctx and are expected to
// honor it at their own blocking points.
func RunSeries[T any](ctx context.Context, tasks []func(context.Context) (T, error), delay time.Duration) ([]T, error) {
	start := time.Now()
	defer func() {
		batchSeriesDuration.Observe(time.Since(start).Seconds())
	}()

	results := make([]T, 0, len(tasks))

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			batchTasksTotal.WithLabelValues("cancelled").Inc()
			return nil, err
		}

		result, err := task(ctx)
		if err != nil {
			log.Debug().
				Int("task", i).
				Int("total", len(tasks)).
				Err(err).
				Msg("Batch task failed, aborting series")
			batchTasksTotal.WithLabelValues("error").Inc()
			return nil, err
		}

		batchTasksTotal.WithLabelValues("ok").Inc()
		results = append(results, result)

		// Throttle before the next task. The final task needs no delay.
		if delay > 0 && i < len(tasks)-1 {
			if err := sleep(ctx, delay); err != nil {
				batchTasksTotal.WithLabelValues("cancelled").Inc()
				return nil, err
			}
		}
	}

	return results, nil
}

// sleep pauses for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
