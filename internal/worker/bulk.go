// Package worker runs batch lookups sequentially, pacing requests to respect
// upstream rate limits.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"xlookup/internal/domain"
	"xlookup/internal/domain/entity"
	"xlookup/pkg/contextx"
	"xlookup/pkg/errcodes"
	"xlookup/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	defaultRequestDelay = 1500 * time.Millisecond
	defaultBurstEvery   = 3
	defaultBurstPause   = 3 * time.Second
)

type LookupService interface {
	Lookup(ctx context.Context, raw, countryHint string) (*entity.LookupResult, error)
}

// BulkRunner issues one lookup per input, strictly in order. It keeps a
// request counter to add an extra pause after every burstEvery-th request;
// it runs single-threaded, so the counter needs no synchronization.
type BulkRunner struct {
	lookups LookupService

	requestDelay time.Duration
	burstEvery   int
	burstPause   time.Duration

	requestCount int
	lastRequest  time.Time
}

func NewBulkRunner(lookups LookupService) *BulkRunner {
	return &BulkRunner{
		lookups:      lookups,
		requestDelay: defaultRequestDelay,
		burstEvery:   defaultBurstEvery,
		burstPause:   defaultBurstPause,
	}
}

func (w *BulkRunner) WithRequestDelay(delay time.Duration) *BulkRunner {
	w.requestDelay = delay
	return w
}

func (w *BulkRunner) WithBurstPause(every int, pause time.Duration) *BulkRunner {
	if every > 0 {
		w.burstEvery = every
	}
	w.burstPause = pause
	return w
}

// Run processes every input and returns exactly one outcome per input. A
// failing lookup, or even a panicking one, never aborts the remaining batch.
// Cancellation is honored between lookups, not mid-request.
func (w *BulkRunner) Run(ctx context.Context, numbers []string, countryHint string) *entity.BatchResult {
	outcomes := make([]entity.BatchOutcome, 0, len(numbers))

	for i, number := range numbers {
		if i > 0 {
			if err := w.waitForNextSlot(ctx); err != nil {
				outcomes = append(outcomes, cancelledOutcomes(numbers[i:])...)
				break
			}
		}

		logger(ctx).Info("processing",
			slog.Int("index", i+1),
			slog.Int("total", len(numbers)),
			slog.String(logx.FieldNumber, number),
		)

		result, err := w.lookupOne(ctx, number, countryHint)

		outcome := entity.BatchOutcome{Input: number, Result: result, Err: err}
		if err != nil {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	failed := lo.CountBy(outcomes, func(o entity.BatchOutcome) bool { return o.Err != nil })

	return &entity.BatchResult{
		Outcomes:   outcomes,
		Successful: len(outcomes) - failed,
		Failed:     failed,
	}
}

// lookupOne guards each item: an invariant violation in the core must not take
// down the rest of the batch.
func (w *BulkRunner) lookupOne(ctx context.Context, number, countryHint string) (result *entity.LookupResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = domain.NewError(errcodes.InternalServerError, fmt.Sprintf("lookup panicked: %v", p))
		}
	}()

	w.requestCount++

	return w.lookups.Lookup(ctx, number, countryHint)
}

// waitForNextSlot enforces the fixed inter-request delay, plus the extra pause
// after every burstEvery-th request.
func (w *BulkRunner) waitForNextSlot(ctx context.Context) error {
	wait := w.requestDelay
	if w.burstEvery > 0 && w.requestCount > 0 && w.requestCount%w.burstEvery == 0 {
		wait += w.burstPause
	}

	if !w.lastRequest.IsZero() {
		if elapsed := time.Since(w.lastRequest); elapsed < wait {
			wait -= elapsed
		} else {
			wait = 0
		}
	}

	if wait <= 0 {
		w.lastRequest = time.Now()
		return nil
	}

	select {
	case <-time.After(wait):
		w.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cancelledOutcomes(remaining []string) []entity.BatchOutcome {
	outcomes := make([]entity.BatchOutcome, 0, len(remaining))

	for _, number := range remaining {
		err := domain.NewError(errcodes.InternalServerError, "batch cancelled")
		outcomes = append(outcomes, entity.BatchOutcome{Input: number, Err: err, Error: err.Error()})
	}

	return outcomes
}
