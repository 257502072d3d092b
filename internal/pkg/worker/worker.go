// Package worker — ограниченный пул воркеров для обработки независимых задач (один файл бакета — одна задача).
// Результаты раскладываются по индексу входа; временные ошибки повторяются с экспоненциальным бэкоффом.
package worker

import (
	"context"
	"iter"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"jobSeniority/internal/domain"
)

// Options — настройки пула. Переменные: SENIORITY_WORKERS_*.
type Options struct {
	Workers    int `envconfig:"COUNT" default:"10"`
	MaxRetries int `envconfig:"MAX_RETRIES" default:"2"`

	// RateLimitRPS — общий лимит задач в секунду на все воркеры. <=0 — без лимита.
	RateLimitRPS float64 `envconfig:"RATE_LIMIT_RPS" default:"0"`

	BackoffInitial    time.Duration `envconfig:"BACKOFF_INITIAL" default:"200ms"`
	BackoffMax        time.Duration `envconfig:"BACKOFF_MAX" default:"2s"`
	BackoffJitterFrac float64       `envconfig:"BACKOFF_JITTER" default:"0.2"` // 0.2 = +/-20%
}

// Result — итог одной задачи.
type Result[In any, Out any] struct {
	Input  In
	Output Out
	Err    error
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 10
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.BackoffInitial <= 0 {
		o.BackoffInitial = 200 * time.Millisecond
	}
	if o.BackoffMax <= 0 {
		o.BackoffMax = 2 * time.Second
	}
	if o.BackoffJitterFrac < 0 {
		o.BackoffJitterFrac = 0
	}
	return o
}

// ProcessAll читает задачи из items (лениво, по мере освобождения воркеров) и возвращает результаты
// в порядке входа. Ошибка последовательности items останавливает выдачу новых задач и возвращается
// вместе с результатами уже выданных. Ошибки задач лежат в Result.Err и пул не останавливают.
func ProcessAll[In any, Out any](
	ctx context.Context,
	items iter.Seq2[In, error],
	processor func(context.Context, In) (Out, error),
	opts Options,
) ([]Result[In, Out], error) {
	opts = opts.withDefaults()

	var limiter *rate.Limiter
	if opts.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), 1)
	}

	type job struct {
		idx int
		in  In
	}
	type completion struct {
		idx int
		res Result[In, Out]
	}

	jobs := make(chan job)
	done := make(chan completion, opts.Workers)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				out, err := processWithRetry(ctx, j.in, processor, limiter, opts)
				done <- completion{idx: j.idx, res: Result[In, Out]{Input: j.in, Output: out, Err: err}}
			}
		}()
	}

	var sourceErr error
	total := 0
	go func() {
		defer close(jobs)
		for in, err := range items {
			if err != nil {
				sourceErr = err
				return
			}
			select {
			case jobs <- job{idx: total, in: in}:
				total++
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	var out []Result[In, Out]
	for c := range done {
		if c.idx >= len(out) {
			out = append(out, make([]Result[In, Out], c.idx+1-len(out))...)
		}
		out[c.idx] = c.res
	}

	// jobs закрыт и все воркеры завершились: total и sourceErr больше не меняются.
	out = out[:total]
	if sourceErr != nil {
		return out, sourceErr
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// processWithRetry делает до 1+MaxRetries попыток; повторяются только временные ошибки (domain.IsTransient).
func processWithRetry[In any, Out any](
	ctx context.Context,
	item In,
	processor func(context.Context, In) (Out, error),
	limiter *rate.Limiter,
	opts Options,
) (out Out, err error) {
	for attempt := 0; ; attempt++ {
		if err = wait(ctx, limiter); err != nil {
			return out, err
		}
		out, err = processor(ctx, item)
		switch {
		case err == nil:
			return out, nil
		case ctx.Err() != nil:
			return out, ctx.Err()
		case attempt >= opts.MaxRetries || !domain.IsTransient(err):
			return out, err
		}
		if err := sleep(ctx, opts.backoff(attempt)); err != nil {
			return out, err
		}
	}
}

// wait — токен лимитера (если он задан) или просто проверка контекста.
func wait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return ctx.Err()
	}
	return limiter.Wait(ctx)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// backoff — пауза перед повтором номер attempt (с нуля): BackoffInitial·2^attempt, не больше BackoffMax,
// со случайным разбросом ±BackoffJitterFrac.
func (o Options) backoff(attempt int) time.Duration {
	d := o.BackoffMax
	if attempt < 20 {
		d = min(o.BackoffInitial<<attempt, o.BackoffMax)
	}
	if o.BackoffJitterFrac > 0 {
		d = time.Duration(float64(d) * (1 + o.BackoffJitterFrac*(2*rand.Float64()-1)))
	}
	return d
}
