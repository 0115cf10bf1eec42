// Package service implements the debouncing index scheduler that drains the
// task queue and dispatches detached index jobs
package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hubgate/internal/platform/logger"
	"hubgate/internal/services/indexer/domain"
	signdom "hubgate/internal/services/signers/domain"
	usersdom "hubgate/internal/services/users/domain"
)

// Debounce gaps per task kind, in seconds
const (
	ProfileGap = 300 * time.Second
	LinksGap   = 1800 * time.Second
)

// Dequeuer is the consumer side of the task queue
type Dequeuer interface {
	Dequeue(ctx context.Context) (domain.Task, bool)
}

// Config tunes the scheduler
type Config struct {
	// RatePerSecond caps task admissions; zero means unlimited
	RatePerSecond float64
	// Burst is the limiter burst size; defaults to 1 when rate limiting is on
	Burst int
}

// Worker consumes the queue and schedules index jobs. One Run loop is the
// reference shape; the queue permits more.
type Worker struct {
	queue   Dequeuer
	users   usersdom.IndexerPort
	signers signdom.WriterPort
	limiter *rate.Limiter

	// lastRun maps task key -> unix seconds of last admission
	lastRun sync.Map

	// now is a seam for tests
	now func() time.Time

	// jobs tracks detached index jobs so tests can wait for them
	jobs sync.WaitGroup
}

// New constructs a Worker
func New(q Dequeuer, users usersdom.IndexerPort, signers signdom.WriterPort, cfg Config) *Worker {
	if q == nil {
		panic("indexer.Worker requires a non nil queue")
	}
	if users == nil || signers == nil {
		panic("indexer.Worker requires users and signers ports")
	}
	var lim *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return &Worker{queue: q, users: users, signers: signers, limiter: lim, now: time.Now}
}

// Run drains the queue until ctx is cancelled or the queue closes.
// Returns nil on clean shutdown.
func (w *Worker) Run(ctx context.Context) error {
	l := logger.Named("indexer")
	l.Info().Msg("index worker started")
	for {
		task, ok := w.queue.Dequeue(ctx)
		if !ok {
			l.Info().Msg("index worker stopping")
			w.jobs.Wait()
			return ctx.Err()
		}
		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				w.jobs.Wait()
				return err
			}
		}
		w.scheduleTask(ctx, task)
	}
}

// scheduleTask applies the per-variant debounce policy and spawns the job.
// It never waits on job completion.
func (w *Worker) scheduleTask(ctx context.Context, task domain.Task) {
	l := logger.Named("indexer")
	switch task.Kind {
	case domain.KindUpdateSigner:
		// signer mutations are never debounced
		w.spawn(ctx, task, func(ctx context.Context) error {
			_, err := w.signers.InsertSigner(ctx, task.Signer)
			return err
		})

	case domain.KindIndexFid:
		if !w.admit(task, ProfileGap) {
			l.Trace().Uint64("fid", task.Fid).Msg("profile refresh debounced")
			return
		}
		w.spawn(ctx, task, func(ctx context.Context) error {
			_, err := w.users.FetchAndStoreProfile(ctx, task.Fid)
			return err
		})

	case domain.KindIndexLinks:
		if !w.admit(task, LinksGap) {
			l.Trace().Uint64("fid", task.Fid).Msg("link refresh debounced")
			return
		}
		w.spawn(ctx, task, func(ctx context.Context) error {
			if _, err := w.users.FetchAndStoreLinks(ctx, task.Fid, usersdom.Following); err != nil {
				return err
			}
			_, err := w.users.FetchAndStoreLinks(ctx, task.Fid, usersdom.FollowedBy)
			return err
		})

	case domain.KindIndexFidCasts, domain.KindIndexCast:
		// reserved kinds; accepted and dropped

	default:
		l.Warn().Str("kind", task.Kind.String()).Msg("unknown task kind dropped")
	}
}

// admit checks the debounce gap for task and records the admission time.
// Force bypasses the gap but still advances the last-run clock.
func (w *Worker) admit(task domain.Task, gap time.Duration) bool {
	key := task.Key()
	now := w.now().Unix()
	if !task.Force {
		if prev, ok := w.lastRun.Load(key); ok && now <= prev.(int64)+int64(gap/time.Second) {
			return false
		}
	}
	// monotonic: never move the clock backwards under racing admits
	for {
		prev, ok := w.lastRun.Load(key)
		if ok && prev.(int64) >= now {
			return true
		}
		if !ok {
			if _, raced := w.lastRun.LoadOrStore(key, now); !raced {
				return true
			}
			continue
		}
		if w.lastRun.CompareAndSwap(key, prev, now) {
			return true
		}
	}
}

func (w *Worker) spawn(ctx context.Context, task domain.Task, job func(context.Context) error) {
	w.jobs.Add(1)
	go func() {
		defer w.jobs.Done()
		if err := job(ctx); err != nil {
			logger.Named("indexer").Error().Err(err).
				Str("kind", task.Kind.String()).
				Uint64("fid", task.Fid).
				Msg("index job failed")
		}
	}()
}

// Wait blocks until all spawned jobs have finished. Intended for tests and
// orderly shutdown after Run returns.
func (w *Worker) Wait() { w.jobs.Wait() }
