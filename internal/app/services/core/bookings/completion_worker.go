package bookings

import (
	"context"
	"time"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type endedBookingCompleter interface {
	CompleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CompletionWorker periodically marks confirmed bookings whose session has ended as completed.
type CompletionWorker struct {
	log       *zap.Logger
	locker    contracts.LockerService
	completer endedBookingCompleter
	spec      string
	now       func() time.Time
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

// NewCompletionWorker accepts a nil locker for single-instance deployments.
func NewCompletionWorker(logger *zap.Logger, lockerService contracts.LockerService, completer endedBookingCompleter, spec string) *CompletionWorker {
	return &CompletionWorker{
		log:       logger,
		locker:    lockerService,
		completer: completer,
		spec:      spec,
		now:       time.Now,
	}
}

func (w *CompletionWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("bookings.CompletionWorker failed to schedule with provided cron spec, falling back",
			zap.String("cron_spec", w.spec),
			zap.String("fallback_cron_spec", constvars.BookingCompletionFallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.BookingCompletionFallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels the in-flight sweep and waits for it to return.
func (w *CompletionWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *CompletionWorker) runOnce(ctx context.Context) {
	if w.locker != nil {
		acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyBookingCompletionLeader, constvars.BookingCompletionLeaderTTLInSeconds*time.Second)
		if err != nil {
			w.log.Warn("bookings.CompletionWorker leader lock attempt failed", zap.Error(err))
			return
		}
		if !acquired {
			w.log.Info("bookings.CompletionWorker leader lock not acquired, another instance is running")
			return
		}
		defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyBookingCompletionLeader, token)
	}

	cutoff := w.now()
	completed, err := w.completer.CompleteEndedBefore(ctx, cutoff)
	if err != nil {
		w.log.Warn("bookings.CompletionWorker sweep failed", zap.Error(err))
		return
	}

	w.log.Info("bookings.CompletionWorker sweep finished",
		zap.Time(constvars.LoggingCutoffKey, cutoff),
		zap.Int64(constvars.LoggingCompletedCountKey, completed),
	)
}
