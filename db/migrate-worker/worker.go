package migrateworker

import (
	"context"
	"time"

	baseworker "job-portal-backend/lib/utils/base-worker"
)

// StartWorker повторяет migrate, пока она не выполнится, после успеха останавливается.
// Возвращаемый канал закрывается при остановке воркера
func StartWorker(ctx context.Context, migrate func() error, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	i := newWorker(migrate, interval)
	ctx, cancel := context.WithCancel(ctx)
	i.stop = cancel
	go func() {
		defer close(done)
		defer cancel()
		i.Run(ctx, i.handle)
	}()
	return done
}

func newWorker(migrate func() error, interval time.Duration) *impl {
	return &impl{
		BaseImpl: *baseworker.NewInstance("DbMigrateWorker", 0, interval),
		migrate:  migrate,
		stop:     func() {},
	}
}

type impl struct {
	baseworker.BaseImpl
	migrate  func() error
	stop     func()
	attempts int
}

func (i *impl) handle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	i.attempts++
	if err := i.migrate(); err != nil {
		i.GetLogger().WithError(err).WithField("attempt", i.attempts).Warn("миграция БД не выполнена, повтор позже")
		return
	}
	i.GetLogger().WithField("attempt", i.attempts).Info("миграция БД выполнена")
	i.stop()
}
