package pushexpireworker

import (
	"context"
	"time"

	pushdatastore "job-portal-backend/lib/push/data-store"
	baseworker "job-portal-backend/lib/utils/base-worker"
)

// StartWorker периодически удаляет пуши, которые так и не были доставлены за ttl
func StartWorker(ctx context.Context, store pushdatastore.Provider, ttl, interval time.Duration) {
	i := newWorker(store, ttl, interval)
	go i.Run(ctx, i.handle)
}

func newWorker(store pushdatastore.Provider, ttl, interval time.Duration) *impl {
	return &impl{
		BaseImpl: *baseworker.NewInstance("PushExpireWorker", 30*time.Second, interval),
		store:    store,
		ttl:      ttl,
		now:      time.Now,
	}
}

type impl struct {
	baseworker.BaseImpl
	store pushdatastore.Provider
	ttl   time.Duration
	now   func() time.Time
}

func (i impl) handle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	before := i.now().Add(-i.ttl)
	count, err := i.store.DeleteOlderThan(before)
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка удаления устаревших пушей")
		return
	}
	if count > 0 {
		i.GetLogger().WithField("count", count).Info("устаревшие пуши удалены")
	}
}
