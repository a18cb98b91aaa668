package pushexpireworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	dbmodels "job-portal-backend/models/db"
)

type fakeStore struct {
	before time.Time
	calls  int
	err    error
}

func (f *fakeStore) Create(rec dbmodels.PushData) error { return nil }

func (f *fakeStore) List(email string) ([]dbmodels.PushData, error) { return nil, nil }

func (f *fakeStore) Delete(ids []string) error { return nil }

func (f *fakeStore) DeleteOlderThan(before time.Time) (int64, error) {
	f.calls++
	f.before = before
	return 3, f.err
}

func TestHandle(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("граница считается от текущего времени", func(t *testing.T) {
		store := &fakeStore{}
		w := newWorker(store, 48*time.Hour, time.Minute)
		w.now = func() time.Time { return now }
		w.handle(context.Background())
		require.Equal(t, 1, store.calls)
		require.Equal(t, now.Add(-48*time.Hour), store.before)
	})

	t.Run("ошибка хранилища не паникует", func(t *testing.T) {
		store := &fakeStore{err: errors.New("db down")}
		w := newWorker(store, time.Hour, time.Minute)
		require.NotPanics(t, func() { w.handle(context.Background()) })
	})

	t.Run("остановленный контекст", func(t *testing.T) {
		store := &fakeStore{}
		w := newWorker(store, time.Hour, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w.handle(ctx)
		require.Zero(t, store.calls)
	})
}
