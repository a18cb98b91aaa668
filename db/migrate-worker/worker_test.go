package migrateworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	t.Run("ошибка миграции не останавливает воркер", func(t *testing.T) {
		stopped := false
		w := newWorker(func() error { return errors.New("connection refused") }, time.Minute)
		w.stop = func() { stopped = true }
		w.handle(context.Background())
		require.Equal(t, 1, w.attempts)
		require.False(t, stopped)
	})

	t.Run("после успешной миграции воркер останавливается", func(t *testing.T) {
		stopped := false
		w := newWorker(func() error { return nil }, time.Minute)
		w.stop = func() { stopped = true }
		w.handle(context.Background())
		require.True(t, stopped)
	})

	t.Run("отмененный контекст", func(t *testing.T) {
		calls := 0
		w := newWorker(func() error { calls++; return nil }, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w.handle(ctx)
		require.Zero(t, calls)
	})
}

func TestStartWorker(t *testing.T) {
	t.Run("БД появилась после старта сервиса", func(t *testing.T) {
		var calls int32
		migrate := func() error {
			if atomic.AddInt32(&calls, 1) < 3 {
				return errors.New("БД недоступна")
			}
			return nil
		}
		done := StartWorker(context.Background(), migrate, 5*time.Millisecond)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("воркер не остановился после успешной миграции")
		}
		require.EqualValues(t, 3, atomic.LoadInt32(&calls))
	})

	t.Run("остановка по контексту", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := StartWorker(ctx, func() error { return errors.New("БД недоступна") }, 5*time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("воркер не остановился по контексту")
		}
	})
}
