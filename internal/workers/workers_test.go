// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker records how many times Run was called.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(context.Context) {
	w.runs.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}
	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	c := cache.New(time.Minute, logger.Nop())

	ws, err := NewWorkers(c, config.Workers{CacheSweepSchedule: "@every 5m"}, config.Cache{MaxAge: time.Hour}, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, ws.workers, 2)

	ws, err = NewWorkers(c, config.Workers{}, config.Cache{MaxAge: time.Hour}, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, ws.workers, 1, "sweeper is disabled without a schedule")

	_, err = NewWorkers(c, config.Workers{CacheSweepSchedule: "every day"}, config.Cache{MaxAge: time.Hour}, logger.Nop())
	assert.Error(t, err)
}

// ── Cache sweeper ──────────────────────────────────────────────────────────

func TestCacheSweeper_Sweep(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	c := cache.New(time.Minute, logger.Nop(), cache.WithClock(func() time.Time { return now }))

	c.Scope("p-1").Set(querykey.Subscriptions.List(), []string{"old"})
	now = now.Add(2 * time.Hour)
	c.Scope("p-1").Set(querykey.Settings.Current(), "fresh")

	s, err := newCacheSweeper(c, "@every 1h", time.Hour, logger.Nop())
	require.NoError(t, err)
	s.sweep()

	assert.Equal(t, 1, c.Len())
}

func TestCacheSweeper_StopsWithContext(t *testing.T) {
	c := cache.New(time.Minute, logger.Nop())
	s, err := newCacheSweeper(c, "@every 1h", time.Hour, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s.Run(ctx)
	require.Len(t, s.cron.Entries(), 1)
	cancel()
}

// ── Bus listener ───────────────────────────────────────────────────────────

func TestBusListener_ResubscribesAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBus(ctrl)
	c := cache.New(time.Minute, logger.Nop(), cache.WithBus(bus, "instance-a"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	bus.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ func(cache.Message)) error {
			if calls.Add(1) == 1 {
				return errors.New("connection reset")
			}
			<-ctx.Done()
			return nil
		}).Times(2)

	l := newBusListener(c, logger.Nop())
	l.retryDelay = time.Millisecond
	done := make(chan struct{})
	go func() {
		l.listen(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestBusListener_AppliesRemoteInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBus(ctrl)
	c := cache.New(time.Minute, logger.Nop(), cache.WithBus(bus, "instance-a"))
	c.Scope("p-1").Set(querykey.Subscriptions.List(), []string{"gym"})

	bus.EXPECT().Subscribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, handler func(cache.Message)) error {
			handler(cache.Message{Origin: "instance-a", ProfileID: "p-1", Prefix: querykey.Subscriptions.All()})
			assert.False(t, c.Scope("p-1").IsStale(querykey.Subscriptions.List()), "own messages are ignored")

			handler(cache.Message{Origin: "instance-b", ProfileID: "p-1", Prefix: querykey.Subscriptions.All()})
			return nil
		})

	newBusListener(c, logger.Nop()).listen(context.Background())

	assert.True(t, c.Scope("p-1").IsStale(querykey.Subscriptions.List()))
}
