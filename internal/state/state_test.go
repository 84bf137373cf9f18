package state

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testProfile = "p-1"

var errRemote = errors.New("remote failed")

func newTestCache() *cache.Cache {
	return cache.New(time.Minute, logger.Nop())
}

func TestRead_Error(t *testing.T) {
	s := newTestCache().Scope(testProfile)

	v := read(context.Background(), s, querykey.Weekly.All(), func(context.Context) (int, error) {
		return 0, errRemote
	})
	assert.ErrorIs(t, v.Error, errRemote)
	assert.False(t, v.Loading)
}

func TestRead_CallerContextCancelled(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := read(ctx, s, querykey.Weekly.All(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	assert.ErrorIs(t, v.Error, context.Canceled)
}

func TestRun_OptimisticRollback(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	key := querykey.Subscriptions.List()
	s.Set(key, []string{"a", "b"})
	before, _ := cache.Get[[]string](s, key)

	_, err := Run(context.Background(), s, Mutation[none]{
		Name:     "test",
		Strategy: Optimistic,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.All()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, key, func(l []string) []string { return removeWhere(l, func(v string) bool { return v == "b" }) })
			s.Set(querykey.Subscriptions.Totals(), 1)
		},
		Remote: noResult(func(context.Context) error {
			got, _ := cache.Get[[]string](s, key)
			assert.Equal(t, []string{"a"}, got)
			return errRemote
		}),
	})
	require.ErrorIs(t, err, errRemote)

	after, _ := cache.Get[[]string](s, key)
	assert.Equal(t, before, after)
	assert.Same(t, &before[0], &after[0])
	_, ok := cache.Get[int](s, querykey.Subscriptions.Totals())
	assert.False(t, ok, "entries created by the mutation are dropped")
	assert.False(t, s.IsStale(key))
}

func TestRun_OptimisticSuccessInvalidates(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	key := querykey.Subscriptions.List()
	s.Set(key, []string{"a", "b"})

	_, err := Run(context.Background(), s, Mutation[none]{
		Name:     "test",
		Strategy: Optimistic,
		Lock:     querykey.Subscriptions.All(),
		Affects:  []querykey.Key{querykey.Subscriptions.All()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, key, func(l []string) []string { return l[:1] })
		},
		Remote: noResult(func(context.Context) error { return nil }),
	})
	require.NoError(t, err)
	assert.True(t, s.IsStale(key))
}

func TestRun_DirectSplicesWithoutSnapshot(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	key := querykey.Lookups.Compounds()
	s.Set(key, []string{"a"})

	res, err := Run(context.Background(), s, Mutation[string]{
		Name:     "test",
		Strategy: Direct,
		Lock:     key,
		Remote:   func(context.Context) (string, error) { return "b", nil },
		Splice: func(s *cache.Scope, v string) {
			cache.Update(s, key, func(l []string) []string { return appendCopy(l, v) })
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "b", res)

	got, _ := cache.Get[[]string](s, key)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.False(t, s.IsStale(key))
}

func TestRun_DirectFailureLeavesCache(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	key := querykey.Lookups.Compounds()
	s.Set(key, []string{"a"})

	_, err := Run(context.Background(), s, Mutation[string]{
		Name:     "test",
		Strategy: Direct,
		Lock:     key,
		Remote:   func(context.Context) (string, error) { return "", errRemote },
		Splice:   func(*cache.Scope, string) { t.Fatal("splice after failure") },
	})
	require.ErrorIs(t, err, errRemote)
	got, _ := cache.Get[[]string](s, key)
	assert.Equal(t, []string{"a"}, got)
}

func TestRun_RollbackKeepsConcurrentSplice(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	edited := querykey.Daily.ByDate("2026-10-15")
	spliced := querykey.Daily.ByDate("2026-10-16")
	s.Set(edited, []string{"shot"})
	s.Set(spliced, []string{"oats"})

	_, err := Run(context.Background(), s, Mutation[none]{
		Name:     "injections.update",
		Strategy: Optimistic,
		Lock:     querykey.Injections.All(),
		Affects:  []querykey.Key{querykey.Daily.All()},
		Apply: func(s *cache.Scope) {
			cache.Update(s, edited, func([]string) []string { return []string{"shot (edited)"} })
		},
		Remote: noResult(func(ctx context.Context) error {
			// a mutation of another collection lands while this one is remote
			_, err := Run(ctx, s, Mutation[string]{
				Name:     "daily.addCalorie",
				Strategy: Direct,
				Lock:     spliced,
				Remote:   func(context.Context) (string, error) { return "eggs", nil },
				Splice: func(s *cache.Scope, v string) {
					cache.Update(s, spliced, func(l []string) []string { return appendCopy(l, v) })
				},
			})
			require.NoError(t, err)
			return errRemote
		}),
	})
	require.ErrorIs(t, err, errRemote)

	got, _ := cache.Get[[]string](s, edited)
	assert.Equal(t, []string{"shot"}, got)
	assert.False(t, s.IsStale(edited))

	got, _ = cache.Get[[]string](s, spliced)
	assert.Equal(t, []string{"oats", "eggs"}, got)
	assert.True(t, s.IsStale(spliced), "a key written by someone else is reloaded, not restored")
}

func TestRun_DirectAnnouncesSplicedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock.NewMockBus(ctrl)
	s := cache.New(time.Minute, logger.Nop(), cache.WithBus(bus, "instance-a")).Scope(testProfile)
	key := querykey.Lookups.Compounds()
	s.Set(key, []string{"a"})

	bus.EXPECT().Publish(gomock.Any(), cache.Message{
		Origin:    "instance-a",
		ProfileID: testProfile,
		Prefix:    key,
	}).Return(nil)

	_, err := Run(context.Background(), s, Mutation[string]{
		Name:     "test",
		Strategy: Direct,
		Lock:     key,
		Remote:   func(context.Context) (string, error) { return "b", nil },
		Splice: func(s *cache.Scope, v string) {
			cache.Update(s, key, func(l []string) []string { return appendCopy(l, v) })
			// absent keys are not touched and not announced
			cache.Update(s, querykey.Lookups.FoodTemplates(), func(l []string) []string { return l })
		},
	})
	require.NoError(t, err)
	assert.False(t, s.IsStale(key))
}

func TestRun_SerializesSameCollection(t *testing.T) {
	s := newTestCache().Scope(testProfile)
	var active, maxActive int32

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = Run(context.Background(), s, Mutation[none]{
				Name:     "test",
				Strategy: Optimistic,
				Lock:     querykey.WinnersBible.All(),
				Remote: noResult(func(context.Context) error {
					n := atomic.AddInt32(&active, 1)
					for {
						m := atomic.LoadInt32(&maxActive)
						if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				}),
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxActive)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "optimistic", Optimistic.String())
	assert.Equal(t, "direct", Direct.String())
	assert.Equal(t, "Strategy(7)", Strategy(7).String())
}
