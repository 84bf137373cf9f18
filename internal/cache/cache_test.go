package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(opts ...Option) *Cache {
	return New(time.Minute, logger.Nop(), opts...)
}

func constLoader[T any](v T, calls *int32) func(context.Context) (T, error) {
	return func(context.Context) (T, error) {
		atomic.AddInt32(calls, 1)
		return v, nil
	}
}

func TestFetch_CachesFreshValue(t *testing.T) {
	s := newTestCache().Scope("p1")
	var calls int32

	v, err := Fetch(context.Background(), s, querykey.Profile.Current(), constLoader("row", &calls))
	require.NoError(t, err)
	assert.Equal(t, "row", v)

	v, err = Fetch(context.Background(), s, querykey.Profile.Current(), constLoader("other", &calls))
	require.NoError(t, err)
	assert.Equal(t, "row", v)
	assert.Equal(t, int32(1), calls)
}

func TestFetch_LoaderErrorIsNotCached(t *testing.T) {
	s := newTestCache().Scope("p1")
	boom := errors.New("boom")

	_, err := Fetch(context.Background(), s, querykey.Weekly.All(), func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	_, ok := Get[int](s, querykey.Weekly.All())
	assert.False(t, ok)
}

func TestFetch_TypeMismatch(t *testing.T) {
	s := newTestCache().Scope("p1")
	s.Set(querykey.Weekly.All(), "text")

	_, err := Fetch(context.Background(), s, querykey.Weekly.All(), func(context.Context) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestFetch_CollapsesConcurrentLoads(t *testing.T) {
	s := newTestCache().Scope("p1")
	key := querykey.Subscriptions.List()
	release := make(chan struct{})
	var calls int32

	loader := func(context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"a"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Fetch(context.Background(), s, key, loader)
			assert.NoError(t, err)
			assert.Equal(t, []string{"a"}, v)
		}()
	}

	require.Eventually(t, func() bool { return s.InFlight(key) }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.False(t, s.InFlight(key))
}

func TestFetch_DiscardsLoadOverwrittenBySet(t *testing.T) {
	s := newTestCache().Scope("p1")
	key := querykey.Daily.ByDate("2024-01-01")
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan string)
	go func() {
		v, _ := Fetch(context.Background(), s, key, func(context.Context) (string, error) {
			close(started)
			<-release
			return "old", nil
		})
		done <- v
	}()

	<-started
	s.Set(key, "new")
	close(release)

	assert.Equal(t, "old", <-done)
	v, ok := Get[string](s, key)
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestFetch_DiscardsLoadInvalidatedInFlight(t *testing.T) {
	s := newTestCache().Scope("p1")
	key := querykey.Daily.Sub("2024-01-01", querykey.SubCalories)
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Fetch(context.Background(), s, key, func(context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	s.Invalidate(context.Background(), querykey.Daily.All())
	close(release)
	<-done

	_, ok := Get[int](s, key)
	assert.False(t, ok)
}

func TestFetch_CallerContextCancelled(t *testing.T) {
	s := newTestCache().Scope("p1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	_, err := Fetch(ctx, s, querykey.Weekly.All(), func(context.Context) (int, error) {
		<-release
		return 0, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetch_SharedLoadOutlivesFirstCaller(t *testing.T) {
	s := newTestCache().Scope("p1")
	key := querykey.Weekly.All()
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) (int, error) {
		close(started)
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-release:
			return 7, nil
		}
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := Fetch(firstCtx, s, key, loader)
		firstErr <- err
	}()
	<-started

	type result struct {
		v   int
		err error
	}
	second := make(chan result, 1)
	go func() {
		v, err := Fetch(context.Background(), s, key, func(context.Context) (int, error) {
			return 0, errors.New("second loader must not run")
		})
		second <- result{v, err}
	}()
	time.Sleep(10 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)

	got := <-second
	require.NoError(t, got.err, "caller with a live context")
	assert.Equal(t, 7, got.v)
	v, ok := Get[int](s, key)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestFetch_LoadTimeout(t *testing.T) {
	s := newTestCache(WithLoadTimeout(10 * time.Millisecond)).Scope("p1")

	_, err := Fetch(context.Background(), s, querykey.Weekly.All(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.InFlight(querykey.Weekly.All()))
}

func TestFetch_LoaderKeepsContextValues(t *testing.T) {
	type ctxKey struct{}
	s := newTestCache().Scope("p1")
	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-1")

	v, err := Fetch(ctx, s, querykey.Weekly.All(), func(ctx context.Context) (string, error) {
		return ctx.Value(ctxKey{}).(string), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "trace-1", v)
}

func TestFetch_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	c := New(time.Minute, logger.Nop(), WithClock(func() time.Time { return now }))
	s := c.Scope("p1")
	var calls int32

	_, _ = Fetch(context.Background(), s, querykey.WinnersBible.All(), constLoader(1, &calls))
	now = now.Add(30 * time.Second)
	_, _ = Fetch(context.Background(), s, querykey.WinnersBible.All(), constLoader(2, &calls))
	assert.Equal(t, int32(1), calls)

	now = now.Add(time.Minute)
	v, _ := Fetch(context.Background(), s, querykey.WinnersBible.All(), constLoader(3, &calls))
	assert.Equal(t, int32(2), calls)
	assert.Equal(t, 3, v)
}

func TestInvalidate_PrefixScope(t *testing.T) {
	s := newTestCache().Scope("p1")
	day1 := querykey.Daily.ByDate("2024-01-01")
	day2 := querykey.Daily.ByDate("2024-01-02")
	sub1 := querykey.Daily.Sub("2024-01-01", querykey.SubMITs)
	s.Set(day1, 1)
	s.Set(day2, 2)
	s.Set(sub1, 3)
	s.Set(querykey.Weekly.All(), 4)

	assert.Equal(t, 1, s.Invalidate(context.Background(), day2))
	assert.False(t, s.IsStale(day1))
	assert.True(t, s.IsStale(day2))

	assert.Equal(t, 3, s.Invalidate(context.Background(), querykey.Daily.All()))
	assert.True(t, s.IsStale(day1))
	assert.True(t, s.IsStale(sub1))
	assert.False(t, s.IsStale(querykey.Weekly.All()))
}

func TestInvalidate_StaleEntryIsReloaded(t *testing.T) {
	s := newTestCache().Scope("p1")
	var calls int32
	key := querykey.Subscriptions.Totals()

	_, _ = Fetch(context.Background(), s, key, constLoader("v1", &calls))
	s.Invalidate(context.Background(), querykey.Subscriptions.All())

	stale, ok := Get[string](s, key)
	require.True(t, ok)
	assert.Equal(t, "v1", stale)

	v, _ := Fetch(context.Background(), s, key, constLoader("v2", &calls))
	assert.Equal(t, "v2", v)
	assert.False(t, s.IsStale(key))
}

func TestScopesAreIsolated(t *testing.T) {
	c := newTestCache()
	a, b := c.Scope("a"), c.Scope("b")
	a.Set(querykey.Profile.Current(), "A")
	b.Set(querykey.Profile.Current(), "B")

	a.Invalidate(context.Background(), querykey.Profile.Current())
	assert.True(t, a.IsStale(querykey.Profile.Current()))
	assert.False(t, b.IsStale(querykey.Profile.Current()))

	assert.Equal(t, 1, a.Remove(querykey.New()))
	v, ok := Get[string](b, querykey.Profile.Current())
	assert.True(t, ok)
	assert.Equal(t, "B", v)
}

func TestUpdate(t *testing.T) {
	s := newTestCache().Scope("p1")
	key := querykey.Daily.Sub("2024-01-01", querykey.SubCalories)

	assert.False(t, Update(s, key, func(v []int) []int { return append(v, 1) }))

	s.Set(key, []int{1})
	assert.True(t, Update(s, key, func(v []int) []int { return append([]int{0}, v...) }))
	v, _ := Get[[]int](s, key)
	assert.Equal(t, []int{0, 1}, v)

	assert.False(t, Update(s, key, func(v string) string { return v }))
}

func TestUpdateAll(t *testing.T) {
	s := newTestCache().Scope("p1")
	s.Set(querykey.Subscriptions.List(), []string{"a", "b"})
	s.Set(querykey.Subscriptions.ByCategory("c1"), []string{"b"})
	s.Set(querykey.Subscriptions.Totals(), 10)

	var seen []string
	n := UpdateAll(s, querykey.Subscriptions.All(), func(key querykey.Key, old []string) []string {
		seen = append(seen, key.String())
		out := make([]string, 0, len(old))
		for _, v := range old {
			if v != "b" {
				out = append(out, v)
			}
		}
		return out
	})

	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"subscriptions/list", "subscriptions/category/c1"}, seen)
	v, _ := Get[[]string](s, querykey.Subscriptions.ByCategory("c1"))
	assert.Empty(t, v)
}

func TestSnapshotRestore_Verbatim(t *testing.T) {
	s := newTestCache().Scope("p1")
	list := []string{"a", "b", "c"}
	s.Set(querykey.Subscriptions.List(), list)
	s.Invalidate(context.Background(), querykey.Subscriptions.Totals())
	s.Set(querykey.Weekly.All(), "untouched")

	snap := s.Snapshot(querykey.Subscriptions.All())

	s.Set(querykey.Subscriptions.List(), []string{"a", "c"})
	s.Set(querykey.Subscriptions.Totals(), 99)
	s.Set(querykey.Subscriptions.ByCategory("new"), []string{})
	s.Set(querykey.Weekly.All(), "changed")

	s.Restore(snap)

	got, ok := Get[[]string](s, querykey.Subscriptions.List())
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Same(t, &list[0], &got[0])

	_, ok = Get[[]string](s, querykey.Subscriptions.ByCategory("new"))
	assert.False(t, ok)
	_, ok = Get[int](s, querykey.Subscriptions.Totals())
	assert.False(t, ok)

	w, _ := Get[string](s, querykey.Weekly.All())
	assert.Equal(t, "changed", w)
}

func TestSnapshotRestore_KeepsStaleness(t *testing.T) {
	s := newTestCache().Scope("p1")
	s.Set(querykey.Weekly.ByWeek("2024-01-01"), 1)
	s.Invalidate(context.Background(), querykey.Weekly.All())
	snap := s.Snapshot(querykey.Weekly.All())

	s.Set(querykey.Weekly.ByWeek("2024-01-01"), 2)
	s.Restore(snap)

	assert.True(t, s.IsStale(querykey.Weekly.ByWeek("2024-01-01")))
}

func TestSnapshotRestore_SealedKeepsForeignWrites(t *testing.T) {
	s := newTestCache().Scope("p1")
	mine := querykey.Daily.ByDate("2026-10-15")
	theirs := querykey.Daily.ByDate("2026-10-16")
	s.Set(mine, "before")
	s.Set(theirs, "before")

	snap := s.Snapshot(querykey.Daily.All())
	s.Set(mine, "optimistic")
	snap.Seal()

	// another mutation splices a row while the remote call is running
	s.Set(theirs, "spliced")
	s.Set(querykey.Daily.ByDate("2026-10-17"), "loaded")

	conflicts := s.Restore(snap)

	assert.Equal(t, 2, conflicts)
	v, _ := Get[string](s, mine)
	assert.Equal(t, "before", v)
	assert.False(t, s.IsStale(mine))

	v, _ = Get[string](s, theirs)
	assert.Equal(t, "spliced", v)
	assert.True(t, s.IsStale(theirs))
	assert.True(t, s.IsStale(querykey.Daily.ByDate("2026-10-17")))
}

func TestSnapshotRestore_SealedWithoutForeignWrites(t *testing.T) {
	s := newTestCache().Scope("p1")
	s.Set(querykey.Weekly.ByWeek("2026-10-12"), 1)

	snap := s.Snapshot(querykey.Weekly.All())
	s.Set(querykey.Weekly.ByWeek("2026-10-12"), 2)
	s.Set(querykey.Weekly.ByWeek("2026-10-19"), 3)
	snap.Seal()

	assert.Zero(t, s.Restore(snap))
	v, _ := Get[int](s, querykey.Weekly.ByWeek("2026-10-12"))
	assert.Equal(t, 1, v)
	assert.False(t, s.IsStale(querykey.Weekly.ByWeek("2026-10-12")))
	_, ok := Get[int](s, querykey.Weekly.ByWeek("2026-10-19"))
	assert.False(t, ok)
}

func TestTracked_RecordsWrites(t *testing.T) {
	s := newTestCache().Scope("p1")
	s.Set(querykey.Subscriptions.List(), []string{"a"})

	tracked := s.Tracked()
	tracked.Set(querykey.Weekly.ByWeek("2026-10-12"), 1)
	Update(tracked, querykey.Subscriptions.List(), func(l []string) []string { return append([]string{}, l...) })
	Update(tracked, querykey.Subscriptions.Totals(), func(n int) int { return n })
	UpdateAll(tracked, querykey.Daily.All(), func(_ querykey.Key, n int) int { return n })
	tracked.Remove(querykey.Weekly.All())

	assert.Equal(t, []querykey.Key{
		querykey.Weekly.ByWeek("2026-10-12"),
		querykey.Subscriptions.List(),
		querykey.Weekly.All(),
	}, tracked.Touched())
	assert.Nil(t, s.Touched())
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	c := New(0, logger.Nop(), WithClock(func() time.Time { return now }))
	s := c.Scope("p1")

	s.Set(querykey.Daily.ByDate("old"), 1)
	now = now.Add(time.Hour)
	s.Set(querykey.Daily.ByDate("new"), 2)

	assert.Equal(t, 1, c.Sweep(30*time.Minute))
	assert.Equal(t, 1, c.Len())
	_, ok := Get[int](s, querykey.Daily.ByDate("new"))
	assert.True(t, ok)
}

func TestLock_SerializesSameKey(t *testing.T) {
	s := newTestCache().Scope("p1")
	key := querykey.Subscriptions.List()

	unlock := s.Lock(key)
	acquired := make(chan struct{})
	go func() {
		release := s.Lock(key)
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first is held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock not acquired after release")
	}

	// other keys are independent
	unlockA := s.Lock(querykey.Weekly.All())
	unlockB := s.Lock(querykey.Daily.All())
	unlockA()
	unlockB()
	unlockB()
}

// ── Bus ─────────────────────────────────────────────────────────────────────

type memoryBus struct {
	mu       sync.Mutex
	handlers []func(Message)
	sent     []Message
}

func (b *memoryBus) Publish(_ context.Context, msg Message) error {
	b.mu.Lock()
	b.sent = append(b.sent, msg)
	handlers := append([]func(Message){}, b.handlers...)
	b.mu.Unlock()
	for _, h := range handlers {
		h(msg)
	}
	return nil
}

func (b *memoryBus) Subscribe(ctx context.Context, handler func(Message)) error {
	b.mu.Lock()
	b.handlers = append(b.handlers, handler)
	b.mu.Unlock()
	<-ctx.Done()
	return nil
}

func (b *memoryBus) subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

func TestBus_PropagatesInvalidation(t *testing.T) {
	bus := &memoryBus{}
	first := New(time.Minute, logger.Nop(), WithBus(bus, "one"))
	second := New(time.Minute, logger.Nop(), WithBus(bus, "two"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = first.Listen(ctx) }()
	go func() { _ = second.Listen(ctx) }()
	require.Eventually(t, func() bool { return bus.subscribers() == 2 }, time.Second, time.Millisecond)

	first.Scope("p1").Set(querykey.Daily.ByDate("2024-01-01"), 1)
	second.Scope("p1").Set(querykey.Daily.ByDate("2024-01-01"), 1)
	second.Scope("p2").Set(querykey.Daily.ByDate("2024-01-01"), 1)

	first.Scope("p1").Invalidate(ctx, querykey.Daily.All())

	assert.True(t, second.Scope("p1").IsStale(querykey.Daily.ByDate("2024-01-01")))
	assert.False(t, second.Scope("p2").IsStale(querykey.Daily.ByDate("2024-01-01")))
	require.Len(t, bus.sent, 1)
	assert.Equal(t, "one", bus.sent[0].Origin)
	assert.Equal(t, querykey.Daily.All(), bus.sent[0].Prefix)
}

func TestListen_NoBus(t *testing.T) {
	assert.NoError(t, newTestCache().Listen(context.Background()))
}

func TestAnnounce_PublishesWithoutLocalInvalidation(t *testing.T) {
	bus := &memoryBus{}
	first := New(time.Minute, logger.Nop(), WithBus(bus, "one"))
	second := New(time.Minute, logger.Nop(), WithBus(bus, "two"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = second.Listen(ctx) }()
	require.Eventually(t, func() bool { return bus.subscribers() == 1 }, time.Second, time.Millisecond)

	first.Scope("p1").Set(querykey.Daily.ByDate("2026-10-16"), 2)
	second.Scope("p1").Set(querykey.Daily.ByDate("2026-10-16"), 1)

	first.Scope("p1").Announce(ctx, querykey.Daily.ByDate("2026-10-16"))

	assert.False(t, first.Scope("p1").IsStale(querykey.Daily.ByDate("2026-10-16")))
	assert.True(t, second.Scope("p1").IsStale(querykey.Daily.ByDate("2026-10-16")))
}

func TestListen_RunsRemoteHooks(t *testing.T) {
	bus := &memoryBus{}
	first := New(time.Minute, logger.Nop(), WithBus(bus, "one"))
	second := New(time.Minute, logger.Nop(), WithBus(bus, "two"))

	var mu sync.Mutex
	var seen []string
	second.OnRemoteInvalidation(func(profileID string, prefix querykey.Key) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, profileID+":"+prefix.String())
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = first.Listen(ctx) }()
	go func() { _ = second.Listen(ctx) }()
	require.Eventually(t, func() bool { return bus.subscribers() == 2 }, time.Second, time.Millisecond)

	first.Scope("p1").Invalidate(ctx, querykey.Profile.Current())
	second.Scope("p2").Invalidate(ctx, querykey.Daily.All())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"p1:" + querykey.Profile.Current().String()}, seen)
}
