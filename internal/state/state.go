// Package state derives what the presentation layer shows from the query
// cache and runs every mutation through one of two declared strategies.
//
// Optimistic mutations change an existing cached row. The affected keys are
// snapshotted, the expected result is written to the cache, and the remote
// call runs. On success the affected keys are invalidated so the next read
// confirms the write; on failure the snapshot is restored verbatim, except
// for keys another mutation wrote meanwhile, which are marked stale.
//
// Direct mutations create rows whose ids the backend assigns. The remote
// call runs first and the returned row is spliced into the cached lists
// without a refetch. Lists that cannot be spliced exactly are invalidated.
// Spliced keys are announced to other instances, which drop their copies.
//
// Every mutation holds the lock of its collection key for its whole
// duration, so two mutations of one collection never interleave.
package state

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
)

// View is the result of a read: the data, whether a load of it is still
// running and the error of the last load.
type View[T any] struct {
	Data    T
	Loading bool
	Error   error
}

// read fetches key through the cache. When ctx ends before the load, the
// view reports the load as still running.
func read[T any](ctx context.Context, s *cache.Scope, key querykey.Key, loader func(context.Context) (T, error)) View[T] {
	v, err := cache.Fetch(ctx, s, key, loader)
	if err != nil {
		return View[T]{Data: v, Loading: s.InFlight(key), Error: err}
	}
	return View[T]{Data: v}
}

// Strategy is how a mutation reaches the cache.
type Strategy int

const (
	Optimistic Strategy = iota
	Direct
)

func (s Strategy) String() string {
	switch s {
	case Optimistic:
		return "optimistic"
	case Direct:
		return "direct"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Mutation declares one write.
type Mutation[R any] struct {
	// Name identifies the mutation in logs.
	Name string

	Strategy Strategy

	// Lock is the collection key serializing mutations.
	Lock querykey.Key

	// Affects are the prefixes an optimistic mutation snapshots, and every
	// mutation invalidates after the remote call succeeds.
	Affects []querykey.Key

	// Apply writes the expected result into the cache before the remote call.
	// Optimistic only.
	Apply func(s *cache.Scope)

	// Remote performs the write against the backend.
	Remote func(ctx context.Context) (R, error)

	// Splice writes the remote result into the cache. Direct only.
	Splice func(s *cache.Scope, result R)
}

// Run executes m in scope s.
func Run[R any](ctx context.Context, s *cache.Scope, m Mutation[R]) (R, error) {
	unlock := s.Lock(m.Lock)
	defer unlock()

	log := logger.FromContext(ctx).With().
		Str("mutation", m.Name).
		Str("strategy", m.Strategy.String()).
		Logger()

	var snap *cache.Snapshot
	if m.Strategy == Optimistic {
		snap = s.Snapshot(m.Affects...)
		if m.Apply != nil {
			m.Apply(s)
		}
		snap.Seal()
	}

	res, err := m.Remote(ctx)
	if err != nil {
		if snap != nil {
			conflicts := s.Restore(snap)
			log.Warn().Err(err).Int("conflicts", conflicts).Msg("mutation failed, cache rolled back")
		}
		return res, err
	}

	if m.Strategy == Direct && m.Splice != nil {
		tracked := s.Tracked()
		m.Splice(tracked, res)
		for _, k := range tracked.Touched() {
			s.Announce(ctx, k)
		}
	}
	for _, p := range m.Affects {
		s.Invalidate(ctx, p)
	}
	log.Debug().Msg("mutation applied")
	return res, nil
}

// none is the result of mutations that return nothing.
type none struct{}

func noResult(fn func(ctx context.Context) error) func(ctx context.Context) (none, error) {
	return func(ctx context.Context) (none, error) {
		return none{}, fn(ctx)
	}
}

// ── Slice helpers ──────────────────────────────────────────────────────────
// Cached slices are shared, so every helper returns a new slice.

func replaceWhere[T any](list []T, match func(T) bool, fn func(T) T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		if match(v) {
			v = fn(v)
		}
		out[i] = v
	}
	return out
}

func removeWhere[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}

func appendCopy[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}
