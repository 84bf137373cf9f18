// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache is the query cache shared by the state adapters.
//
// Entries are indexed by [querykey.Key] inside a per-profile [Scope], so keys
// of different users never collide. Invalidating a key marks every entry whose
// key extends it as stale; the next [Fetch] reloads it.
//
// Concurrent loads of the same key are collapsed into one. Every write to a
// key (Set, Update, Invalidate, Remove, Restore) bumps its version, and a load
// that started before such a write returns its result to the caller without
// storing it, so a late response never overwrites newer state.
//
// Cached values are shared between readers and must be treated as immutable:
// replace them with [Set] or [Update] instead of modifying them in place.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/metrics"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch is returned when a cached value has a different type than
// the caller asked for.
var ErrTypeMismatch = errors.New("cached value has unexpected type")

const scopeSegment = "scope"

type entry struct {
	key     querykey.Key
	value   any
	updated time.Time
	stale   bool
}

// Cache holds cached result sets of every profile.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	versions map[string]uint64
	inflight map[string]querykey.Key
	seq      uint64

	ttl         time.Duration
	loadTimeout time.Duration
	now         func() time.Time
	group       singleflight.Group
	locks       *keyedMutex

	bus         Bus
	origin      string
	remoteHooks []func(profileID string, prefix querykey.Key)
	logger      *logger.Logger
}

// Option configures a [Cache].
type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLoadTimeout bounds every shared load. Loads are detached from the
// cancellation of the caller that started them, so without a bound a stuck
// backend call would only end when the backend gives up.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Cache) { c.loadTimeout = d }
}

// WithBus publishes every invalidation on bus so that other instances can
// drop their copies. origin identifies this instance on the bus.
func WithBus(bus Bus, origin string) Option {
	return func(c *Cache) {
		c.bus = bus
		c.origin = origin
	}
}

// New creates a cache whose entries are fresh for ttl after being stored.
// A zero ttl keeps entries fresh until invalidated.
func New(ttl time.Duration, log *logger.Logger, opts ...Option) *Cache {
	c := &Cache{
		entries:  make(map[string]*entry),
		versions: make(map[string]uint64),
		inflight: make(map[string]querykey.Key),
		ttl:      ttl,
		now:      time.Now,
		locks:    newKeyedMutex(),
		logger:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scope returns the namespace of one profile.
func (c *Cache) Scope(profileID string) *Scope {
	return &Scope{cache: c, profileID: profileID, prefix: querykey.New(scopeSegment, profileID)}
}

// Len returns the number of entries across all scopes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep deletes entries stored more than maxAge ago and returns how many were
// removed.
func (c *Cache) Sweep(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-maxAge)
	removed := 0
	for k, e := range c.entries {
		if e.updated.Before(cutoff) {
			delete(c.entries, k)
			c.bumpLocked(k)
			removed++
		}
	}
	// versions of keys without entries or loads are no longer needed
	for k := range c.versions {
		if _, ok := c.entries[k]; ok {
			continue
		}
		if _, ok := c.inflight[k]; ok {
			continue
		}
		delete(c.versions, k)
	}

	metrics.RecordCacheEvent(metrics.CacheSweep, removed)
	metrics.SetCacheEntries(len(c.entries))
	return removed
}

func (c *Cache) bumpLocked(k string) {
	c.seq++
	c.versions[k] = c.seq
}

// invalidateLocal marks every entry and in-flight load extending prefix stale.
func (c *Cache) invalidateLocal(prefix querykey.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if e.key.Extends(prefix) {
			e.stale = true
			c.bumpLocked(k)
			n++
		}
	}
	for k, key := range c.inflight {
		if key.Extends(prefix) {
			c.bumpLocked(k)
		}
	}
	metrics.RecordCacheEvent(metrics.CacheInvalidation, n)
	return n
}

func (c *Cache) publish(ctx context.Context, profileID string, prefix querykey.Key) {
	if c.bus == nil {
		return
	}
	msg := Message{Origin: c.origin, ProfileID: profileID, Prefix: prefix}
	if err := c.bus.Publish(ctx, msg); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Cache.publish").
			Str("prefix", prefix.String()).
			Msg("failed to publish cache invalidation")
	}
}

// Listen applies invalidations published by other instances until ctx is
// done. It returns immediately when no bus is configured.
func (c *Cache) Listen(ctx context.Context) error {
	if c.bus == nil {
		return nil
	}
	return c.bus.Subscribe(ctx, func(msg Message) {
		if msg.Origin == c.origin {
			return
		}
		n := c.Scope(msg.ProfileID).invalidate(msg.Prefix)
		c.mu.Lock()
		hooks := c.remoteHooks
		c.mu.Unlock()
		for _, hook := range hooks {
			hook(msg.ProfileID, msg.Prefix)
		}
		c.logger.Debug().
			Str("func", "Cache.Listen").
			Str("origin", msg.Origin).
			Str("prefix", msg.Prefix.String()).
			Int("invalidated", n).
			Msg("applied remote cache invalidation")
	})
}

// OnRemoteInvalidation registers fn to run after an invalidation received
// from another instance has been applied.
func (c *Cache) OnRemoteInvalidation(fn func(profileID string, prefix querykey.Key)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remoteHooks = append(c.remoteHooks, fn)
}

// Scope is the cache namespace of one profile. Keys passed to its methods are
// relative to the scope.
type Scope struct {
	cache     *Cache
	profileID string
	prefix    querykey.Key

	touched *[]querykey.Key
}

// ProfileID returns the profile the scope belongs to.
func (s *Scope) ProfileID() string { return s.profileID }

// Tracked returns a view of the scope that records every key written
// through it. See [Scope.Touched].
func (s *Scope) Tracked() *Scope {
	return &Scope{cache: s.cache, profileID: s.profileID, prefix: s.prefix, touched: new([]querykey.Key)}
}

// Touched returns the keys written through a tracked scope, in write order.
func (s *Scope) Touched() []querykey.Key {
	if s.touched == nil {
		return nil
	}
	return *s.touched
}

func (s *Scope) touch(key querykey.Key) {
	if s.touched != nil {
		*s.touched = append(*s.touched, key)
	}
}

func (s *Scope) full(key querykey.Key) (querykey.Key, string) {
	k := s.prefix.Append(key...)
	return k, k.String()
}

// Fetch returns the cached value of key when it is fresh, otherwise runs
// loader and caches its result. Concurrent fetches of one key share a single
// loader call that is not cancelled with any single caller; each caller stops
// waiting when its own ctx is done.
func Fetch[T any](ctx context.Context, s *Scope, key querykey.Key, loader func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	c := s.cache
	full, k := s.full(key)

	c.mu.Lock()
	if e, ok := c.entries[k]; ok && !e.stale && !c.expiredLocked(e) {
		c.mu.Unlock()
		metrics.RecordCacheEvent(metrics.CacheHit, 1)
		v, ok := e.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, k, e.value)
		}
		return v, nil
	}
	c.mu.Unlock()
	metrics.RecordCacheEvent(metrics.CacheMiss, 1)

	ch := c.group.DoChan(k, func() (any, error) {
		c.mu.Lock()
		if e, ok := c.entries[k]; ok && !e.stale && !c.expiredLocked(e) {
			c.mu.Unlock()
			return e.value, nil
		}
		c.inflight[k] = full
		started := c.versions[k]
		c.mu.Unlock()

		loadCtx, cancel := c.loadContext(ctx)
		defer cancel()
		v, err := loader(loadCtx)

		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.inflight, k)
		if err != nil {
			return nil, err
		}
		if c.versions[k] != started {
			metrics.RecordCacheEvent(metrics.CacheStaleLoad, 1)
			c.logger.Debug().Str("func", "cache.Fetch").Str("key", k).Msg("discarding load started before a newer write")
			return v, nil
		}
		c.entries[k] = &entry{key: full, value: v, updated: c.now()}
		c.bumpLocked(k)
		metrics.SetCacheEntries(len(c.entries))
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %s loaded %T", ErrTypeMismatch, k, res.Val)
		}
		return v, nil
	}
}

// loadContext keeps the values of ctx, such as the request logger, but not
// its cancellation: other callers may be waiting on the same load.
func (c *Cache) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if c.loadTimeout > 0 {
		return context.WithTimeout(detached, c.loadTimeout)
	}
	return context.WithCancel(detached)
}

func (c *Cache) expiredLocked(e *entry) bool {
	return c.ttl > 0 && c.now().Sub(e.updated) > c.ttl
}

// Get returns the cached value of key, fresh or stale. ok is false when the
// key is absent or holds a value of another type.
func Get[T any](s *Scope, key querykey.Key) (T, bool) {
	var zero T
	_, k := s.full(key)

	s.cache.mu.Lock()
	e, ok := s.cache.entries[k]
	s.cache.mu.Unlock()
	if !ok {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}

// Set stores value under key as fresh.
func (s *Scope) Set(key querykey.Key, value any) {
	c := s.cache
	full, k := s.full(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = &entry{key: full, value: value, updated: c.now()}
	c.bumpLocked(k)
	metrics.SetCacheEntries(len(c.entries))
	s.touch(key)
}

// Update replaces the cached value of key with fn(old). It does nothing and
// returns false when the key is absent or holds a value of another type.
// The freshness of the entry is kept.
func Update[T any](s *Scope, key querykey.Key, fn func(T) T) bool {
	c := s.cache
	_, k := s.full(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[k]
	if !ok {
		return false
	}
	old, ok := e.value.(T)
	if !ok {
		return false
	}
	c.entries[k] = &entry{key: e.key, value: fn(old), updated: e.updated, stale: e.stale}
	c.bumpLocked(k)
	s.touch(key)
	return true
}

// UpdateAll applies fn to every cached value of type T under prefix and
// returns how many entries were rewritten.
func UpdateAll[T any](s *Scope, prefix querykey.Key, fn func(key querykey.Key, old T) T) int {
	c := s.cache
	full, _ := s.full(prefix)

	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if !e.key.Extends(full) {
			continue
		}
		old, ok := e.value.(T)
		if !ok {
			continue
		}
		rel := querykey.New(e.key[len(s.prefix):]...)
		c.entries[k] = &entry{key: e.key, value: fn(rel, old), updated: e.updated, stale: e.stale}
		c.bumpLocked(k)
		n++
	}
	if n > 0 {
		s.touch(prefix)
	}
	return n
}

// Invalidate marks every entry whose key extends prefix as stale and returns
// how many were marked. Loads in flight under prefix will not be stored.
// The invalidation is published to other instances when a bus is configured.
func (s *Scope) Invalidate(ctx context.Context, prefix querykey.Key) int {
	n := s.invalidate(prefix)
	s.cache.publish(ctx, s.profileID, prefix)
	return n
}

// Announce publishes an invalidation of prefix to other instances without
// touching the local copy. It is a no-op without a bus.
func (s *Scope) Announce(ctx context.Context, prefix querykey.Key) {
	s.cache.publish(ctx, s.profileID, prefix)
}

func (s *Scope) invalidate(prefix querykey.Key) int {
	full, _ := s.full(prefix)
	return s.cache.invalidateLocal(full)
}

// IsStale reports whether key is cached and marked stale.
func (s *Scope) IsStale(key querykey.Key) bool {
	_, k := s.full(key)
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	e, ok := s.cache.entries[k]
	return ok && e.stale
}

// Remove deletes every entry whose key extends prefix.
func (s *Scope) Remove(prefix querykey.Key) int {
	c := s.cache
	full, _ := s.full(prefix)

	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if e.key.Extends(full) {
			delete(c.entries, k)
			c.bumpLocked(k)
			n++
		}
	}
	for k, key := range c.inflight {
		if key.Extends(full) {
			c.bumpLocked(k)
		}
	}
	metrics.SetCacheEntries(len(c.entries))
	if n > 0 {
		s.touch(prefix)
	}
	return n
}

// InFlight reports whether a load of key is running.
func (s *Scope) InFlight(key querykey.Key) bool {
	_, k := s.full(key)
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	_, ok := s.cache.inflight[k]
	return ok
}

// Lock serializes mutations of key within the process. The returned function
// releases the lock.
func (s *Scope) Lock(key querykey.Key) func() {
	_, k := s.full(key)
	return s.cache.locks.lock(k)
}

// Snapshot is a verbatim copy of every entry under a set of prefixes.
type Snapshot struct {
	scope    *Scope
	prefixes []querykey.Key
	entries  map[string]entry

	sealed   bool
	sealedAt uint64
}

// Snapshot captures every entry whose key extends one of prefixes.
func (s *Scope) Snapshot(prefixes ...querykey.Key) *Snapshot {
	c := s.cache
	snap := &Snapshot{scope: s, entries: make(map[string]entry)}
	for _, p := range prefixes {
		full, _ := s.full(p)
		snap.prefixes = append(snap.prefixes, full)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if snap.covers(e.key) {
			snap.entries[k] = *e
		}
	}
	return snap
}

func (snap *Snapshot) covers(key querykey.Key) bool {
	for _, p := range snap.prefixes {
		if key.Extends(p) {
			return true
		}
	}
	return false
}

// Seal ends the writes owned by the snapshot taker. Keys written by anyone
// else after Seal are not put back by [Scope.Restore]; they are marked stale.
func (snap *Snapshot) Seal() {
	c := snap.scope.cache
	c.mu.Lock()
	defer c.mu.Unlock()
	snap.sealed = true
	snap.sealedAt = c.seq
}

func (snap *Snapshot) foreignLocked(k string) bool {
	return snap.sealed && snap.scope.cache.versions[k] > snap.sealedAt
}

// Restore puts the cache back to the snapshot: captured entries regain their
// value, age and staleness; entries created under the prefixes since the
// snapshot are removed. On a sealed snapshot, keys written by others since
// Seal are marked stale instead. Restore returns how many keys were left
// stale that way.
func (s *Scope) Restore(snap *Snapshot) int {
	if snap == nil {
		return 0
	}
	c := s.cache

	c.mu.Lock()
	defer c.mu.Unlock()
	conflicts := 0
	for k, e := range c.entries {
		if _, ok := snap.entries[k]; ok || !snap.covers(e.key) {
			continue
		}
		if snap.foreignLocked(k) {
			e.stale = true
			conflicts++
		} else {
			delete(c.entries, k)
		}
		c.bumpLocked(k)
	}
	for k, e := range snap.entries {
		if snap.foreignLocked(k) {
			if cur, ok := c.entries[k]; ok {
				cur.stale = true
				c.bumpLocked(k)
			}
			conflicts++
			continue
		}
		restored := e
		c.entries[k] = &restored
		c.bumpLocked(k)
	}
	for k, key := range c.inflight {
		if snap.covers(key) {
			c.bumpLocked(k)
		}
	}
	metrics.RecordCacheEvent(metrics.CacheRollback, 1)
	metrics.SetCacheEntries(len(c.entries))
	return conflicts
}
