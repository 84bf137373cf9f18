// Package profile resolves authenticated subjects to their profile. It is
// the only place where a subject id is mapped to a profile id.
package profile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/querykey"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/models"
	"golang.org/x/sync/singleflight"
)

// ErrNotAuthenticated is returned for requests without a subject.
var ErrNotAuthenticated = errors.New("not authenticated")

// Context holds the loaded profile of every signed-in subject.
type Context struct {
	profiles service.ProfileService
	cache    *cache.Cache

	mu          sync.RWMutex
	loaded      map[string]models.Profile
	group       singleflight.Group
	loadTimeout time.Duration
}

// Option configures a [Context].
type Option func(*Context)

// WithLoadTimeout bounds a profile load shared by concurrent requests.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Context) { c.loadTimeout = d }
}

// NewContext creates the profile context. Invalidations of a profile received
// from other instances drop it from the context, so the next request reloads it.
func NewContext(profiles service.ProfileService, c *cache.Cache, opts ...Option) *Context {
	pc := &Context{
		profiles: profiles,
		cache:    c,
		loaded:   make(map[string]models.Profile),
	}
	for _, opt := range opts {
		opt(pc)
	}
	c.OnRemoteInvalidation(pc.dropRemote)
	return pc
}

// Load returns the subject's profile, creating the default one on first use.
func (c *Context) Load(ctx context.Context, subject string) (models.Profile, error) {
	if subject == "" {
		return models.Profile{}, ErrNotAuthenticated
	}
	if p, ok := c.Current(subject); ok {
		return p, nil
	}
	return c.fetch(ctx, subject)
}

// ProfileID returns the profile id of subject.
func (c *Context) ProfileID(ctx context.Context, subject string) (string, error) {
	p, err := c.Load(ctx, subject)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Current returns the loaded profile without calling the backend.
func (c *Context) Current(subject string) (models.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.loaded[subject]
	return p, ok
}

// Refresh reloads the subject's profile and marks the cached profile query
// stale.
func (c *Context) Refresh(ctx context.Context, subject string) (models.Profile, error) {
	if subject == "" {
		return models.Profile{}, ErrNotAuthenticated
	}
	p, err := c.fetch(ctx, subject)
	if err != nil {
		return models.Profile{}, err
	}
	c.cache.Scope(p.ID).Invalidate(ctx, querykey.Profile.Current())
	return p, nil
}

// Reset forgets the subject and drops every cached query of its profile, here
// and on the other instances.
func (c *Context) Reset(ctx context.Context, subject string) {
	c.mu.Lock()
	p, ok := c.loaded[subject]
	delete(c.loaded, subject)
	c.mu.Unlock()

	if ok {
		s := c.cache.Scope(p.ID)
		s.Remove(querykey.New())
		s.Announce(ctx, querykey.New())
	}
}

func (c *Context) dropRemote(profileID string, prefix querykey.Key) {
	if !querykey.Profile.Current().Extends(prefix) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for subject, p := range c.loaded {
		if p.ID == profileID {
			delete(c.loaded, subject)
		}
	}
}

// fetch loads the profile once for all concurrent callers of subject. The load
// does not end with the caller that started it; each caller stops waiting
// when its own ctx is done.
func (c *Context) fetch(ctx context.Context, subject string) (models.Profile, error) {
	ch := c.group.DoChan(subject, func() (any, error) {
		loadCtx, cancel := c.loadContext(ctx)
		defer cancel()
		p, err := c.profiles.GetOrCreate(loadCtx, subject)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.loaded[subject] = p
		c.mu.Unlock()
		return p, nil
	})

	select {
	case <-ctx.Done():
		return models.Profile{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			logger.FromContext(ctx).Err(res.Err).Str("func", "profile.Context.fetch").Msg("error loading profile")
			return models.Profile{}, res.Err
		}
		return res.Val.(models.Profile), nil
	}
}

func (c *Context) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if c.loadTimeout > 0 {
		return context.WithTimeout(detached, c.loadTimeout)
	}
	return context.WithCancel(detached)
}
