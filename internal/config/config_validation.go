// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if err := cfg.Storage.Blob.validate(); err != nil {
		return err
	}

	if cfg.Auth.SupabaseJWTSecret == "" && cfg.Auth.JWKSURL == "" {
		return fmt.Errorf("%w: neither JWT secret nor JWKS URL is set", ErrInvalidAuthConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0 {
		return fmt.Errorf("%w: rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Cache.TTL <= 0 || cfg.Cache.LoadTimeout < 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.CacheSweepSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Workers.CacheSweepSchedule); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWorkerConfigs, err)
		}
	}

	return nil
}

func (b Blob) validate() error {
	if b.Bucket == "" {
		return fmt.Errorf("%w: empty blob bucket", ErrInvalidStorageConfigs)
	}

	switch b.Provider {
	case BlobProviderS3:
		if b.Region == "" {
			return fmt.Errorf("%w: s3 region is required", ErrInvalidStorageConfigs)
		}
	case BlobProviderSupabase:
		if b.SupabaseURL == "" || b.SupabaseServiceKey == "" {
			return fmt.Errorf("%w: supabase url and service key are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown blob provider %q", ErrInvalidStorageConfigs, b.Provider)
	}

	return nil
}
