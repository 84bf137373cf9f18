// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the object store abstraction used for Winners
// Bible images.
//
// The primary abstraction is [BlobStorage], which decouples the service layer
// from the concrete store. Two implementations ship: an S3-compatible store
// built on aws-sdk-go-v2 ([NewS3Storage]) and Supabase Storage over its REST
// API ([NewSupabaseStorage]). [NewBlobStorage] picks one from configuration.
//
// Error values defined in errors.go are mapped from transport responses so
// that callers can use [errors.Is] regardless of the backing store
// (e.g. [ErrBlobExists] when an upload would overwrite an object).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_storage_mock.go -package=mock

// BlobStorage stores binary objects under bucket-relative paths.
type BlobStorage interface {
	// Upload stores data at path. Existing objects are never overwritten:
	// the call fails with [ErrBlobExists] instead.
	Upload(ctx context.Context, path, contentType string, data []byte) error

	// Delete removes the object at path. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, path string) error

	// PublicURL returns the address the UI loads the object from.
	PublicURL(path string) string
}
