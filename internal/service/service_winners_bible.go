// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

// blobCleanupAttempts bounds the compensating blob delete after a failed
// metadata insert. Deleting a missing object succeeds, so retrying is safe.
const blobCleanupAttempts = 2

type idGenerator interface {
	Generate() string
}

type winnersBibleService struct {
	// images stores the metadata rows.
	images store.ImageRepository

	// blobs stores the image binaries.
	blobs adapter.BlobStorage

	// ids generates the row id up front so the storage path can embed it.
	ids idGenerator

	validator validators.Validator
	logger    *logger.Logger
}

func NewWinnersBibleService(images store.ImageRepository, blobs adapter.BlobStorage, ids idGenerator, validator validators.Validator, logger *logger.Logger) WinnersBibleService {
	return &winnersBibleService{
		images:    images,
		blobs:     blobs,
		ids:       ids,
		validator: validator,
		logger:    logger,
	}
}

func (w *winnersBibleService) List(ctx context.Context, profileID string) ([]models.WinnersBibleImage, error) {
	images, err := w.images.List(ctx, profileID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	for i := range images {
		images[i].URL = w.blobs.PublicURL(images[i].StoragePath)
	}
	return images, nil
}

// Upload stores the binary first and the metadata row second. When the row
// cannot be written the binary is removed again and the row error returned.
func (w *winnersBibleService) Upload(ctx context.Context, profileID string, upload models.ImageUpload) (models.WinnersBibleImage, error) {
	if err := w.validator.Validate(ctx, upload); err != nil {
		return models.WinnersBibleImage{}, mapValidationError(err)
	}

	id := w.ids.Generate()
	storagePath := StoragePath(profileID, id, upload.Name, upload.MimeType)
	log := logger.FromContext(ctx).With().Str("func", "winnersBibleService.Upload").Str("storage_path", storagePath).Logger()

	if err := w.blobs.Upload(ctx, storagePath, upload.MimeType, upload.Data); err != nil {
		log.Err(err).Msg("error uploading image binary")
		return models.WinnersBibleImage{}, mapBlobError(err)
	}

	img, err := w.images.Create(ctx, models.WinnersBibleImage{
		ID:          id,
		ProfileID:   profileID,
		Name:        upload.Name,
		StoragePath: storagePath,
		MimeType:    upload.MimeType,
		SizeBytes:   int64(len(upload.Data)),
	})
	if err != nil {
		log.Err(err).Msg("error saving image metadata, removing uploaded binary")
		w.removeBlob(context.WithoutCancel(ctx), storagePath)
		return models.WinnersBibleImage{}, mapStoreError(err)
	}

	img.URL = w.blobs.PublicURL(img.StoragePath)
	return img, nil
}

// Delete removes the metadata row. A failure to remove the binary afterwards
// only leaves an orphaned object and is logged.
func (w *winnersBibleService) Delete(ctx context.Context, profileID, id string) error {
	img, err := w.images.Delete(ctx, profileID, id)
	if err != nil {
		return mapStoreError(err)
	}

	w.removeBlob(ctx, img.StoragePath)
	return nil
}

func (w *winnersBibleService) Reorder(ctx context.Context, profileID string, ids []string) error {
	if err := validators.ValidateIDs(ids); err != nil {
		return mapValidationError(err)
	}
	if err := w.images.Reorder(ctx, profileID, ids); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "winnersBibleService.Reorder").Int("count", len(ids)).Msg("error reordering images")
		return mapStoreError(err)
	}
	return nil
}

func (w *winnersBibleService) PublicURL(storagePath string) string {
	return w.blobs.PublicURL(storagePath)
}

func (w *winnersBibleService) removeBlob(ctx context.Context, storagePath string) {
	var err error
	for range blobCleanupAttempts {
		if err = w.blobs.Delete(ctx, storagePath); err == nil {
			return
		}
	}
	logger.FromContext(ctx).Warn().Err(err).Str("storage_path", storagePath).Msg("image binary left orphaned")
}

// StoragePath returns "<profileID>/<id><ext>". The extension comes from the
// file name, falling back to the image subtype of mimeType.
func StoragePath(profileID, id, name, mimeType string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		if sub, ok := strings.CutPrefix(mimeType, "image/"); ok && sub != "" {
			ext = "." + strings.ToLower(sub)
		}
	}
	return profileID + "/" + id + ext
}
