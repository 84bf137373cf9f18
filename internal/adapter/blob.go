package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
)

// NewBlobStorage builds the [BlobStorage] selected by cfg.Provider.
func NewBlobStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	switch cfg.Provider {
	case config.BlobProviderS3, "":
		return NewS3Storage(ctx, cfg, log)
	case config.BlobProviderSupabase:
		return NewSupabaseStorage(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
