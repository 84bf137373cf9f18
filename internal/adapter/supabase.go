package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

type supabaseStorage struct {
	client *utils.HTTPClient

	baseURL       string
	bucket        string
	publicBaseURL string

	logger *logger.Logger
}

// NewSupabaseStorage constructs a [BlobStorage] backed by the Supabase Storage
// REST API. The service key is sent both as the apikey header and as the
// bearer token of every request.
//
// Returns an error if cfg.SupabaseURL is empty or cannot be parsed.
func NewSupabaseStorage(cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	baseURL, err := normalizeBaseURL(cfg.SupabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}

	client := utils.NewHTTPClientWithTimeout(cfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("apikey", cfg.SupabaseServiceKey).
		SetAuthToken(cfg.SupabaseServiceKey)

	publicBase := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = baseURL + "/storage/v1/object/public/" + cfg.Bucket
	}

	return &supabaseStorage{
		client:        client,
		baseURL:       baseURL,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBase,
		logger:        log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (s *supabaseStorage) objectPath(path string) string {
	return "/storage/v1/object/" + s.bucket + "/" + strings.TrimLeft(path, "/")
}

// Upload implements [BlobStorage]. It POSTs the bytes with x-upsert disabled so
// an existing object is reported as [ErrBlobExists].
func (s *supabaseStorage) Upload(ctx context.Context, path, contentType string, data []byte) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(data).
		Post(s.objectPath(path))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "supabaseStorage.Upload").Str("path", path).Msg("upload request failed")
		return fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			return fmt.Errorf("%w: %w", ErrBlobExists, err)
		}
		return err
	}
	return nil
}

// Delete implements [BlobStorage].
func (s *supabaseStorage) Delete(ctx context.Context, path string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Delete(s.objectPath(path))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// PublicURL implements [BlobStorage].
func (s *supabaseStorage) PublicURL(path string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}
