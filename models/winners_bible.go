package models

import (
	"cmp"
	"slices"
	"time"
)

// WinnersBibleImage is the metadata row of a motivational image. The binary
// lives in the object store under StoragePath.
type WinnersBibleImage struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	Name         string    `json:"name"`
	StoragePath  string    `json:"storage_path"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	DisplayOrder int       `json:"display_order"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ImageUpload is an image payload received from the client.
type ImageUpload struct {
	Name     string `validate:"required,max=256"`
	MimeType string `validate:"required,startswith=image/"`
	Data     []byte `validate:"required"`
}

// ReorderImages returns a copy of images with DisplayOrder set to each listed
// id's index, sorted the way the image list is read back: by display order,
// then by creation time. Images not listed keep their display order.
func ReorderImages(images []WinnersBibleImage, ids []string) []WinnersBibleImage {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	out := make([]WinnersBibleImage, len(images))
	for i, img := range images {
		if p, ok := pos[img.ID]; ok {
			img.DisplayOrder = p
		}
		out[i] = img
	}
	slices.SortStableFunc(out, func(a, b WinnersBibleImage) int {
		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}
