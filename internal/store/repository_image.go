package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const imagesTable = "winners_bible_images"

var imageColumns = []string{
	"id", "profile_id", "name", "storage_path", "mime_type", "size_bytes", "display_order", "created_at",
}

// imageRepository is the Postgres-backed implementation of [ImageRepository].
type imageRepository struct {
	*DB
	ids idGenerator
}

func NewImageRepository(db *DB, ids idGenerator) ImageRepository {
	return &imageRepository{DB: db, ids: ids}
}

func scanImage(r rowScanner) (models.WinnersBibleImage, error) {
	var i models.WinnersBibleImage
	err := r.Scan(&i.ID, &i.ProfileID, &i.Name, &i.StoragePath, &i.MimeType, &i.SizeBytes, &i.DisplayOrder, &i.CreatedAt)
	return i, err
}

func (r *imageRepository) List(ctx context.Context, profileID string) ([]models.WinnersBibleImage, error) {
	return queryMany(ctx, r.DB, "imageRepository.List",
		psql.Select(imageColumns...).From(imagesTable).
			Where(sq.Eq{"profile_id": profileID}).
			OrderBy("display_order", "created_at"),
		scanImage)
}

func (r *imageRepository) Create(ctx context.Context, img models.WinnersBibleImage) (models.WinnersBibleImage, error) {
	if img.ID == "" {
		img.ID = r.ids.Generate()
	}
	nextOrder := sq.Expr("COALESCE((SELECT MAX(display_order) + 1 FROM winners_bible_images WHERE profile_id = ?), 0)",
		img.ProfileID)

	return queryOne(ctx, r.DB, "imageRepository.Create",
		psql.Insert(imagesTable).
			Columns("id", "profile_id", "name", "storage_path", "mime_type", "size_bytes", "display_order").
			Values(img.ID, img.ProfileID, img.Name, img.StoragePath, img.MimeType, img.SizeBytes, nextOrder).
			Suffix("RETURNING "+joinColumns(imageColumns)),
		scanImage)
}

func (r *imageRepository) Delete(ctx context.Context, profileID, id string) (models.WinnersBibleImage, error) {
	return queryOne(ctx, r.DB, "imageRepository.Delete",
		psql.Delete(imagesTable).
			Where(sq.Eq{"id": id, "profile_id": profileID}).
			Suffix("RETURNING "+joinColumns(imageColumns)),
		scanImage)
}

// Reorder rewrites display_order of every listed image in one UPDATE joined
// against a VALUES list, inside a transaction. When any id does not belong to
// the profile nothing is changed and [ErrNotFound] is returned.
func (r *imageRepository) Reorder(ctx context.Context, profileID string, ids []string) error {
	const op = "imageRepository.Reorder"
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args := buildReorderQuery(profileID, ids)

	err := r.inTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", op).Int("count", len(ids)).Msg("failed to reorder images")
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			log.Warn().Str("func", op).
				Int64("affected", n).
				Int("requested", len(ids)).
				Msg("reorder touched fewer rows than requested, rolling back")
			return ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

// buildReorderQuery renders
//
//	UPDATE winners_bible_images AS w SET display_order = v.ord
//	FROM (VALUES ($1::uuid, $2::int), ...) AS v(id, ord)
//	WHERE w.id = v.id AND w.profile_id = $n
func buildReorderQuery(profileID string, ids []string) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(ids)*2+1)

	b.WriteString("UPDATE winners_bible_images AS w SET display_order = v.ord FROM (VALUES ")
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "($%d::uuid, $%d::int)", len(args)+1, len(args)+2)
		args = append(args, id, i)
	}
	args = append(args, profileID)
	fmt.Fprintf(&b, ") AS v(id, ord) WHERE w.id = v.id AND w.profile_id = $%d", len(args))

	return b.String(), args
}
