package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trip-album/internal/domain"
)

// AlbumMedia is a media row together with its uploader's public identity,
// as needed when assembling the full album graph.
type AlbumMedia struct {
	domain.Media
	Uploader domain.Participant
}

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]AlbumMedia, error)
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (media_id, event_id, uploaded_by, file_name, file_size, mime_type, storage_path, data_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		media.ID, media.EventID, media.UploadedBy,
		media.FileName, media.FileSize, media.MimeType, media.StoragePath, media.DataURL,
	).Scan(&media.CreatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE media_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE media SET deleted_at = NOW() WHERE media_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *mediaRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]AlbumMedia, error) {
	query := `
		SELECT m.media_id, m.event_id, m.uploaded_by, m.file_name, m.file_size,
			m.mime_type, m.storage_path, m.data_url, m.created_at,
			u.user_id, u.name, u.avatar_url
		FROM media m
		INNER JOIN users u ON m.uploaded_by = u.id
		INNER JOIN events e ON m.event_id = e.id
		INNER JOIN trip_days d ON e.trip_day_id = d.id
		WHERE d.album_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.created_at ASC`

	rows, err := r.db.QueryxContext(ctx, query, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []AlbumMedia
	for rows.Next() {
		var m AlbumMedia
		err := rows.Scan(
			&m.ID, &m.EventID, &m.UploadedBy, &m.FileName, &m.FileSize,
			&m.MimeType, &m.StoragePath, &m.DataURL, &m.CreatedAt,
			&m.Uploader.ID, &m.Uploader.Name, &m.Uploader.Avatar,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}

	return list, rows.Err()
}
