package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trip-album/internal/domain"
)

type AlbumRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	ListParticipants(ctx context.Context, albumID uuid.UUID) ([]domain.Participant, error)
	IsParticipant(ctx context.Context, albumID, userID uuid.UUID) (bool, error)
	AddParticipant(ctx context.Context, albumID, userID uuid.UUID) error
}

type albumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	var album domain.Album
	query := `SELECT * FROM albums WHERE id = $1`

	err := r.db.GetContext(ctx, &album, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) ListParticipants(ctx context.Context, albumID uuid.UUID) ([]domain.Participant, error) {
	var participants []domain.Participant
	query := `
		SELECT u.user_id, u.name, u.avatar_url
		FROM album_participants ap
		INNER JOIN users u ON ap.user_id = u.id
		WHERE ap.album_id = $1
		ORDER BY u.name ASC`

	err := r.db.SelectContext(ctx, &participants, query, albumID)
	return participants, err
}

func (r *albumRepository) IsParticipant(ctx context.Context, albumID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM album_participants WHERE album_id = $1 AND user_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, albumID, userID)
	return exists, err
}

func (r *albumRepository) AddParticipant(ctx context.Context, albumID, userID uuid.UUID) error {
	query := `
		INSERT INTO album_participants (album_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (album_id, user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, albumID, userID)
	return err
}
