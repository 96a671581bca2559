package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trip-album/internal/domain"
)

type TripDayRepository interface {
	Create(ctx context.Context, day *domain.TripDay) error
	GetByID(ctx context.Context, id int64) (*domain.TripDay, error)
	Update(ctx context.Context, day *domain.TripDay) error
	Delete(ctx context.Context, id int64) error
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.TripDay, error)
	CountEvents(ctx context.Context, dayID int64) (int64, error)
	ResortAlbum(ctx context.Context, albumID uuid.UUID) error
}

type tripDayRepository struct {
	db *sqlx.DB
}

func NewTripDayRepository(db *sqlx.DB) TripDayRepository {
	return &tripDayRepository{db: db}
}

func (r *tripDayRepository) Create(ctx context.Context, day *domain.TripDay) error {
	query := `
		INSERT INTO trip_days (album_id, title, date, background_color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sort_order, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		day.AlbumID, day.Title, day.Date, day.BackgroundColor,
	).Scan(&day.ID, &day.SortOrder, &day.CreatedAt, &day.UpdatedAt)
}

func (r *tripDayRepository) GetByID(ctx context.Context, id int64) (*domain.TripDay, error) {
	var day domain.TripDay
	query := `SELECT * FROM trip_days WHERE id = $1`

	err := r.db.GetContext(ctx, &day, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *tripDayRepository) Update(ctx context.Context, day *domain.TripDay) error {
	query := `
		UPDATE trip_days
		SET title = $2, date = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		day.ID, day.Title, day.Date,
	).Scan(&day.UpdatedAt)
}

func (r *tripDayRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM trip_days WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *tripDayRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.TripDay, error) {
	var days []domain.TripDay
	query := `SELECT * FROM trip_days WHERE album_id = $1 ORDER BY date ASC`

	err := r.db.SelectContext(ctx, &days, query, albumID)
	return days, err
}

func (r *tripDayRepository) CountEvents(ctx context.Context, dayID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM events WHERE trip_day_id = $1`
	err := r.db.GetContext(ctx, &count, query, dayID)
	return count, err
}

// ResortAlbum rewrites sort_order so the album's days are numbered by
// calendar date ascending. Called after every date change.
func (r *tripDayRepository) ResortAlbum(ctx context.Context, albumID uuid.UUID) error {
	query := `
		UPDATE trip_days
		SET sort_order = ranked.rn
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY date ASC) AS rn
			FROM trip_days
			WHERE album_id = $1
		) ranked
		WHERE trip_days.id = ranked.id`
	_, err := r.db.ExecContext(ctx, query, albumID)
	return err
}
