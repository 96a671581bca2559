package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trip-album/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event, participantIDs []string) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
	ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Event, error)
	CountMedia(ctx context.Context, eventID int64) (int64, error)
	AddParticipant(ctx context.Context, eventID int64, handle string) error
	RemoveParticipant(ctx context.Context, eventID int64, handle string) error
	ParticipantsByAlbum(ctx context.Context, albumID uuid.UUID) (map[int64][]domain.Participant, error)
	Reorder(ctx context.Context, dayID int64, eventIDs []int64) error
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event, participantIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// sortOrder <= 0 means "append at the end of the day".
	query := `
		INSERT INTO events (trip_day_id, name, description, emoji, location, sort_order)
		VALUES ($1, $2, $3, $4, $5,
			CASE WHEN $6 > 0 THEN $6
			ELSE (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM events WHERE trip_day_id = $1)
			END)
		RETURNING id, sort_order, created_at, updated_at`

	err = tx.QueryRowxContext(ctx, query,
		event.TripDayID, event.Name, event.Description, event.Emoji, event.Location, event.SortOrder,
	).Scan(&event.ID, &event.SortOrder, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return err
	}

	for _, handle := range participantIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO event_participants (event_id, user_id)
			SELECT $1, id FROM users WHERE user_id = $2
			ON CONFLICT DO NOTHING`, event.ID, handle)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1`

	err := r.db.GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET name = $2, description = $3, emoji = $4, location = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		event.ID, event.Name, event.Description, event.Emoji, event.Location,
	).Scan(&event.UpdatedAt)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *eventRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Event, error) {
	var events []domain.Event
	query := `
		SELECT e.* FROM events e
		INNER JOIN trip_days d ON e.trip_day_id = d.id
		WHERE d.album_id = $1
		ORDER BY e.trip_day_id, e.sort_order ASC`

	err := r.db.SelectContext(ctx, &events, query, albumID)
	return events, err
}

func (r *eventRepository) CountMedia(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM media WHERE event_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &count, query, eventID)
	return count, err
}

func (r *eventRepository) AddParticipant(ctx context.Context, eventID int64, handle string) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO event_participants (event_id, user_id)
		SELECT $1, id FROM users WHERE user_id = $2
		ON CONFLICT DO NOTHING`, eventID, handle)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		// Either an unknown handle or already a member; only the former is
		// worth reporting, so look the user up.
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, handle); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("unknown participant %q", handle)
		}
	}
	return nil
}

func (r *eventRepository) RemoveParticipant(ctx context.Context, eventID int64, handle string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM event_participants
		WHERE event_id = $1 AND user_id = (SELECT id FROM users WHERE user_id = $2)`, eventID, handle)
	return err
}

func (r *eventRepository) ParticipantsByAlbum(ctx context.Context, albumID uuid.UUID) (map[int64][]domain.Participant, error) {
	query := `
		SELECT ep.event_id, u.user_id, u.name, u.avatar_url
		FROM event_participants ep
		INNER JOIN users u ON ep.user_id = u.id
		INNER JOIN events e ON ep.event_id = e.id
		INNER JOIN trip_days d ON e.trip_day_id = d.id
		WHERE d.album_id = $1
		ORDER BY u.name ASC`

	rows, err := r.db.QueryxContext(ctx, query, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byEvent := make(map[int64][]domain.Participant)
	for rows.Next() {
		var eventID int64
		var p domain.Participant
		if err := rows.Scan(&eventID, &p.ID, &p.Name, &p.Avatar); err != nil {
			return nil, err
		}
		byEvent[eventID] = append(byEvent[eventID], p)
	}

	return byEvent, rows.Err()
}

func (r *eventRepository) Reorder(ctx context.Context, dayID int64, eventIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, eventID := range eventIDs {
		result, err := tx.ExecContext(ctx,
			`UPDATE events SET sort_order = $1, updated_at = NOW() WHERE id = $2 AND trip_day_id = $3`,
			i+1, eventID, dayID)
		if err != nil {
			return err
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return fmt.Errorf("event %d does not belong to day %d", eventID, dayID)
		}
	}

	return tx.Commit()
}
