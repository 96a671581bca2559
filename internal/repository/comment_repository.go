package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trip-album/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMediaKey(ctx context.Context, mediaKey string) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, media_key, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.MediaKey, comment.UserID, comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `
		SELECT c.comment_id, c.media_key, c.user_id, u.user_id AS author_id,
			c.content, c.created_at, c.updated_at, c.deleted_at
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.comment_id = $1 AND c.deleted_at IS NULL`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE comment_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.Content,
	).Scan(&comment.UpdatedAt)
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE comments SET deleted_at = NOW() WHERE comment_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *commentRepository) ListByMediaKey(ctx context.Context, mediaKey string) ([]domain.Comment, error) {
	query := `
		SELECT c.comment_id, c.media_key, c.user_id, c.content, c.created_at, c.updated_at,
			u.user_id, u.name, u.avatar_url
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.media_key = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at ASC`

	rows, err := r.db.QueryxContext(ctx, query, mediaKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var author domain.Participant
		err := rows.Scan(
			&c.ID, &c.MediaKey, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&author.ID, &author.Name, &author.Avatar,
		)
		if err != nil {
			return nil, err
		}
		c.AuthorID = author.ID
		c.Author = &author
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
