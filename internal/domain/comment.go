package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a media key, the client-derived stable identifier of a
// media item, not to a media row. Keys survive URL-shape changes that way.
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"comment_id"`
	MediaKey  string     `json:"-" db:"media_key"`
	UserID    uuid.UUID  `json:"-" db:"user_id"`
	AuthorID  string     `json:"userId" db:"author_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`

	Author *Participant `json:"author,omitempty" db:"-"`
}

type CreateCommentInput struct {
	Content string `json:"content"`
}

type UpdateCommentInput struct {
	Content string `json:"content"`
}
