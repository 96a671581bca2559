package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	User     UserRepository
	Session  SessionRepository
	Album    AlbumRepository
	TripDay  TripDayRepository
	Event    EventRepository
	Media    MediaRepository
	Comment  CommentRepository
	AuditLog AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Session:  NewSessionRepository(db),
		Album:    NewAlbumRepository(db),
		TripDay:  NewTripDayRepository(db),
		Event:    NewEventRepository(db),
		Media:    NewMediaRepository(db),
		Comment:  NewCommentRepository(db),
		AuditLog: NewAuditLogRepository(db),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate trip-day date, mostly).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
