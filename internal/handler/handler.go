package handler

import (
	"errors"

	"trip-album/internal/middleware"
	"trip-album/internal/service"
)

type Handlers struct {
	Auth    *AuthHandler
	Album   *AlbumHandler
	TripDay *TripDayHandler
	Event   *EventHandler
	Media   *MediaHandler
	Comment *CommentHandler
	Audit   *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(services.Auth),
		Album:   NewAlbumHandler(services.Album, services.Invite),
		TripDay: NewTripDayHandler(services.TripDay),
		Event:   NewEventHandler(services.Event),
		Media:   NewMediaHandler(services.Media),
		Comment: NewCommentHandler(services.Comment),
		Audit:   NewAuditHandler(services.Audit),
	}
}

// serviceError maps service sentinel errors onto HTTP error responses;
// anything unrecognized falls through as a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrAlbumNotFound),
		errors.Is(err, service.ErrDayNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrMediaNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, service.ErrDuplicateDate),
		errors.Is(err, service.ErrDayHasEvents),
		errors.Is(err, service.ErrEventHasMedia):
		return middleware.Conflict(err.Error())
	case errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotUploader),
		errors.Is(err, service.ErrNotAuthor):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrBadAction):
		return middleware.ValidationError(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return middleware.Unauthorized(err.Error())
	}
	return err
}
