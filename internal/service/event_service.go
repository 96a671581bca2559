package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventHasMedia = errors.New("cannot delete an event that still has media")
	ErrEmptyName     = errors.New("name must not be empty")
	ErrBadAction     = errors.New("action must be add or remove")
)

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	SetParticipant(ctx context.Context, id int64, input domain.EventParticipantInput) error
}

type eventService struct {
	eventRepo   repository.EventRepository
	tripDayRepo repository.TripDayRepository
	audit       AuditService
}

func NewEventService(eventRepo repository.EventRepository, tripDayRepo repository.TripDayRepository, audit AuditService) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		tripDayRepo: tripDayRepo,
		audit:       audit,
	}
}

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	day, err := s.tripDayRepo.GetByID(ctx, input.TripDayID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, ErrDayNotFound
	}

	event := &domain.Event{
		TripDayID:   input.TripDayID,
		Name:        input.Name,
		Description: input.Description,
		Emoji:       input.Emoji,
		Location:    input.Location,
		SortOrder:   input.SortOrder,
	}
	if err := s.eventRepo.Create(ctx, event, input.ParticipantIDs); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "CREATE", "EVENT", event.ID, nil, event)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, userID uuid.UUID, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	before := *event
	event.Name = input.Name
	event.Description = input.Description
	event.Emoji = input.Emoji
	event.Location = input.Location

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "UPDATE", "EVENT", event.ID, before, event)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	// The client disables the delete control while media is attached, but
	// the invariant is enforced here regardless.
	count, err := s.eventRepo.CountMedia(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEventHasMedia
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, "DELETE", "EVENT", id, event, nil)
	return nil
}

func (s *eventService) SetParticipant(ctx context.Context, id int64, input domain.EventParticipantInput) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	switch input.Action {
	case domain.ParticipantAdd:
		return s.eventRepo.AddParticipant(ctx, id, input.ParticipantID)
	case domain.ParticipantRemove:
		return s.eventRepo.RemoveParticipant(ctx, id, input.ParticipantID)
	default:
		return ErrBadAction
	}
}
