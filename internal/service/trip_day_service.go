package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

var (
	ErrDayNotFound   = errors.New("trip day not found")
	ErrDuplicateDate = errors.New("a day with this date already exists in the album")
	ErrDayHasEvents  = errors.New("cannot delete a day that still has events")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyTitle    = errors.New("title must not be empty")
)

type TripDayService interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateTripDayInput) (*domain.TripDay, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, input domain.UpdateTripDayInput) (*domain.TripDay, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	Reorder(ctx context.Context, dayID int64, eventIDs []int64) error
}

type tripDayService struct {
	tripDayRepo repository.TripDayRepository
	eventRepo   repository.EventRepository
	audit       AuditService
}

func NewTripDayService(tripDayRepo repository.TripDayRepository, eventRepo repository.EventRepository, audit AuditService) TripDayService {
	return &tripDayService{
		tripDayRepo: tripDayRepo,
		eventRepo:   eventRepo,
		audit:       audit,
	}
}

func (s *tripDayService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateTripDayInput) (*domain.TripDay, error) {
	if input.Title == "" {
		return nil, ErrEmptyTitle
	}
	date, err := time.Parse(domain.DateFormat, input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	day := &domain.TripDay{
		AlbumID: input.AlbumID,
		Title:   input.Title,
		Date:    date,
	}
	if err := s.tripDayRepo.Create(ctx, day); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateDate
		}
		return nil, err
	}

	// Sort order is global per album and date-derived; renumber now.
	if err := s.tripDayRepo.ResortAlbum(ctx, day.AlbumID); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "CREATE", "TRIP_DAY", day.ID, nil, day)
	return day, nil
}

func (s *tripDayService) Update(ctx context.Context, userID uuid.UUID, id int64, input domain.UpdateTripDayInput) (*domain.TripDay, error) {
	if input.Title == "" {
		return nil, ErrEmptyTitle
	}
	date, err := time.Parse(domain.DateFormat, input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	day, err := s.tripDayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, ErrDayNotFound
	}

	before := *day
	day.Title = input.Title
	day.Date = date

	if err := s.tripDayRepo.Update(ctx, day); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateDate
		}
		return nil, err
	}

	if err := s.tripDayRepo.ResortAlbum(ctx, day.AlbumID); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, "UPDATE", "TRIP_DAY", day.ID, before, day)
	return day, nil
}

func (s *tripDayService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	day, err := s.tripDayRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if day == nil {
		return ErrDayNotFound
	}

	count, err := s.tripDayRepo.CountEvents(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDayHasEvents
	}

	if err := s.tripDayRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.tripDayRepo.ResortAlbum(ctx, day.AlbumID); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, "DELETE", "TRIP_DAY", id, day, nil)
	return nil
}

func (s *tripDayService) Reorder(ctx context.Context, dayID int64, eventIDs []int64) error {
	day, err := s.tripDayRepo.GetByID(ctx, dayID)
	if err != nil {
		return err
	}
	if day == nil {
		return ErrDayNotFound
	}

	return s.eventRepo.Reorder(ctx, dayID, eventIDs)
}
