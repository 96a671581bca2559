package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

var (
	ErrAlbumNotFound  = errors.New("album not found")
	ErrNotParticipant = errors.New("not a participant of this album")
)

type AlbumService interface {
	Get(ctx context.Context, albumID uuid.UUID) (*domain.Album, error)
	// GetFull assembles the whole album graph in one response: metadata,
	// participants, and days nested with events, media and per-event
	// participants. Clients replace their tree with it atomically.
	GetFull(ctx context.Context, albumID uuid.UUID, userID uuid.UUID) (*domain.FullAlbum, error)
	// AddParticipant attaches an existing user, by login handle, to the
	// album; attaching twice is a no-op.
	AddParticipant(ctx context.Context, albumID uuid.UUID, handle string) error
}

type albumService struct {
	albumRepo   repository.AlbumRepository
	tripDayRepo repository.TripDayRepository
	eventRepo   repository.EventRepository
	mediaRepo   repository.MediaRepository
	userRepo    repository.UserRepository
	mediaURL    func(media *domain.Media) string
}

func NewAlbumService(
	albumRepo repository.AlbumRepository,
	tripDayRepo repository.TripDayRepository,
	eventRepo repository.EventRepository,
	mediaRepo repository.MediaRepository,
	userRepo repository.UserRepository,
	mediaURL func(media *domain.Media) string,
) AlbumService {
	return &albumService{
		albumRepo:   albumRepo,
		tripDayRepo: tripDayRepo,
		eventRepo:   eventRepo,
		mediaRepo:   mediaRepo,
		userRepo:    userRepo,
		mediaURL:    mediaURL,
	}
}

func (s *albumService) AddParticipant(ctx context.Context, albumID uuid.UUID, handle string) error {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return err
	}
	if album == nil {
		return ErrAlbumNotFound
	}

	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.albumRepo.AddParticipant(ctx, albumID, user.ID)
}

func (s *albumService) Get(ctx context.Context, albumID uuid.UUID) (*domain.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}
	return album, nil
}

func (s *albumService) GetFull(ctx context.Context, albumID uuid.UUID, userID uuid.UUID) (*domain.FullAlbum, error) {
	album, err := s.albumRepo.GetByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}

	if album.OwnerID != userID {
		member, err := s.albumRepo.IsParticipant(ctx, albumID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, ErrNotParticipant
		}
	}

	participants, err := s.albumRepo.ListParticipants(ctx, albumID)
	if err != nil {
		return nil, err
	}

	days, err := s.tripDayRepo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	mediaList, err := s.mediaRepo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	eventParticipants, err := s.eventRepo.ParticipantsByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	photosByEvent := make(map[int64][]domain.MediaView)
	videosByEvent := make(map[int64][]domain.MediaView)
	for i := range mediaList {
		m := &mediaList[i]
		view := domain.MediaView{URL: s.mediaURL(&m.Media), Uploader: m.Uploader}
		if m.Type() == "video" {
			videosByEvent[m.EventID] = append(videosByEvent[m.EventID], view)
		} else {
			photosByEvent[m.EventID] = append(photosByEvent[m.EventID], view)
		}
	}

	eventsByDay := make(map[int64][]domain.EventView)
	for _, e := range events {
		view := domain.EventView{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			Emoji:        e.Emoji,
			Location:     e.Location,
			Photos:       orEmptyMedia(photosByEvent[e.ID]),
			Videos:       orEmptyMedia(videosByEvent[e.ID]),
			Participants: orEmptyParticipants(eventParticipants[e.ID]),
		}
		eventsByDay[e.TripDayID] = append(eventsByDay[e.TripDayID], view)
	}

	dayViews := make([]domain.DayView, 0, len(days))
	for _, d := range days {
		dayEvents := orEmptyEvents(eventsByDay[d.ID])
		dayViews = append(dayViews, domain.DayView{
			ID:              d.ID,
			Title:           d.Title,
			Date:            d.Date.Format(domain.DateFormat),
			HeroPhoto:       heroPhoto(dayEvents),
			PhotoCount:      mediaCount(dayEvents),
			BackgroundColor: d.BackgroundColor,
			Participants:    aggregateParticipants(dayEvents),
			Events:          dayEvents,
		})
	}

	return &domain.FullAlbum{
		Album:        *album,
		Participants: orEmptyParticipants(participants),
		Days:         dayViews,
	}, nil
}

func heroPhoto(events []domain.EventView) *string {
	for _, e := range events {
		if len(e.Photos) > 0 {
			url := e.Photos[0].URL
			return &url
		}
	}
	return nil
}

func mediaCount(events []domain.EventView) int {
	count := 0
	for _, e := range events {
		count += len(e.Photos) + len(e.Videos)
	}
	return count
}

// aggregateParticipants is the union of the member events' participant
// sets; a day does not own participants itself.
func aggregateParticipants(events []domain.EventView) []domain.Participant {
	seen := make(map[string]bool)
	union := []domain.Participant{}
	for _, e := range events {
		for _, p := range e.Participants {
			if !seen[p.ID] {
				seen[p.ID] = true
				union = append(union, p)
			}
		}
	}
	return union
}

func orEmptyMedia(list []domain.MediaView) []domain.MediaView {
	if list == nil {
		return []domain.MediaView{}
	}
	return list
}

func orEmptyParticipants(list []domain.Participant) []domain.Participant {
	if list == nil {
		return []domain.Participant{}
	}
	return list
}

func orEmptyEvents(list []domain.EventView) []domain.EventView {
	if list == nil {
		return []domain.EventView{}
	}
	return list
}
