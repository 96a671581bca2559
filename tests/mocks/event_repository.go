package mocks

import (
	"context"

	"trip-album/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *domain.Event, participantIDs []string) error {
	args := m.Called(ctx, event, participantIDs)
	return args.Error(0)
}

func (m *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.Event, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *EventRepository) CountMedia(ctx context.Context, eventID int64) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EventRepository) AddParticipant(ctx context.Context, eventID int64, handle string) error {
	args := m.Called(ctx, eventID, handle)
	return args.Error(0)
}

func (m *EventRepository) RemoveParticipant(ctx context.Context, eventID int64, handle string) error {
	args := m.Called(ctx, eventID, handle)
	return args.Error(0)
}

func (m *EventRepository) ParticipantsByAlbum(ctx context.Context, albumID uuid.UUID) (map[int64][]domain.Participant, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Participant), args.Error(1)
}

func (m *EventRepository) Reorder(ctx context.Context, dayID int64, eventIDs []int64) error {
	args := m.Called(ctx, dayID, eventIDs)
	return args.Error(0)
}
