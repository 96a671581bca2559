package mocks

import (
	"context"

	"trip-album/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AlbumRepository struct {
	mock.Mock
}

func (m *AlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *AlbumRepository) ListParticipants(ctx context.Context, albumID uuid.UUID) ([]domain.Participant, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *AlbumRepository) IsParticipant(ctx context.Context, albumID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, albumID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *AlbumRepository) AddParticipant(ctx context.Context, albumID, userID uuid.UUID) error {
	args := m.Called(ctx, albumID, userID)
	return args.Error(0)
}
