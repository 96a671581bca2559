package mocks

import (
	"context"

	"trip-album/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type TripDayRepository struct {
	mock.Mock
}

func (m *TripDayRepository) Create(ctx context.Context, day *domain.TripDay) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *TripDayRepository) GetByID(ctx context.Context, id int64) (*domain.TripDay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripDay), args.Error(1)
}

func (m *TripDayRepository) Update(ctx context.Context, day *domain.TripDay) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *TripDayRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TripDayRepository) ListByAlbum(ctx context.Context, albumID uuid.UUID) ([]domain.TripDay, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripDay), args.Error(1)
}

func (m *TripDayRepository) CountEvents(ctx context.Context, dayID int64) (int64, error) {
	args := m.Called(ctx, dayID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TripDayRepository) ResortAlbum(ctx context.Context, albumID uuid.UUID) error {
	args := m.Called(ctx, albumID)
	return args.Error(0)
}
