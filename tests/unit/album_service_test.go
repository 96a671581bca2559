package unit_test

import (
	"context"
	"testing"

	"trip-album/internal/domain"
	"trip-album/internal/service"
	"trip-album/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAlbumService() (service.AlbumService, *mocks.AlbumRepository, *mocks.UserRepository) {
	albumRepo := new(mocks.AlbumRepository)
	userRepo := new(mocks.UserRepository)
	svc := service.NewAlbumService(albumRepo, new(mocks.TripDayRepository), new(mocks.EventRepository), new(mocks.MediaRepository), userRepo, func(m *domain.Media) string {
		return "/api/media/" + m.ID.String()
	})
	return svc, albumRepo, userRepo
}

func TestAlbumService_AddParticipant(t *testing.T) {
	ctx := context.Background()
	albumID := uuid.New()
	album := &domain.Album{ID: albumID, Title: "Summer Trip"}

	t.Run("Success", func(t *testing.T) {
		svc, albumRepo, userRepo := newAlbumService()

		user := &domain.User{ID: uuid.New(), UserID: "bob", Name: "Bob"}
		albumRepo.On("GetByID", ctx, albumID).Return(album, nil).Once()
		userRepo.On("GetByHandle", ctx, "bob").Return(user, nil).Once()
		albumRepo.On("AddParticipant", ctx, albumID, user.ID).Return(nil).Once()

		err := svc.AddParticipant(ctx, albumID, "bob")

		assert.NoError(t, err)
		albumRepo.AssertExpectations(t)
	})

	t.Run("Unknown Handle", func(t *testing.T) {
		svc, albumRepo, userRepo := newAlbumService()

		albumRepo.On("GetByID", ctx, albumID).Return(album, nil).Once()
		userRepo.On("GetByHandle", ctx, "mallory").Return(nil, nil).Once()

		err := svc.AddParticipant(ctx, albumID, "mallory")

		assert.ErrorIs(t, err, service.ErrUserNotFound)
		albumRepo.AssertNotCalled(t, "AddParticipant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Album", func(t *testing.T) {
		svc, albumRepo, userRepo := newAlbumService()

		albumRepo.On("GetByID", ctx, albumID).Return(nil, nil).Once()

		err := svc.AddParticipant(ctx, albumID, "bob")

		assert.ErrorIs(t, err, service.ErrAlbumNotFound)
		userRepo.AssertNotCalled(t, "GetByHandle", mock.Anything, mock.Anything)
	})
}
