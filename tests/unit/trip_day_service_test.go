package unit_test

import (
	"context"
	"testing"
	"time"

	"trip-album/internal/domain"
	"trip-album/internal/service"
	"trip-album/tests/mocks"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTripDayService() (service.TripDayService, *mocks.TripDayRepository, *mocks.EventRepository, *mocks.AuditService) {
	dayRepo := new(mocks.TripDayRepository)
	eventRepo := new(mocks.EventRepository)
	audit := new(mocks.AuditService)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return service.NewTripDayService(dayRepo, eventRepo, audit), dayRepo, eventRepo, audit
}

func TestTripDayService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.TripDay) bool {
			return d.AlbumID == albumID && d.Title == "Day at the Lake"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.TripDay).ID = 7
		}).Return(nil).Once()
		dayRepo.On("ResortAlbum", ctx, albumID).Return(nil).Once()

		day, err := svc.Create(ctx, userID, domain.CreateTripDayInput{
			AlbumID: albumID,
			Title:   "Day at the Lake",
			Date:    "2025-07-14",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), day.ID)
		assert.Equal(t, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), day.Date)
		dayRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Date", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("Create", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		_, err := svc.Create(ctx, userID, domain.CreateTripDayInput{
			AlbumID: albumID,
			Title:   "Day at the Lake",
			Date:    "2025-07-14",
		})

		assert.ErrorIs(t, err, service.ErrDuplicateDate)
		dayRepo.AssertNotCalled(t, "ResortAlbum", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		_, err := svc.Create(ctx, userID, domain.CreateTripDayInput{
			AlbumID: albumID,
			Title:   "Day at the Lake",
			Date:    "July 14th",
		})

		assert.ErrorIs(t, err, service.ErrInvalidDate)
		dayRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Empty Title", func(t *testing.T) {
		svc, _, _, _ := newTripDayService()

		_, err := svc.Create(ctx, userID, domain.CreateTripDayInput{
			AlbumID: albumID,
			Date:    "2025-07-14",
		})

		assert.ErrorIs(t, err, service.ErrEmptyTitle)
	})
}

func TestTripDayService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()

	existing := func() *domain.TripDay {
		return &domain.TripDay{
			ID:      3,
			AlbumID: albumID,
			Title:   "Old Title",
			Date:    time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Success Resorts Album", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(3)).Return(existing(), nil).Once()
		dayRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.TripDay) bool {
			return d.Title == "New Title" && d.Date.Equal(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC))
		})).Return(nil).Once()
		dayRepo.On("ResortAlbum", ctx, albumID).Return(nil).Once()

		day, err := svc.Update(ctx, userID, 3, domain.UpdateTripDayInput{
			Title: "New Title",
			Date:  "2025-07-20",
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", day.Title)
		dayRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Date", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(3)).Return(existing(), nil).Once()
		dayRepo.On("Update", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		_, err := svc.Update(ctx, userID, 3, domain.UpdateTripDayInput{
			Title: "New Title",
			Date:  "2025-07-20",
		})

		assert.ErrorIs(t, err, service.ErrDuplicateDate)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(99)).Return(nil, nil).Once()

		_, err := svc.Update(ctx, userID, 99, domain.UpdateTripDayInput{
			Title: "New Title",
			Date:  "2025-07-20",
		})

		assert.ErrorIs(t, err, service.ErrDayNotFound)
	})
}

func TestTripDayService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()

	day := &domain.TripDay{ID: 3, AlbumID: albumID, Title: "Day at the Lake"}

	t.Run("Blocked While Events Exist", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(3)).Return(day, nil).Once()
		dayRepo.On("CountEvents", ctx, int64(3)).Return(int64(2), nil).Once()

		err := svc.Delete(ctx, userID, 3)

		assert.ErrorIs(t, err, service.ErrDayHasEvents)
		dayRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc, dayRepo, _, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(3)).Return(day, nil).Once()
		dayRepo.On("CountEvents", ctx, int64(3)).Return(int64(0), nil).Once()
		dayRepo.On("Delete", ctx, int64(3)).Return(nil).Once()
		dayRepo.On("ResortAlbum", ctx, albumID).Return(nil).Once()

		err := svc.Delete(ctx, userID, 3)

		assert.NoError(t, err)
		dayRepo.AssertExpectations(t)
	})
}

func TestTripDayService_Reorder(t *testing.T) {
	ctx := context.Background()
	albumID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, dayRepo, eventRepo, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(3)).Return(&domain.TripDay{ID: 3, AlbumID: albumID}, nil).Once()
		eventRepo.On("Reorder", ctx, int64(3), []int64{5, 4, 6}).Return(nil).Once()

		err := svc.Reorder(ctx, 3, []int64{5, 4, 6})

		assert.NoError(t, err)
		eventRepo.AssertExpectations(t)
	})

	t.Run("Day Not Found", func(t *testing.T) {
		svc, dayRepo, eventRepo, _ := newTripDayService()

		dayRepo.On("GetByID", ctx, int64(99)).Return(nil, nil).Once()

		err := svc.Reorder(ctx, 99, []int64{5})

		assert.ErrorIs(t, err, service.ErrDayNotFound)
		eventRepo.AssertNotCalled(t, "Reorder", mock.Anything, mock.Anything, mock.Anything)
	})
}
