package unit_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"trip-album/internal/config"
	"trip-album/internal/domain"
	"trip-album/internal/service"
	"trip-album/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMediaService() (service.MediaService, *mocks.MediaRepository, *mocks.EventRepository) {
	mediaRepo := new(mocks.MediaRepository)
	eventRepo := new(mocks.EventRepository)
	audit := new(mocks.AuditService)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	cfg := &config.Config{PublicBaseURL: "https://album.example.com", MinIOBucket: "media"}
	return service.NewMediaService(mediaRepo, eventRepo, nil, cfg, audit), mediaRepo, eventRepo
}

func TestMediaService_UploadInlinesFullContent(t *testing.T) {
	svc, mediaRepo, eventRepo := newMediaService()

	ctx := context.Background()
	userID := uuid.New()
	content := "not really a jpeg but good enough"

	eventRepo.On("GetByID", ctx, int64(11)).Return(&domain.Event{ID: 11}, nil).Once()
	mediaRepo.On("Create", ctx, mock.AnythingOfType("*domain.Media")).Return(nil).Once()

	media, err := svc.Upload(ctx, userID, 11, "beach.jpg", "image/jpeg", strings.NewReader(content))
	require.NoError(t, err)

	// The inlined data URL must round-trip the whole file, even though
	// the input stream can only be read once.
	require.NotNil(t, media.DataURL)
	prefix := "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(*media.DataURL, prefix))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(*media.DataURL, prefix))
	require.NoError(t, err)
	assert.Equal(t, content, string(decoded))

	assert.Equal(t, int64(len(content)), media.FileSize)
	assert.Equal(t, *media.DataURL, media.URL)
	mediaRepo.AssertExpectations(t)
}

func TestMediaService_UploadUnknownEvent(t *testing.T) {
	svc, mediaRepo, eventRepo := newMediaService()

	ctx := context.Background()
	eventRepo.On("GetByID", ctx, int64(99)).Return(nil, nil).Once()

	_, err := svc.Upload(ctx, uuid.New(), 99, "beach.jpg", "image/jpeg", strings.NewReader("x"))

	assert.ErrorIs(t, err, service.ErrEventNotFound)
	mediaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMediaService_DeleteUploaderOnly(t *testing.T) {
	svc, mediaRepo, _ := newMediaService()

	ctx := context.Background()
	uploader := uuid.New()
	other := uuid.New()
	mediaID := uuid.New()

	existing := &domain.Media{ID: mediaID, UploadedBy: uploader}

	mediaRepo.On("GetByID", ctx, mediaID).Return(existing, nil).Once()

	err := svc.Delete(ctx, other, mediaID)

	assert.ErrorIs(t, err, service.ErrNotUploader)
	mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
