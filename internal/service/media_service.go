package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"trip-album/internal/config"
	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

var (
	ErrMediaNotFound = errors.New("media not found")
	ErrNotUploader   = errors.New("only the uploader may delete this media")
)

type MediaService interface {
	Upload(ctx context.Context, userID uuid.UUID, eventID int64, fileName string, mimeType string, reader io.Reader) (*domain.Media, error)
	Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.Media, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	// PublicURL is the canonical client-facing URL of a media row. Rows
	// inlined as data URLs are their own URL.
	PublicURL(media *domain.Media) string
}

type mediaService struct {
	mediaRepo   repository.MediaRepository
	eventRepo   repository.EventRepository
	minioClient *minio.Client
	cfg         *config.Config
	audit       AuditService
}

func NewMediaService(mediaRepo repository.MediaRepository, eventRepo repository.EventRepository, minioClient *minio.Client, cfg *config.Config, audit AuditService) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		eventRepo:   eventRepo,
		minioClient: minioClient,
		cfg:         cfg,
		audit:       audit,
	}
}

func (s *mediaService) Upload(ctx context.Context, userID uuid.UUID, eventID int64, fileName string, mimeType string, reader io.Reader) (*domain.Media, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	// Buffer the file up front: a failed blob-store put has already
	// consumed part of the stream, and the data-URL fallback needs the
	// whole content.
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	mediaID := uuid.New()
	media := &domain.Media{
		ID:         mediaID,
		EventID:    eventID,
		UploadedBy: userID,
		FileName:   fileName,
		FileSize:   int64(len(content)),
		MimeType:   mimeType,
	}

	storagePath, err := s.putObject(ctx, fileName, mimeType, content)
	if err != nil {
		// Blob store down: inline the file as a data URL so the upload
		// still succeeds.
		log.Printf("Blob store unavailable, inlining %s: %v", fileName, err)
		dataURL := encodeDataURL(mimeType, content)
		media.DataURL = &dataURL
	} else {
		media.StoragePath = &storagePath
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		if media.StoragePath != nil {
			_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, *media.StoragePath, minio.RemoveObjectOptions{})
		}
		return nil, err
	}

	media.URL = s.PublicURL(media)
	s.audit.Record(ctx, userID, "CREATE", "MEDIA", media.ID, nil, media)
	return media, nil
}

func (s *mediaService) putObject(ctx context.Context, fileName string, mimeType string, content []byte) (string, error) {
	if s.minioClient == nil {
		return "", errors.New("no blob store configured")
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	storagePath := fmt.Sprintf("media/%s/media-%d_%s%s",
		time.Now().Format("2006/01"), time.Now().Unix(), hex.EncodeToString(suffix), extensionOf(fileName))

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", err
	}
	return storagePath, nil
}

func (s *mediaService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *domain.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if media == nil {
		return nil, nil, ErrMediaNotFound
	}

	if media.DataURL != nil {
		payload := *media.DataURL
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, nil, err
		}
		return io.NopCloser(bytes.NewReader(raw)), media, nil
	}

	if s.minioClient == nil || media.StoragePath == nil {
		return nil, nil, ErrMediaNotFound
	}

	object, err := s.minioClient.GetObject(ctx, s.cfg.MinIOBucket, *media.StoragePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, err
	}
	return object, media, nil
}

func (s *mediaService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrMediaNotFound
	}

	if media.UploadedBy != userID {
		return ErrNotUploader
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.minioClient != nil && media.StoragePath != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, *media.StoragePath, minio.RemoveObjectOptions{})
	}

	s.audit.Record(ctx, userID, "DELETE", "MEDIA", id, media, nil)
	return nil
}

func (s *mediaService) PublicURL(media *domain.Media) string {
	if media.DataURL != nil {
		return *media.DataURL
	}
	return fmt.Sprintf("%s/api/media/%s", s.cfg.PublicBaseURL, media.ID)
}

func encodeDataURL(mimeType string, content []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))
}

func extensionOf(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx >= 0 {
		return fileName[idx:]
	}
	return ""
}
