package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"trip-album/internal/config"
	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

type Services struct {
	Auth    AuthService
	Album   AlbumService
	TripDay TripDayService
	Event   EventService
	Media   MediaService
	Comment CommentService
	Invite  InviteService
	Audit   AuditService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	auditService := NewAuditService(repos.AuditLog)
	authService := NewAuthService(repos.User, repos.Session, cfg)
	mediaService := NewMediaService(repos.Media, repos.Event, minioClient, cfg, auditService)
	albumService := NewAlbumService(repos.Album, repos.TripDay, repos.Event, repos.Media, repos.User, func(m *domain.Media) string {
		return mediaService.PublicURL(m)
	})
	tripDayService := NewTripDayService(repos.TripDay, repos.Event, auditService)
	eventService := NewEventService(repos.Event, repos.TripDay, auditService)
	commentService := NewCommentService(repos.Comment, redis)
	inviteService := NewInviteService(cfg)

	return &Services{
		Auth:    authService,
		Album:   albumService,
		TripDay: tripDayService,
		Event:   eventService,
		Media:   mediaService,
		Comment: commentService,
		Invite:  inviteService,
		Audit:   auditService,
	}
}
