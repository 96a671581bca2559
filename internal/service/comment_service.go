package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("insufficient permissions to modify this comment")
	ErrEmptyContent    = errors.New("content must not be empty")
)

const commentCacheTTL = 5 * time.Minute

type CommentService interface {
	Create(ctx context.Context, mediaKey string, user *domain.User, input domain.CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	ListByMediaKey(ctx context.Context, mediaKey string) ([]domain.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	redis       *redis.Client
}

func NewCommentService(commentRepo repository.CommentRepository, redis *redis.Client) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		redis:       redis,
	}
}

func (s *commentService) Create(ctx context.Context, mediaKey string, user *domain.User, input domain.CreateCommentInput) (*domain.Comment, error) {
	if input.Content == "" {
		return nil, ErrEmptyContent
	}

	author := user.Participant()
	comment := &domain.Comment{
		ID:       uuid.New(),
		MediaKey: mediaKey,
		UserID:   user.ID,
		AuthorID: user.UserID,
		Content:  input.Content,
		Author:   &author,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidate(ctx, mediaKey)
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	if input.Content == "" {
		return nil, ErrEmptyContent
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if comment.UserID != userID {
		return nil, ErrNotAuthor
	}

	comment.Content = input.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidate(ctx, comment.MediaKey)
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.UserID != userID {
		return ErrNotAuthor
	}

	s.invalidate(ctx, comment.MediaKey)
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentService) ListByMediaKey(ctx context.Context, mediaKey string) ([]domain.Comment, error) {
	cacheKey := cacheKeyFor(mediaKey)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var comments []domain.Comment
			if json.Unmarshal([]byte(cached), &comments) == nil {
				return comments, nil
			}
		}
	}

	comments, err := s.commentRepo.ListByMediaKey(ctx, mediaKey)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	if s.redis != nil {
		if payload, err := json.Marshal(comments); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, commentCacheTTL).Err()
		}
	}

	return comments, nil
}

func (s *commentService) invalidate(ctx context.Context, mediaKey string) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKeyFor(mediaKey)).Err()
	}
}

func cacheKeyFor(mediaKey string) string {
	return fmt.Sprintf("comments:%s", mediaKey)
}
