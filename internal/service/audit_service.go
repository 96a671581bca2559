package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/repository"
)

type AuditService interface {
	// Record appends an audit entry; failures are logged, never surfaced,
	// so auditing cannot fail the mutation it describes.
	Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID interface{}, oldValue, newValue interface{})
	Recent(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID interface{}, oldValue, newValue interface{}) {
	entry := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   fmt.Sprint(entityID),
	}

	if oldValue != nil {
		if raw, err := json.Marshal(oldValue); err == nil {
			entry.OldValue = raw
		}
	}
	if newValue != nil {
		if raw, err := json.Marshal(newValue); err == nil {
			entry.NewValue = raw
		}
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to write audit log (%s %s %s): %v", action, entityType, entry.EntityID, err)
	}
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.auditRepo.ListRecent(ctx, limit)
}
