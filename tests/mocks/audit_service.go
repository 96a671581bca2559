package mocks

import (
	"context"

	"trip-album/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuditService struct {
	mock.Mock
}

func (m *AuditService) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID interface{}, oldValue, newValue interface{}) {
	m.Called(ctx, userID, action, entityType, entityID, oldValue, newValue)
}

func (m *AuditService) Recent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}
