// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface using GORM.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create persists a new audit log row.
func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := fromAuditLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// DeleteOlderThan removes audit rows created before the cutoff.
func (repo *auditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.AuditLogModel{})

	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	var metadata datatypes.JSON
	if len(data.Metadata) > 0 {
		if raw, err := json.Marshal(data.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.AuditLogModel{
		ID:         data.ID,
		ActorID:    data.ActorID,
		Action:     data.Action,
		Resource:   data.Resource,
		ResourceID: data.ResourceID,
		Metadata:   metadata,
		CreatedAt:  data.CreatedAt,
	}
}
