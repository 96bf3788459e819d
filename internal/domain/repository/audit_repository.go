// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"unigate/internal/domain/entity"
)

// AuditLogRepository defines operations for the persisted audit trail.
// Rows are written by the audit worker and pruned by the janitor.
type AuditLogRepository interface {
	// Create persists a new audit log row.
	Create(ctx context.Context, log *entity.AuditLog) error

	// DeleteOlderThan removes audit rows created before the cutoff, returning
	// the number of rows purged.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
