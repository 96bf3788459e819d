// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is a persisted record of a notable identity or tenancy event,
// written by the audit worker from published events.
type AuditLog struct {
	ID         uuid.UUID      // The unique identifier of the log row.
	ActorID    *uuid.UUID     // The identity that triggered the event; nil for system actions.
	Action     string         // Dotted action name, e.g. "profile.repaired".
	Resource   string         // Resource kind the action touched, e.g. "profile", "tenant".
	ResourceID string         // Identifier of the touched resource.
	Metadata   map[string]any // Event-specific details, stored as JSONB.
	CreatedAt  time.Time      // When the event was recorded.
}
