package service

import (
	"context"
)

// Audit event actions published by the resolver and account flows.
const (
	AuditActionSignedIn        = "auth.signed_in"
	AuditActionSignedOut       = "auth.signed_out"
	AuditActionSignedUp        = "auth.signed_up"
	AuditActionEmailVerified   = "auth.email_verified"
	AuditActionProfileRepaired = "profile.repaired"
	AuditActionTenantIsolated  = "tenant.isolated"
	AuditActionIsolationFailed = "tenant.isolation_failed"
	AuditActionIDMismatch      = "security.id_mismatch"
	AuditActionJanitorPurged   = "janitor.purged"
)

// AuditEvent represents an identity or tenancy event carried to the audit
// worker for persistence.
type AuditEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string         `json:"actor_id,omitempty"`   // Identity that triggered the event; empty for system actions
	Action     string         `json:"action"`               // Dotted action name, e.g. "profile.repaired"
	Resource   string         `json:"resource"`             // Resource kind, e.g. "profile", "tenant"
	ResourceID string         `json:"resource_id"`          // Identifier of the touched resource
	Metadata   map[string]any `json:"metadata,omitempty"`   // Event-specific details
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async persistence
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
