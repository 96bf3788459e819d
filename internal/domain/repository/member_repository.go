// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for role-record persistence.
var (
	// ErrStudentNotFound is returned when no student record matches the lookup.
	ErrStudentNotFound = errors.New("student record not found")
	// ErrAgentNotFound is returned when no agent record matches the lookup.
	ErrAgentNotFound = errors.New("agent record not found")
)

// MemberRepository defines operations for the role-specific records linked to
// student and agent profiles.
type MemberRepository interface {
	// CreateStudent persists a new student record for a profile.
	CreateStudent(ctx context.Context, student *entity.Student) error

	// FindStudentByProfileID retrieves the student record linked to a profile.
	FindStudentByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Student, error)

	// CreateAgent persists a new agent record for a profile.
	CreateAgent(ctx context.Context, agent *entity.Agent) error

	// FindAgentByProfileID retrieves the agent record linked to a profile.
	FindAgentByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Agent, error)
}
