// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgentVerificationStatus tracks the manual vetting state of an agent.
type AgentVerificationStatus string

const (
	// AgentVerificationPending is the initial state set at profile repair.
	AgentVerificationPending AgentVerificationStatus = "pending"
	// AgentVerificationVerified marks an agent approved by operations staff.
	AgentVerificationVerified AgentVerificationStatus = "verified"
	// AgentVerificationRejected marks an agent that failed vetting.
	AgentVerificationRejected AgentVerificationStatus = "rejected"
)

// String returns the string representation of the verification status.
func (s AgentVerificationStatus) String() string {
	return string(s)
}

// Student is the role-specific record linked to a student profile.
type Student struct {
	ProfileID uuid.UUID // Foreign key to the owning Profile; also the primary key.
	Status    string    // Application pipeline status, "active" at creation.
	CreatedAt time.Time // Timestamp of when this record was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Agent is the role-specific record linked to an agent profile. Agents start
// unverified and must pass manual vetting before acting on behalf of students.
type Agent struct {
	ProfileID          uuid.UUID               // Foreign key to the owning Profile; also the primary key.
	VerificationStatus AgentVerificationStatus // Vetting state; pending at creation.
	CreatedAt          time.Time               // Timestamp of when this record was created.
	UpdatedAt          time.Time               // Timestamp of the last modification.
}
