package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The primary key is NOT generated:
// it always equals the owning identity's ID, so profile lookups by identity are
// primary-key lookups.
type ProfileModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key"`
	TenantID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role                 string     `gorm:"type:varchar(50);not null;default:'student'"`
	FullName             string     `gorm:"type:varchar(255)"`
	Email                string     `gorm:"type:varchar(255)"`
	Phone                string     `gorm:"type:varchar(50)"`
	Country              string     `gorm:"type:varchar(100)"`
	Username             string     `gorm:"type:varchar(100);unique;not null"`
	ReferredBy           *uuid.UUID `gorm:"type:uuid"`
	Onboarded            bool       `gorm:"not null;default:false"`
	PartnerEmailVerified bool       `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Student *StudentModel `gorm:"foreignKey:ProfileID"`
	Agent   *AgentModel   `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// StudentModel mirrors the 'students' table. ProfileID references profiles.id (UUID).
type StudentModel struct {
	ProfileID uuid.UUID `gorm:"primaryKey"`
	Status    string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// AgentModel mirrors the 'agents' table. ProfileID references profiles.id (UUID).
type AgentModel struct {
	ProfileID          uuid.UUID `gorm:"primaryKey"`
	VerificationStatus string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentModel) TableName() string {
	return "agents"
}
