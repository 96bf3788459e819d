package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Metadata holds the raw signup hints captured at registration as JSONB.
type IdentityModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	Phone              string    `gorm:"type:varchar(50)"`
	PasswordHash       string    `gorm:"type:varchar(255)"`
	EmailConfirmedAt   *time.Time
	ConfirmationToken  string `gorm:"type:varchar(255);index"`
	ConfirmationSentAt *time.Time
	LastSignInAt       *time.Time
	Metadata           datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	FederatedIdentities []FederatedIdentityModel `gorm:"foreignKey:IdentityID"`
	RefreshSessions     []RefreshSessionModel    `gorm:"foreignKey:IdentityID"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// FederatedIdentityModel mirrors the 'federated_identities' table. It links an
// external provider account (e.g. Google) to a local identity.
type FederatedIdentityModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	IdentityID     uuid.UUID `gorm:"type:uuid;not null"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_federated_provider_provider_user_id"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_federated_provider_provider_user_id"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (FederatedIdentityModel) TableName() string {
	return "federated_identities"
}

// RefreshSessionModel mirrors the 'refresh_sessions' table. One row per live
// device session; only the token hash is stored.
type RefreshSessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash  string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	Revoked    bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshSessionModel) TableName() string {
	return "refresh_sessions"
}
