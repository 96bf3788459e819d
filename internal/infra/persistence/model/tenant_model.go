package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TenantModel mirrors the 'tenants' table. Slug is the stable external handle;
// uniqueness on it backs the isolation machinery.
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug      string    `gorm:"type:varchar(120);unique;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	EmailFrom string    `gorm:"type:varchar(255)"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// UniversityModel mirrors the 'universities' table. TenantID is unique: each
// partner tenant hosts exactly one university record.
type UniversityModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID       uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Country        string         `gorm:"type:varchar(100)"`
	City           string         `gorm:"type:varchar(100)"`
	Website        string         `gorm:"type:varchar(255)"`
	LogoURL        string         `gorm:"type:text"`
	Description    *string        `gorm:"type:text"`
	ProfileDetails datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UniversityModel) TableName() string {
	return "universities"
}
