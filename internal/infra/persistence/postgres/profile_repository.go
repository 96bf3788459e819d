// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a single profile by its unique ID, preloading any linked
// student or agent record.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Student").
		Preload("Agent").
		Where("id = ?", id).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}
		// Row-level security denials surface as permission errors, not empty
		// result sets. They get the same recoverable treatment as a missing row.
		if isInsufficientPrivilege(err) {
			return nil, domainerrors.ErrForbidden.WrapMessage("profile fetch denied")
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUsername retrieves a single profile by username, case-insensitively.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

// UsernameExists reports whether any profile holds the username, case-insensitively.
func (repo *profileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

// GetRole retrieves only the role column for a profile.
func (repo *profileRepository) GetRole(ctx context.Context, id uuid.UUID) (entity.Role, error) {
	var role string
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Select("role").
		Where("id = ?", id).
		Take(&role).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrProfileNotFound
		}

		return "", errors.Wrap(err, "failed to get profile role")
	}

	return entity.Role(role), nil
}

// Create persists a new profile entity. Linked student and agent records are
// written separately through the MemberRepository, inside the same transaction.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors. A unique violation here
		// means either the profile row or the username was created concurrently.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("profile or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "profile references missing tenant")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile entity in the database.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateTenant moves a profile onto another tenant without touching other columns.
func (repo *profileRepository) UpdateTenant(ctx context.Context, id, tenantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("tenant_id", tenantID)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "profile references missing tenant")
		}

		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// CountPartnersOnTenant counts partner-role profiles on a tenant, excluding the given profile id.
func (repo *profileRepository) CountPartnersOnTenant(ctx context.Context, tenantID, excludeProfileID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("tenant_id = ? AND role = ? AND id <> ?", tenantID, entity.RolePartner.String(), excludeProfileID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count partners on tenant")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                   data.ID,
		TenantID:             data.TenantID,
		Role:                 entity.Role(data.Role),
		FullName:             data.FullName,
		Email:                data.Email,
		Phone:                data.Phone,
		Country:              data.Country,
		Username:             data.Username,
		ReferredBy:           data.ReferredBy,
		Onboarded:            data.Onboarded,
		PartnerEmailVerified: data.PartnerEmailVerified,
		Student:              toStudentDomain(data.Student),
		Agent:                toAgentDomain(data.Agent),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
// Associations are intentionally left nil: member records have their own
// repository and must not be cascaded implicitly.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                   data.ID,
		TenantID:             data.TenantID,
		Role:                 data.Role.String(),
		FullName:             data.FullName,
		Email:                data.Email,
		Phone:                data.Phone,
		Country:              data.Country,
		Username:             data.Username,
		ReferredBy:           data.ReferredBy,
		Onboarded:            data.Onboarded,
		PartnerEmailVerified: data.PartnerEmailVerified,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
