// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// universityRepository implements the repository.UniversityRepository interface using GORM.
type universityRepository struct {
	db *gorm.DB
}

// NewUniversityRepository is the constructor for universityRepository.
func NewUniversityRepository(db *gorm.DB) repository.UniversityRepository {
	return &universityRepository{db: db}
}

// FindByTenantID retrieves the university owned by a tenant.
func (repo *universityRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*entity.University, error) {
	var universityM model.UniversityModel
	err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&universityM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUniversityNotFound
		}

		return nil, errors.Wrap(err, "failed to find university by tenant id")
	}

	return toUniversityDomain(&universityM), nil
}

// Create persists a new university record.
func (repo *universityRepository) Create(ctx context.Context, university *entity.University) error {
	universityM := fromUniversityDomain(university)

	if err := repo.db.WithContext(ctx).Create(universityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("tenant already owns a university")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "university references missing tenant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required university information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create university")
	}

	university.ID = universityM.ID
	university.CreatedAt = universityM.CreatedAt
	university.UpdatedAt = universityM.UpdatedAt

	return nil
}

// GetOrCreateByTenant resolves the tenant's university, creating the given
// record when absent. The unique tenant_id index makes concurrent callers
// converge on a single row.
func (repo *universityRepository) GetOrCreateByTenant(ctx context.Context, university *entity.University) (*entity.University, error) {
	existing, err := repo.FindByTenantID(ctx, university.TenantID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUniversityNotFound) {
		return nil, err
	}

	createErr := repo.Create(ctx, university)
	if createErr == nil {
		return university, nil
	}

	// Lost the race: another caller created the tenant's university first.
	if errors.Is(createErr, domainerrors.ErrConflict) {
		return repo.FindByTenantID(ctx, university.TenantID)
	}

	return nil, createErr
}

// Update modifies an existing university record.
func (repo *universityRepository) Update(ctx context.Context, university *entity.University) error {
	universityM := fromUniversityDomain(university)

	if err := repo.db.WithContext(ctx).Save(universityM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required university information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update university")
	}

	university.UpdatedAt = universityM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUniversityDomain converts a GORM UniversityModel to a domain University entity.
// Corrupt profile details degrade to nil rather than failing the read.
func toUniversityDomain(data *model.UniversityModel) *entity.University {
	if data == nil {
		return nil
	}

	var details *entity.UniversityProfileDetails
	if len(data.ProfileDetails) > 0 {
		parsed := &entity.UniversityProfileDetails{}
		if err := json.Unmarshal(data.ProfileDetails, parsed); err == nil {
			details = parsed
		}
	}

	return &entity.University{
		ID:             data.ID,
		TenantID:       data.TenantID,
		Name:           data.Name,
		Country:        data.Country,
		City:           data.City,
		Website:        data.Website,
		LogoURL:        data.LogoURL,
		Description:    data.Description,
		ProfileDetails: details,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUniversityDomain converts a domain University entity to a GORM UniversityModel.
func fromUniversityDomain(data *entity.University) *model.UniversityModel {
	if data == nil {
		return nil
	}

	var details datatypes.JSON
	if data.ProfileDetails != nil {
		if raw, err := json.Marshal(data.ProfileDetails); err == nil {
			details = datatypes.JSON(raw)
		}
	}

	return &model.UniversityModel{
		ID:             data.ID,
		TenantID:       data.TenantID,
		Name:           data.Name,
		Country:        data.Country,
		City:           data.City,
		Website:        data.Website,
		LogoURL:        data.LogoURL,
		Description:    data.Description,
		ProfileDetails: details,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
