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

// tenantRepository implements the repository.TenantRepository interface using GORM.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

// FindByID retrieves a single tenant by its unique ID.
func (repo *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantM model.TenantModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by id")
	}

	return toTenantDomain(&tenantM), nil
}

// FindBySlug retrieves a single tenant by its unique slug.
func (repo *tenantRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	var tenantM model.TenantModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tenantM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by slug")
	}

	return toTenantDomain(&tenantM), nil
}

// Create persists a new tenant. A slug collision surfaces as ErrTenantSlugTaken
// so the isolation flow can retry with a fresh slug.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTenantSlugTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tenant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// GetOrCreateBySlug resolves a tenant by slug, creating it when absent.
// Concurrent callers racing on the same slug converge on the winning row.
func (repo *tenantRepository) GetOrCreateBySlug(ctx context.Context, tenant *entity.Tenant) (*entity.Tenant, error) {
	existing, err := repo.FindBySlug(ctx, tenant.Slug)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrTenantNotFound) {
		return nil, err
	}

	createErr := repo.Create(ctx, tenant)
	if createErr == nil {
		return tenant, nil
	}

	// Lost the race: another caller inserted the slug between find and create.
	if errors.Is(createErr, repository.ErrTenantSlugTaken) {
		return repo.FindBySlug(ctx, tenant.Slug)
	}

	return nil, createErr
}

// --- Mapper Functions ---

// toTenantDomain converts a GORM TenantModel to a domain Tenant entity.
func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	return &entity.Tenant{
		ID:        data.ID,
		Slug:      data.Slug,
		Name:      data.Name,
		EmailFrom: data.EmailFrom,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTenantDomain converts a domain Tenant entity to a GORM TenantModel.
func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	return &model.TenantModel{
		ID:        data.ID,
		Slug:      data.Slug,
		Name:      data.Name,
		EmailFrom: data.EmailFrom,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
