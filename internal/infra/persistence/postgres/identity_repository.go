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

// identityRepository implements the repository.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a repository.IdentityRepository interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByEmail retrieves a single identity by its email address, case-insensitively.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&identityM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByConfirmationToken retrieves the identity holding the given email-verification token.
func (repo *identityRepository) FindByConfirmationToken(ctx context.Context, token string) (*entity.Identity, error) {
	// An empty token must never match the rows whose token was already consumed.
	if token == "" {
		return nil, repository.ErrIdentityNotFound
	}

	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("confirmation_token = ?", token).
		First(&identityM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by confirmation token")
	}

	return toIdentityDomain(&identityM), nil
}

// Create persists a new identity to the database.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	// Update the identity entity with the generated ID and timestamps
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// Update modifies an existing identity in the database.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Save(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update identity")
	}

	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// FindFederated retrieves the provider link for an external subject.
func (repo *identityRepository) FindFederated(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.FederatedIdentity, error) {
	var federatedM model.FederatedIdentityModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(&federatedM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFederatedIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find federated identity")
	}

	return toFederatedIdentityDomain(&federatedM), nil
}

// CreateFederated persists a new provider link.
func (repo *identityRepository) CreateFederated(ctx context.Context, federated *entity.FederatedIdentity) error {
	federatedM := fromFederatedIdentityDomain(federated)

	if err := repo.db.WithContext(ctx).Create(federatedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("provider account already linked")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "federated link references missing identity")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create federated identity")
	}

	federated.ID = federatedM.ID
	federated.CreatedAt = federatedM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
// The metadata blob is parsed exactly once here, at the storage boundary;
// corrupt metadata degrades to an empty struct rather than failing the read.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	metadata := &entity.SignupMetadata{}
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, metadata); err != nil {
			metadata = &entity.SignupMetadata{}
		}
	}

	return &entity.Identity{
		ID:                 data.ID,
		Email:              data.Email,
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		EmailConfirmedAt:   data.EmailConfirmedAt,
		ConfirmationToken:  data.ConfirmationToken,
		ConfirmationSentAt: data.ConfirmationSentAt,
		LastSignInAt:       data.LastSignInAt,
		Metadata:           metadata,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel for persistence.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	var metadata datatypes.JSON
	if data.Metadata != nil {
		if raw, err := json.Marshal(data.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.IdentityModel{
		ID:                 data.ID,
		Email:              data.Email,
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		EmailConfirmedAt:   data.EmailConfirmedAt,
		ConfirmationToken:  data.ConfirmationToken,
		ConfirmationSentAt: data.ConfirmationSentAt,
		LastSignInAt:       data.LastSignInAt,
		Metadata:           metadata,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// toFederatedIdentityDomain converts a GORM FederatedIdentityModel to a domain entity.
func toFederatedIdentityDomain(data *model.FederatedIdentityModel) *entity.FederatedIdentity {
	if data == nil {
		return nil
	}

	return &entity.FederatedIdentity{
		ID:             data.ID,
		IdentityID:     data.IdentityID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}

// fromFederatedIdentityDomain converts a domain entity to a GORM FederatedIdentityModel.
func fromFederatedIdentityDomain(data *entity.FederatedIdentity) *model.FederatedIdentityModel {
	if data == nil {
		return nil
	}

	return &model.FederatedIdentityModel{
		ID:             data.ID,
		IdentityID:     data.IdentityID,
		Provider:       data.Provider.String(),
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}
