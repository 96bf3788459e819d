// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession persists a new refresh session.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.RefreshSession) error {
	sessionM := fromRefreshSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh session already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "session references missing identity")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required session information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh session")
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindSessionByHash retrieves a session by the stored hash of its refresh token.
// Revoked sessions are still returned so the caller can detect token reuse;
// expired sessions surface as ErrSessionExpired.
func (repo *sessionRepository) FindSessionByHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error) {
	var sessionM model.RefreshSessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	session := toRefreshSessionDomain(&sessionM)

	if session.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// FindSessionsByIdentityID retrieves all live sessions for an identity, newest first.
func (repo *sessionRepository) FindSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) ([]*entity.RefreshSession, error) {
	now := time.Now()

	var sessionModels []*model.RefreshSessionModel
	err := repo.db.WithContext(ctx).
		Where("identity_id = ? AND expires_at > ?", identityID, now).
		Order("created_at DESC").
		Find(&sessionModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := make([]*entity.RefreshSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toRefreshSessionDomain(sessionM))
	}

	return sessions, nil
}

// RevokeSession marks a session revoked without deleting the row.
func (repo *sessionRepository) RevokeSession(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("id = ?", id).
		Update("revoked", true)

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the session was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteSessionByHash deletes a session by its token hash, ending it immediately.
func (repo *sessionRepository) DeleteSessionByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshSessionModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the session was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteSessionsByIdentityID removes all sessions for a specific identity.
func (repo *sessionRepository) DeleteSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Delete(&model.RefreshSessionModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpiredSessions removes expired and revoked sessions from the database.
func (repo *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR revoked = ?", now, true).
		Delete(&model.RefreshSessionModel{})

	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// CountActiveSessionsByIdentityID returns the number of active (non-expired, non-revoked) sessions.
func (repo *sessionRepository) CountActiveSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) (int, error) {
	now := time.Now()

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshSessionModel{}).
		Where("identity_id = ? AND expires_at > ? AND revoked = ?", identityID, now, false).
		Count(&count).Error

	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toRefreshSessionDomain converts a GORM RefreshSessionModel to a domain RefreshSession entity.
func toRefreshSessionDomain(data *model.RefreshSessionModel) *entity.RefreshSession {
	if data == nil {
		return nil
	}

	return &entity.RefreshSession{
		ID:         data.ID,
		IdentityID: data.IdentityID,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		Revoked:    data.Revoked,
		CreatedAt:  data.CreatedAt,
	}
}

// fromRefreshSessionDomain converts a domain RefreshSession entity to a GORM RefreshSessionModel.
func fromRefreshSessionDomain(data *entity.RefreshSession) *model.RefreshSessionModel {
	if data == nil {
		return nil
	}

	return &model.RefreshSessionModel{
		ID:         data.ID,
		IdentityID: data.IdentityID,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		Revoked:    data.Revoked,
		CreatedAt:  data.CreatedAt,
	}
}
