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

// memberRepository implements the repository.MemberRepository interface using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// CreateStudent persists a new student record for a profile.
func (repo *memberRepository) CreateStudent(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("student record already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "student record references missing profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student record")
	}

	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// FindStudentByProfileID retrieves the student record linked to a profile.
func (repo *memberRepository) FindStudentByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&studentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student record")
	}

	return toStudentDomain(&studentM), nil
}

// CreateAgent persists a new agent record for a profile.
func (repo *memberRepository) CreateAgent(ctx context.Context, agent *entity.Agent) error {
	agentM := fromAgentDomain(agent)

	if err := repo.db.WithContext(ctx).Create(agentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("agent record already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "agent record references missing profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent record")
	}

	agent.CreatedAt = agentM.CreatedAt
	agent.UpdatedAt = agentM.UpdatedAt

	return nil
}

// FindAgentByProfileID retrieves the agent record linked to a profile.
func (repo *memberRepository) FindAgentByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Agent, error) {
	var agentM model.AgentModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&agentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent record")
	}

	return toAgentDomain(&agentM), nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentModel to a domain Student entity.
func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ProfileID: data.ProfileID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStudentDomain converts a domain Student entity to a GORM StudentModel.
func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ProfileID: data.ProfileID,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAgentDomain converts a GORM AgentModel to a domain Agent entity.
func toAgentDomain(data *model.AgentModel) *entity.Agent {
	if data == nil {
		return nil
	}

	return &entity.Agent{
		ProfileID:          data.ProfileID,
		VerificationStatus: entity.AgentVerificationStatus(data.VerificationStatus),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromAgentDomain converts a domain Agent entity to a GORM AgentModel.
func fromAgentDomain(data *entity.Agent) *model.AgentModel {
	if data == nil {
		return nil
	}

	return &model.AgentModel{
		ProfileID:          data.ProfileID,
		VerificationStatus: data.VerificationStatus.String(),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
