package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"
	mockRepo "unigate/internal/mocks/repository"
	mockSvc "unigate/internal/mocks/service"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var isolatedAcmeSlug = regexp.MustCompile(`^acme-college-[0-9a-f]{8}$`)

// resolverServiceFixtures holds all test dependencies for resolver service tests.
type resolverServiceFixtures struct {
	service        usecase.ResolverUsecase
	txManager      *mockRepo.MockTransactionManager
	profileRepo    *mockRepo.MockProfileRepository
	tenantRepo     *mockRepo.MockTenantRepository
	universityRepo *mockRepo.MockUniversityRepository
	directory      *mockSvc.MockIdentityDirectory
}

func createTestResolverService(t *testing.T, publisher service.EventPublisher) resolverServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	universityRepo := mockRepo.NewMockUniversityRepository(t)
	directory := mockSvc.NewMockIdentityDirectory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewResolverService(ResolverServiceParams{
		TxManager:      txManager,
		ProfileRepo:    profileRepo,
		TenantRepo:     tenantRepo,
		UniversityRepo: universityRepo,
		Directory:      directory,
		Publisher:      publisher,
		Logger:         logger,
	})

	return resolverServiceFixtures{
		service:        service,
		txManager:      txManager,
		profileRepo:    profileRepo,
		tenantRepo:     tenantRepo,
		universityRepo: universityRepo,
		directory:      directory,
	}
}

func studentIdentity(id uuid.UUID) *entity.Identity {
	return &entity.Identity{
		ID:       id,
		Email:    "student@example.com",
		Metadata: &entity.SignupMetadata{Country: "Taiwan"},
	}
}

func TestResolverService_Resolve_ExistingProfileReturnedWithoutRepair(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: uuid.New(),
		Role:     entity.RoleStudent,
		Country:  "Taiwan",
		Username: "wanderer",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(studentIdentity(identityID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, identityID, resolved.ID)
	assert.Equal(t, "wanderer", resolved.Username)
}

func TestResolverService_Resolve_MissingStudentProfileRepairedOnce(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:    identityID,
		Email: "student@example.com",
		Phone: "+886900000000",
		Metadata: &entity.SignupMetadata{
			FullName: "Wan Derer",
			Username: "Wanderer",
			Country:  "Taiwan",
		},
	}
	sharedTenant := &entity.Tenant{ID: uuid.New(), Slug: "unigate", Name: "UniGate", Active: true}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()

	fx.tenantRepo.EXPECT().
		GetOrCreateBySlug(ctx, mock.AnythingOfType("*entity.Tenant")).
		RunAndReturn(func(_ context.Context, defaults *entity.Tenant) (*entity.Tenant, error) {
			assert.Equal(t, "unigate", defaults.Slug)

			return sharedTenant, nil
		}).
		Once()

	var createdProfile *entity.Profile
	var createdStudent *entity.Student
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, "wanderer").Return(false, nil)
			profiles.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)
			members.EXPECT().
				CreateStudent(ctx, mock.AnythingOfType("*entity.Student")).
				Run(func(_ context.Context, student *entity.Student) {
					createdStudent = student
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return createdProfile, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, identityID, resolved.ID)
	assert.Equal(t, sharedTenant.ID, resolved.TenantID)
	assert.Equal(t, entity.RoleStudent, resolved.Role)
	assert.Equal(t, "wanderer", resolved.Username)
	assert.Equal(t, "Taiwan", resolved.Country)
	require.NotNil(t, createdStudent)
	assert.Equal(t, identityID, createdStudent.ProfileID)
	assert.Equal(t, "active", createdStudent.Status)
}

func TestResolverService_Resolve_PartnerSignupCreatesIsolatedStack(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.MustParse("0f0e0d0c-0b0a-0908-0706-050403020100")
	identity := &entity.Identity{
		ID:    identityID,
		Email: "dean@acme.edu",
		Metadata: &entity.SignupMetadata{
			Role:           "partner",
			FullName:       "Pat Lin",
			UniversityName: "Acme College",
			Country:        "Canada",
		},
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()

	var createdTenant *entity.Tenant
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Run(func(_ context.Context, tenant *entity.Tenant) {
			createdTenant = tenant
		}).
		Return(nil).
		Once()

	var createdProfile *entity.Profile
	var createdUniversity *entity.University
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			universities := mockRepo.NewMockUniversityRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().UniversityRepo().Return(universities)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, "user_0f0e0d0c0b0a").Return(false, nil)
			universities.EXPECT().
				FindByTenantID(ctx, createdTenant.ID).
				Return(nil, repository.ErrUniversityNotFound)
			universities.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.University")).
				Run(func(_ context.Context, university *entity.University) {
					createdUniversity = university
				}).
				Return(nil)
			profiles.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return createdProfile, nil
		}).
		Once()

	// The re-fetched partner passes through the isolation audit: a fresh
	// isolated tenant with no other partners only gets its University ensured.
	fx.tenantRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Tenant, error) {
			return createdTenant, nil
		}).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, mock.AnythingOfType("uuid.UUID"), identityID).
		Return(int64(0), nil).
		Once()
	fx.universityRepo.EXPECT().
		GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
		RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
			return university, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, identityID, resolved.ID)

	require.NotNil(t, createdTenant)
	assert.Regexp(t, isolatedAcmeSlug, createdTenant.Slug)
	assert.Equal(t, "Acme College", createdTenant.Name)
	assert.True(t, createdTenant.Active)

	require.NotNil(t, createdUniversity)
	assert.Equal(t, "Acme College", createdUniversity.Name)
	assert.Equal(t, "Canada", createdUniversity.Country)
	assert.Equal(t, createdTenant.ID, createdUniversity.TenantID)
	assert.Nil(t, createdUniversity.Description)
	require.NotNil(t, createdUniversity.ProfileDetails)
	require.NotNil(t, createdUniversity.ProfileDetails.PrimaryContact)
	assert.Equal(t, "Pat Lin", createdUniversity.ProfileDetails.PrimaryContact.Name)
	assert.Equal(t, "dean@acme.edu", createdUniversity.ProfileDetails.PrimaryContact.Email)

	require.NotNil(t, createdProfile)
	assert.Equal(t, "user_0f0e0d0c0b0a", createdProfile.Username)
	assert.Equal(t, createdTenant.ID, createdProfile.TenantID)
	assert.Equal(t, entity.RolePartner, createdProfile.Role)
}

func TestResolverService_Resolve_UsernameCollisionAppendsSuffix(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.MustParse("aabbccdd-1122-3344-5566-778899aabbcc")
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "student@example.com",
		Metadata: &entity.SignupMetadata{Username: "Wanderer"},
	}
	sharedTenant := &entity.Tenant{ID: uuid.New(), Slug: "unigate", Name: "UniGate", Active: true}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.tenantRepo.EXPECT().
		GetOrCreateBySlug(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(sharedTenant, nil).
		Once()

	var createdProfile *entity.Profile
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, "wanderer").Return(true, nil)
			profiles.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)
			members.EXPECT().CreateStudent(ctx, mock.AnythingOfType("*entity.Student")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return createdProfile, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "wanderer_aabb", resolved.Username)
}

func TestResolverService_Resolve_TenantHintWinsOverIsolation(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	hintedTenant := &entity.Tenant{ID: uuid.New(), Slug: "invited-university", Name: "Invited University", Active: true}
	identity := &entity.Identity{
		ID:    identityID,
		Email: "dean@invited.edu",
		Metadata: &entity.SignupMetadata{
			Role:     "partner",
			FullName: "Dean Invited",
			TenantID: &hintedTenant.ID,
		},
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.tenantRepo.EXPECT().FindByID(ctx, hintedTenant.ID).Return(hintedTenant, nil).Once()

	var createdProfile *entity.Profile
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			universities := mockRepo.NewMockUniversityRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().UniversityRepo().Return(universities)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, mock.AnythingOfType("string")).Return(false, nil)
			universities.EXPECT().
				FindByTenantID(ctx, hintedTenant.ID).
				Return(nil, repository.ErrUniversityNotFound)
			universities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.University")).Return(nil)
			profiles.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return createdProfile, nil
		}).
		Once()

	// The audit still runs for the re-fetched partner; the hinted tenant is
	// neither shared nor multi-partner, so the profile stays on it.
	fx.tenantRepo.EXPECT().FindByID(ctx, hintedTenant.ID).Return(hintedTenant, nil).Once()
	fx.profileRepo.EXPECT().CountPartnersOnTenant(ctx, hintedTenant.ID, identityID).Return(int64(0), nil).Once()
	fx.universityRepo.EXPECT().
		GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
		RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
			return university, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, hintedTenant.ID, resolved.TenantID)
}

func TestResolverService_Resolve_DoubleTenantFailureAbortsRepair(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:    identityID,
		Email: "dean@acme.edu",
		Metadata: &entity.SignupMetadata{
			Role:           "partner",
			UniversityName: "Acme College",
		},
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(repository.ErrTenantSlugTaken).
		Twice()

	resolved, err := fx.service.Resolve(ctx, identityID)

	// No transaction ever starts, so no Profile row can exist.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTenantIsolationFailed))
	assert.Nil(t, resolved)
}

func TestResolverService_Resolve_SlugCollisionRetriesWithFallback(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:    identityID,
		Email: "dean@acme.edu",
		Metadata: &entity.SignupMetadata{
			Role:           "partner",
			UniversityName: "Acme College",
		},
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()

	var slugs []string
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		RunAndReturn(func(_ context.Context, tenant *entity.Tenant) error {
			slugs = append(slugs, tenant.Slug)
			if len(slugs) == 1 {
				return repository.ErrTenantSlugTaken
			}

			return nil
		}).
		Twice()

	var createdProfile *entity.Profile
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			universities := mockRepo.NewMockUniversityRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().UniversityRepo().Return(universities)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, mock.AnythingOfType("string")).Return(false, nil)
			universities.EXPECT().
				FindByTenantID(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil, repository.ErrUniversityNotFound)
			universities.EXPECT().Create(ctx, mock.AnythingOfType("*entity.University")).Return(nil)
			profiles.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return createdProfile, nil
		}).
		Once()

	fx.tenantRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Tenant, error) {
			return &entity.Tenant{ID: createdProfile.TenantID, Slug: slugs[1], Active: true}, nil
		}).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, mock.AnythingOfType("uuid.UUID"), identityID).
		Return(int64(0), nil).
		Once()
	fx.universityRepo.EXPECT().
		GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
		RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
			return university, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.Len(t, slugs, 2)
	assert.Regexp(t, isolatedAcmeSlug, slugs[0])
	assert.Regexp(t, `^org-\d+-[0-9a-f]{8}$`, slugs[1])
}

func TestResolverService_Resolve_IDMismatchYieldsNil(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	foreign := &entity.Profile{ID: uuid.New(), Role: entity.RoleStudent, Username: "somebody_else"}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(studentIdentity(identityID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(foreign, nil).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolverService_Resolve_IDMismatchAfterRepairYieldsNil(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	sharedTenant := &entity.Tenant{ID: uuid.New(), Slug: "unigate", Active: true}
	foreign := &entity.Profile{ID: uuid.New(), Role: entity.RoleStudent, Username: "somebody_else"}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(studentIdentity(identityID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.tenantRepo.EXPECT().
		GetOrCreateBySlug(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(sharedTenant, nil).
		Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, mock.AnythingOfType("string")).Return(false, nil)
			profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
			members.EXPECT().CreateStudent(ctx, mock.AnythingOfType("*entity.Student")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(foreign, nil).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolverService_Resolve_IDMismatchEmitsAuditEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	events := make(chan *service.AuditEvent, 1)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		RunAndReturn(func(_ context.Context, event *service.AuditEvent) error {
			events <- event

			return nil
		}).
		Once()

	fx := createTestResolverService(t, publisher)

	ctx := context.Background()
	identityID := uuid.New()
	foreign := &entity.Profile{ID: uuid.New(), Role: entity.RoleStudent}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(studentIdentity(identityID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(foreign, nil).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	assert.Nil(t, resolved)

	select {
	case event := <-events:
		assert.Equal(t, service.AuditActionIDMismatch, event.Action)
		assert.Equal(t, identityID.String(), event.ActorID)
		assert.Equal(t, foreign.ID.String(), event.ResourceID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an audit event for the id mismatch")
	}
}

func TestResolverService_Resolve_UnrecoverableFetchErrorYieldsNil(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(studentIdentity(identityID), nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		Return(nil, errors.New("connection refused")).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolverService_Resolve_MissingIdentitySkipsRepair(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(nil, errors.New("identity store down"))
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolverService_Resolve_RepairTransactionFailureYieldsNil(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	sharedTenant := &entity.Tenant{ID: uuid.New(), Slug: "unigate", Active: true}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(studentIdentity(identityID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.tenantRepo.EXPECT().
		GetOrCreateBySlug(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(sharedTenant, nil).
		Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected")).
		Once()
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolverService_Resolve_SecondRunRepairsNothing(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	identity := studentIdentity(identityID)
	sharedTenant := &entity.Tenant{ID: uuid.New(), Slug: "unigate", Active: true}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil).Twice()
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.tenantRepo.EXPECT().
		GetOrCreateBySlug(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(sharedTenant, nil).
		Once()

	var createdProfile *entity.Profile
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			members := mockRepo.NewMockMemberRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().MemberRepo().Return(members)

			profiles.EXPECT().UsernameExists(ctx, mock.AnythingOfType("string")).Return(false, nil)
			profiles.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(_ context.Context, profile *entity.Profile) {
					createdProfile = profile
				}).
				Return(nil)
			members.EXPECT().CreateStudent(ctx, mock.AnythingOfType("*entity.Student")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	// Both the post-repair re-fetch and the entire second run serve the row
	// created above; the single Execute expectation proves no second repair.
	fx.profileRepo.EXPECT().
		FindByID(ctx, identityID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
			return createdProfile, nil
		}).
		Twice()

	first, err := fx.service.Resolve(ctx, identityID)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := fx.service.Resolve(ctx, identityID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TenantID, second.TenantID)
}

func TestResolverService_Resolve_AuditorMigratesPartnerOffSharedTenant(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	sharedTenantID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "dean@acme.edu",
		Metadata: &entity.SignupMetadata{Role: "partner", UniversityName: "Acme College"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: sharedTenantID,
		Role:     entity.RolePartner,
		FullName: "Pat Lin",
		Email:    "dean@acme.edu",
		Country:  "Canada",
		Username: "pat_lin",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.tenantRepo.EXPECT().
		FindByID(ctx, sharedTenantID).
		Return(&entity.Tenant{ID: sharedTenantID, Slug: "unigate", Active: true}, nil).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, sharedTenantID, identityID).
		Return(int64(0), nil).
		Once()

	var createdTenant *entity.Tenant
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Run(func(_ context.Context, tenant *entity.Tenant) {
			createdTenant = tenant
		}).
		Return(nil).
		Once()

	var migratedUniversity *entity.University
	var movedToTenantID uuid.UUID
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			universities := mockRepo.NewMockUniversityRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().UniversityRepo().Return(universities)

			universities.EXPECT().
				GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
				RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
					migratedUniversity = university

					return university, nil
				})
			profiles.EXPECT().
				UpdateTenant(ctx, identityID, mock.AnythingOfType("uuid.UUID")).
				RunAndReturn(func(_ context.Context, _ uuid.UUID, tenantID uuid.UUID) error {
					movedToTenantID = tenantID

					return nil
				})

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.NotNil(t, createdTenant)
	assert.Regexp(t, isolatedAcmeSlug, createdTenant.Slug)
	assert.Equal(t, createdTenant.ID, resolved.TenantID)
	assert.Equal(t, createdTenant.ID, movedToTenantID)
	assert.False(t, resolved.IsolationFailed)
	require.NotNil(t, migratedUniversity)
	assert.Equal(t, createdTenant.ID, migratedUniversity.TenantID)
	assert.Equal(t, "Acme College", migratedUniversity.Name)
}

func TestResolverService_Resolve_AuditorMigratesSecondPartnerOnTenant(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	crowdedTenantID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "second@college.edu",
		Metadata: &entity.SignupMetadata{Role: "partner"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: crowdedTenantID,
		Role:     entity.RolePartner,
		FullName: "Second Dean",
		Email:    "second@college.edu",
		Country:  "Canada",
		Username: "second_dean",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.tenantRepo.EXPECT().
		FindByID(ctx, crowdedTenantID).
		Return(&entity.Tenant{ID: crowdedTenantID, Slug: "first-college-00aa11bb", Active: true}, nil).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, crowdedTenantID, identityID).
		Return(int64(1), nil).
		Once()

	var createdTenant *entity.Tenant
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Run(func(_ context.Context, tenant *entity.Tenant) {
			createdTenant = tenant
		}).
		Return(nil).
		Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profiles := mockRepo.NewMockProfileRepository(t)
			universities := mockRepo.NewMockUniversityRepository(t)

			factory.EXPECT().ProfileRepo().Return(profiles)
			factory.EXPECT().UniversityRepo().Return(universities)

			universities.EXPECT().
				GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
				RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
					return university, nil
				})
			profiles.EXPECT().UpdateTenant(ctx, identityID, mock.AnythingOfType("uuid.UUID")).Return(nil)

			_ = fn(factory)
		}).
		Return(nil).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.NotNil(t, createdTenant)
	assert.Equal(t, createdTenant.ID, resolved.TenantID)
	assert.NotEqual(t, crowdedTenantID, resolved.TenantID)
}

func TestResolverService_Resolve_AuditorDegradesToIsolationFlag(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	sharedTenantID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "dean@acme.edu",
		Metadata: &entity.SignupMetadata{Role: "partner", UniversityName: "Acme College"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: sharedTenantID,
		Role:     entity.RolePartner,
		FullName: "Pat Lin",
		Country:  "Canada",
		Username: "pat_lin",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.tenantRepo.EXPECT().
		FindByID(ctx, sharedTenantID).
		Return(&entity.Tenant{ID: sharedTenantID, Slug: "unigate", Active: true}, nil).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, sharedTenantID, identityID).
		Return(int64(0), nil).
		Once()
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(repository.ErrTenantSlugTaken).
		Twice()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.True(t, resolved.IsolationFailed)
	assert.Equal(t, sharedTenantID, resolved.TenantID)
}

func TestResolverService_Resolve_AuditorKeepsIsolatedPartnerInPlace(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	isolatedTenantID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "dean@acme.edu",
		Metadata: &entity.SignupMetadata{Role: "partner", UniversityName: "Acme College"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: isolatedTenantID,
		Role:     entity.RolePartner,
		FullName: "Pat Lin",
		Country:  "Canada",
		Username: "pat_lin",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.tenantRepo.EXPECT().
		FindByID(ctx, isolatedTenantID).
		Return(&entity.Tenant{ID: isolatedTenantID, Slug: "acme-college-00aa11bb", Active: true}, nil).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, isolatedTenantID, identityID).
		Return(int64(0), nil).
		Once()
	fx.universityRepo.EXPECT().
		GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
		RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
			return university, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, isolatedTenantID, resolved.TenantID)
	assert.False(t, resolved.IsolationFailed)
}

func TestResolverService_Resolve_BackfillsCountryFromMetadata(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "student@example.com",
		Metadata: &entity.SignupMetadata{Country: "Japan"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: uuid.New(),
		Role:     entity.RoleStudent,
		Username: "wanderer",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.profileRepo.EXPECT().Update(ctx, profile).Return(nil).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "Japan", resolved.Country)
}

func TestResolverService_Resolve_CountryBackfillRevertsOnUpdateFailure(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "student@example.com",
		Metadata: &entity.SignupMetadata{Country: "Japan"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: uuid.New(),
		Role:     entity.RoleStudent,
		Username: "wanderer",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.profileRepo.EXPECT().Update(ctx, profile).Return(errors.New("connection reset")).Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Empty(t, resolved.Country)
}

func TestResolverService_Resolve_ConfirmedPartnerCompletesOnboarding(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	isolatedTenantID := uuid.New()
	confirmedAt := time.Now()
	identity := &entity.Identity{
		ID:               identityID,
		Email:            "dean@acme.edu",
		EmailConfirmedAt: &confirmedAt,
		Metadata:         &entity.SignupMetadata{Role: "partner", UniversityName: "Acme College"},
	}
	profile := &entity.Profile{
		ID:       identityID,
		TenantID: isolatedTenantID,
		Role:     entity.RolePartner,
		FullName: "Pat Lin",
		Country:  "Canada",
		Username: "pat_lin",
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.profileRepo.EXPECT().Update(ctx, profile).Return(nil).Once()
	fx.tenantRepo.EXPECT().
		FindByID(ctx, isolatedTenantID).
		Return(&entity.Tenant{ID: isolatedTenantID, Slug: "acme-college-00aa11bb", Active: true}, nil).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, isolatedTenantID, identityID).
		Return(int64(0), nil).
		Once()
	fx.universityRepo.EXPECT().
		GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
		RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
			return university, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.True(t, resolved.Onboarded)
	assert.True(t, resolved.PartnerEmailVerified)
}

func TestResolverService_Resolve_OnboardingFlagsNeverRevert(t *testing.T) {
	fx := createTestResolverService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	isolatedTenantID := uuid.New()
	// No confirmation timestamp: a previously onboarded partner keeps its flags.
	identity := &entity.Identity{
		ID:       identityID,
		Email:    "dean@acme.edu",
		Metadata: &entity.SignupMetadata{Role: "partner", UniversityName: "Acme College"},
	}
	profile := &entity.Profile{
		ID:                   identityID,
		TenantID:             isolatedTenantID,
		Role:                 entity.RolePartner,
		FullName:             "Pat Lin",
		Country:              "Canada",
		Username:             "pat_lin",
		Onboarded:            true,
		PartnerEmailVerified: true,
	}

	fx.directory.EXPECT().GetIdentity(ctx, identityID).Return(identity, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil).Once()
	fx.tenantRepo.EXPECT().
		FindByID(ctx, isolatedTenantID).
		Return(&entity.Tenant{ID: isolatedTenantID, Slug: "acme-college-00aa11bb", Active: true}, nil).
		Once()
	fx.profileRepo.EXPECT().
		CountPartnersOnTenant(ctx, isolatedTenantID, identityID).
		Return(int64(0), nil).
		Once()
	fx.universityRepo.EXPECT().
		GetOrCreateByTenant(ctx, mock.AnythingOfType("*entity.University")).
		RunAndReturn(func(_ context.Context, university *entity.University) (*entity.University, error) {
			return university, nil
		}).
		Once()

	resolved, err := fx.service.Resolve(ctx, identityID)

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.True(t, resolved.Onboarded)
	assert.True(t, resolved.PartnerEmailVerified)
}

func TestResolverService_LookupRole_ReturnsProfileRole(t *testing.T) {
	fx := createTestResolverService(t, nil)

	identityID := uuid.New()
	fx.profileRepo.EXPECT().GetRole(mock.Anything, identityID).Return(entity.RolePartner, nil)

	role, err := fx.service.LookupRole(context.Background(), identityID)

	require.NoError(t, err)
	assert.Equal(t, entity.RolePartner, role)
}

func TestResolverService_LookupRole_MissingProfileDegrades(t *testing.T) {
	fx := createTestResolverService(t, nil)

	identityID := uuid.New()
	fx.profileRepo.EXPECT().
		GetRole(mock.Anything, identityID).
		Return(entity.Role(""), repository.ErrProfileNotFound)

	role, err := fx.service.LookupRole(context.Background(), identityID)

	require.NoError(t, err)
	assert.Empty(t, role)
}

func TestResolverService_LookupRole_TimeoutDegrades(t *testing.T) {
	fx := createTestResolverService(t, nil)

	identityID := uuid.New()
	fx.profileRepo.EXPECT().
		GetRole(mock.Anything, identityID).
		Return(entity.Role(""), context.DeadlineExceeded)

	role, err := fx.service.LookupRole(context.Background(), identityID)

	require.NoError(t, err)
	assert.Empty(t, role)
}

func TestResolverService_LookupRole_UnexpectedErrorPropagates(t *testing.T) {
	fx := createTestResolverService(t, nil)

	identityID := uuid.New()
	fx.profileRepo.EXPECT().
		GetRole(mock.Anything, identityID).
		Return(entity.Role(""), errors.New("connection refused"))

	role, err := fx.service.LookupRole(context.Background(), identityID)

	require.Error(t, err)
	assert.Empty(t, role)
}
