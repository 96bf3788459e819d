package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"unigate/config"
	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"
	mockRepo "unigate/internal/mocks/repository"
	mockSvc "unigate/internal/mocks/service"
	mockUsecase "unigate/internal/mocks/usecase"
	"unigate/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	verifier     *mockSvc.MockOAuthVerifier
	blacklist    *mockSvc.MockTokenBlacklist
	emailSender  *mockSvc.MockEmailSender
	bus          *mockSvc.MockSessionEventBus
	resolver     *mockUsecase.MockResolverUsecase
}

func createTestAccountService(t *testing.T, cfg *config.Config) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	verifier := mockSvc.NewMockOAuthVerifier(t)
	blacklist := mockSvc.NewMockTokenBlacklist(t)
	emailSender := mockSvc.NewMockEmailSender(t)
	bus := mockSvc.NewMockSessionEventBus(t)
	resolver := mockUsecase.NewMockResolverUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:     txManager,
		IdentityRepo:  identityRepo,
		SessionRepo:   sessionRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		OAuthVerifier: verifier,
		Blacklist:     blacklist,
		EmailSender:   emailSender,
		Bus:           bus,
		Resolver:      resolver,
		Config:        cfg,
		Logger:        logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
		verifier:     verifier,
		blacklist:    blacklist,
		emailSender:  emailSender,
		bus:          bus,
		resolver:     resolver,
	}
}

// expectTokenIssue wires the token generation and session persistence calls
// shared by every successful authentication flow.
func (fx accountServiceFixtures) expectTokenIssue(ctx context.Context, roles []string, access, refresh string) {
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), roles).
		Return(access, refresh, nil).
		Once()
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(720 * time.Hour)
	fx.tokenService.EXPECT().HashToken(refresh).Return("hash:" + refresh)
	fx.sessionRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
		Return(nil).
		Once()
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	input := usecase.SignUpInput{
		Email:    "New.Student@Example.com",
		Password: "Str0ngPass!",
		Metadata: entity.SignupMetadata{FullName: "New Student", Country: "Taiwan"},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	var createdIdentity *entity.Identity
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)

			identities.EXPECT().
				FindByEmail(ctx, "new.student@example.com").
				Return(nil, repository.ErrIdentityNotFound)
			identities.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(_ context.Context, identity *entity.Identity) {
					createdIdentity = identity
				}).
				Return(nil)

			return fn(factory)
		}).
		Once()

	fx.emailSender.EXPECT().IsConfigured().Return(false)
	fx.resolver.EXPECT().
		LookupRole(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(entity.Role(""), nil)
	fx.expectTokenIssue(ctx, nil, "access-token", "refresh-token")

	var published service.SessionEvent
	fx.bus.EXPECT().
		Publish(ctx, mock.AnythingOfType("service.SessionEvent")).
		RunAndReturn(func(_ context.Context, event service.SessionEvent) error {
			published = event

			return nil
		}).
		Once()

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)

	require.NotNil(t, createdIdentity)
	assert.Equal(t, "new.student@example.com", createdIdentity.Email)
	assert.Equal(t, "hashed_password", createdIdentity.PasswordHash)
	assert.NotEmpty(t, createdIdentity.ConfirmationToken)
	assert.NotNil(t, createdIdentity.ConfirmationSentAt)
	require.NotNil(t, createdIdentity.Metadata)
	assert.Equal(t, "New Student", createdIdentity.Metadata.FullName)

	assert.Equal(t, service.SessionSignedIn, published.Kind)
	assert.Equal(t, createdIdentity.ID, published.IdentityID)
	require.NotNil(t, published.Session)
	assert.Equal(t, "access-token", published.Session.AccessToken)
}

func TestAccountService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	input := usecase.SignUpInput{Email: "taken@example.com", Password: "Str0ngPass!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().
				FindByEmail(ctx, "taken@example.com").
				Return(&entity.Identity{ID: uuid.New(), Email: "taken@example.com"}, nil)

			return fn(factory)
		}).
		Once()

	output, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	assert.Nil(t, output)
}

func TestAccountService_SignUp_WeakPasswordRejected(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(errors.New("too short"))

	output, err := fx.service.SignUp(ctx, usecase.SignUpInput{Email: "a@example.com", Password: "weak"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Nil(t, output)
}

func loginLookupExpectation(t *testing.T, fx accountServiceFixtures, ctx context.Context, email string, identity *entity.Identity, findErr error) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().FindByEmail(ctx, email).Return(identity, findErr)

			return fn(factory)
		}).
		Once()
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:           uuid.New(),
		Email:        "student@example.com",
		PasswordHash: "stored-hash",
	}

	loginLookupExpectation(t, fx, ctx, "student@example.com", identity, nil)
	fx.hasher.EXPECT().Check("Str0ngPass!", "stored-hash").Return(true)
	fx.resolver.EXPECT().
		LookupRole(ctx, identity.ID).
		Return(entity.RoleStudent, nil)
	fx.expectTokenIssue(ctx, []string{"student"}, "access-token", "refresh-token")
	fx.identityRepo.EXPECT().Update(ctx, identity).Return(nil)

	var published service.SessionEvent
	fx.bus.EXPECT().
		Publish(ctx, mock.AnythingOfType("service.SessionEvent")).
		RunAndReturn(func(_ context.Context, event service.SessionEvent) error {
			published = event

			return nil
		}).
		Once()

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Student@Example.com", Password: "Str0ngPass!"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.NotNil(t, identity.LastSignInAt)
	assert.Equal(t, service.SessionSignedIn, published.Kind)
	assert.Equal(t, identity.ID, published.IdentityID)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "student@example.com", PasswordHash: "stored-hash"}

	loginLookupExpectation(t, fx, ctx, "student@example.com", identity, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "student@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Nil(t, output)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	loginLookupExpectation(t, fx, ctx, "ghost@example.com", nil, repository.ErrIdentityNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Nil(t, output)
}

func TestAccountService_Login_FederatedOnlyIdentityRejected(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "google-only@example.com"}

	loginLookupExpectation(t, fx, ctx, "google-only@example.com", identity, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "google-only@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Nil(t, output)
}

func TestAccountService_Login_SessionLimitExceeded(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 2}}
	fx := createTestAccountService(t, cfg)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "busy@example.com", PasswordHash: "stored-hash"}

	loginLookupExpectation(t, fx, ctx, "busy@example.com", identity, nil)
	fx.hasher.EXPECT().Check("Str0ngPass!", "stored-hash").Return(true)
	fx.resolver.EXPECT().LookupRole(ctx, identity.ID).Return(entity.Role(""), nil)
	fx.tokenService.EXPECT().
		GenerateTokens(identity.ID, []string(nil)).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(720 * time.Hour)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("hash:refresh-token")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessions := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().CountActiveSessionsByIdentityID(ctx, identity.ID).Return(2, nil)

			return fn(factory)
		}).
		Once()

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "busy@example.com", Password: "Str0ngPass!"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
	assert.Nil(t, output)
}

func TestAccountService_GoogleSignIn_CreatesIdentityOnFirstSignIn(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		ID:            "google-sub-1",
		Email:         "G.User@Example.com",
		Name:          "G User",
		Provider:      entity.ProviderGoogle,
		EmailVerified: true,
	}

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	var createdIdentity *entity.Identity
	var createdLink *entity.FederatedIdentity
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)

			identities.EXPECT().
				FindFederated(ctx, entity.ProviderGoogle, "google-sub-1").
				Return(nil, repository.ErrFederatedIdentityNotFound)
			identities.EXPECT().
				FindByEmail(ctx, "g.user@example.com").
				Return(nil, repository.ErrIdentityNotFound)
			identities.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(_ context.Context, identity *entity.Identity) {
					createdIdentity = identity
				}).
				Return(nil)
			identities.EXPECT().
				CreateFederated(ctx, mock.AnythingOfType("*entity.FederatedIdentity")).
				Run(func(_ context.Context, link *entity.FederatedIdentity) {
					createdLink = link
				}).
				Return(nil)

			return fn(factory)
		}).
		Once()

	fx.resolver.EXPECT().
		LookupRole(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(entity.Role(""), nil)
	fx.expectTokenIssue(ctx, nil, "access-token", "refresh-token")
	fx.identityRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.AnythingOfType("service.SessionEvent")).Return(nil).Once()

	output, err := fx.service.GoogleSignIn(ctx, "id-token")

	require.NoError(t, err)
	require.NotNil(t, output)

	require.NotNil(t, createdIdentity)
	assert.Equal(t, "g.user@example.com", createdIdentity.Email)
	assert.Empty(t, createdIdentity.PasswordHash)
	assert.NotNil(t, createdIdentity.EmailConfirmedAt)
	require.NotNil(t, createdIdentity.Metadata)
	assert.Equal(t, "G User", createdIdentity.Metadata.FullName)

	require.NotNil(t, createdLink)
	assert.Equal(t, createdIdentity.ID, createdLink.IdentityID)
	assert.Equal(t, entity.ProviderGoogle, createdLink.Provider)
	assert.Equal(t, "google-sub-1", createdLink.ProviderUserID)
}

func TestAccountService_GoogleSignIn_LinksExistingEmailAccount(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:                uuid.New(),
		Email:             "mixed@example.com",
		PasswordHash:      "stored-hash",
		ConfirmationToken: "pending-token",
	}
	oauthUser := &service.OAuthUser{
		ID:            "google-sub-2",
		Email:         "mixed@example.com",
		Name:          "Mixed User",
		Provider:      entity.ProviderGoogle,
		EmailVerified: true,
	}

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)

			identities.EXPECT().
				FindFederated(ctx, entity.ProviderGoogle, "google-sub-2").
				Return(nil, repository.ErrFederatedIdentityNotFound)
			identities.EXPECT().FindByEmail(ctx, "mixed@example.com").Return(identity, nil)
			identities.EXPECT().Update(ctx, identity).Return(nil)
			identities.EXPECT().
				CreateFederated(ctx, mock.AnythingOfType("*entity.FederatedIdentity")).
				Return(nil)

			return fn(factory)
		}).
		Once()

	fx.resolver.EXPECT().LookupRole(ctx, identity.ID).Return(entity.Role(""), nil)
	fx.expectTokenIssue(ctx, nil, "access-token", "refresh-token")
	fx.identityRepo.EXPECT().Update(ctx, identity).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.AnythingOfType("service.SessionEvent")).Return(nil).Once()

	output, err := fx.service.GoogleSignIn(ctx, "id-token")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotNil(t, identity.EmailConfirmedAt)
	assert.Empty(t, identity.ConfirmationToken)
}

func TestAccountService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.verifier.EXPECT().VerifyIDToken(ctx, "bogus").Return(nil, errors.New("token expired"))

	output, err := fx.service.GoogleSignIn(ctx, "bogus")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
	assert.Nil(t, output)
}

func TestAccountService_GoogleSignIn_UnavailableWithoutVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAccountService(AccountServiceParams{Logger: logger})

	output, err := svc.GoogleSignIn(context.Background(), "id-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthUnavailable))
	assert.Nil(t, output)
}

func TestAccountService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "student@example.com"}
	stored := &entity.RefreshSession{
		ID:         uuid.New(),
		IdentityID: identity.ID,
		TokenHash:  "hash:old-refresh",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{IdentityID: identity.ID, Type: "refresh"}, nil)
	fx.resolver.EXPECT().LookupRole(ctx, identity.ID).Return(entity.Role(""), nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("hash:old-refresh")
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("hash:new-refresh")
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(720 * time.Hour)

	var rotatedSession *entity.RefreshSession
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessions := mockRepo.NewMockSessionRepository(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().SessionRepo().Return(sessions)
			factory.EXPECT().IdentityRepo().Return(identities)

			sessions.EXPECT().FindSessionByHash(ctx, "hash:old-refresh").Return(stored, nil)
			identities.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
			fx.tokenService.EXPECT().
				GenerateTokens(identity.ID, []string(nil)).
				Return("new-access", "new-refresh", nil)
			sessions.EXPECT().RevokeSession(ctx, stored.ID).Return(nil)
			sessions.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
				Run(func(_ context.Context, session *entity.RefreshSession) {
					rotatedSession = session
				}).
				Return(nil)

			return fn(factory)
		}).
		Once()

	var published service.SessionEvent
	fx.bus.EXPECT().
		Publish(ctx, mock.AnythingOfType("service.SessionEvent")).
		RunAndReturn(func(_ context.Context, event service.SessionEvent) error {
			published = event

			return nil
		}).
		Once()

	output, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)

	require.NotNil(t, rotatedSession)
	assert.Equal(t, "hash:new-refresh", rotatedSession.TokenHash)
	assert.Equal(t, identity.ID, rotatedSession.IdentityID)
	assert.Equal(t, service.SessionTokenRefreshed, published.Kind)
}

func TestAccountService_RefreshToken_ReuseEndsAllSessions(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	stored := &entity.RefreshSession{
		ID:         uuid.New(),
		IdentityID: identityID,
		TokenHash:  "hash:leaked-refresh",
		ExpiresAt:  time.Now().Add(time.Hour),
		Revoked:    true,
	}

	fx.tokenService.EXPECT().
		ValidateToken("leaked-refresh").
		Return(&service.Claims{IdentityID: identityID, Type: "refresh"}, nil)
	fx.resolver.EXPECT().LookupRole(ctx, identityID).Return(entity.Role(""), nil)
	fx.tokenService.EXPECT().HashToken("leaked-refresh").Return("hash:leaked-refresh")

	deletedAll := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessions := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().FindSessionByHash(ctx, "hash:leaked-refresh").Return(stored, nil)
			sessions.EXPECT().
				DeleteSessionsByIdentityID(ctx, identityID).
				Run(func(_ context.Context, _ uuid.UUID) {
					deletedAll = true
				}).
				Return(nil)

			return fn(factory)
		}).
		Once()

	output, err := fx.service.RefreshToken(ctx, "leaked-refresh")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	assert.Nil(t, output)
	assert.True(t, deletedAll)
}

func TestAccountService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{IdentityID: uuid.New(), Type: "access"}, nil)

	output, err := fx.service.RefreshToken(ctx, "access-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	assert.Nil(t, output)
}

func TestAccountService_RefreshToken_ExpiredSession(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("stale-refresh").
		Return(&service.Claims{IdentityID: identityID, Type: "refresh"}, nil)
	fx.resolver.EXPECT().LookupRole(ctx, identityID).Return(entity.Role(""), nil)
	fx.tokenService.EXPECT().HashToken("stale-refresh").Return("hash:stale-refresh")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessions := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().
				FindSessionByHash(ctx, "hash:stale-refresh").
				Return(nil, repository.ErrSessionExpired)

			return fn(factory)
		}).
		Once()

	output, err := fx.service.RefreshToken(ctx, "stale-refresh")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
	assert.Nil(t, output)
}

func TestAccountService_RefreshToken_SubjectMismatch(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	claimsID := uuid.New()
	stored := &entity.RefreshSession{
		ID:         uuid.New(),
		IdentityID: uuid.New(),
		TokenHash:  "hash:stolen-refresh",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("stolen-refresh").
		Return(&service.Claims{IdentityID: claimsID, Type: "refresh"}, nil)
	fx.resolver.EXPECT().LookupRole(ctx, claimsID).Return(entity.Role(""), nil)
	fx.tokenService.EXPECT().HashToken("stolen-refresh").Return("hash:stolen-refresh")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessions := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().FindSessionByHash(ctx, "hash:stolen-refresh").Return(stored, nil)

			return fn(factory)
		}).
		Once()

	output, err := fx.service.RefreshToken(ctx, "stolen-refresh")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	assert.Nil(t, output)
}

func TestAccountService_Logout_SingleSession(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()
	claims := &service.Claims{
		IdentityID: identityID,
		Type:       "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
		},
	}

	fx.tokenService.EXPECT().HashToken("refresh-token").Return("hash:refresh-token")
	fx.sessionRepo.EXPECT().DeleteSessionByHash(ctx, "hash:refresh-token").Return(nil)
	fx.tokenService.EXPECT().ValidateToken("access-token").Return(claims, nil)
	fx.blacklist.EXPECT().
		Revoke(ctx, "access-token", mock.AnythingOfType("time.Duration")).
		Return(nil)

	var published service.SessionEvent
	fx.bus.EXPECT().
		Publish(ctx, mock.AnythingOfType("service.SessionEvent")).
		RunAndReturn(func(_ context.Context, event service.SessionEvent) error {
			published = event

			return nil
		}).
		Once()

	err := fx.service.Logout(ctx, usecase.LogoutInput{
		IdentityID:   identityID,
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	})

	require.NoError(t, err)
	assert.Equal(t, service.SessionSignedOut, published.Kind)
	assert.Equal(t, identityID, published.IdentityID)
	assert.Nil(t, published.Session)
}

func TestAccountService_Logout_AllDevices(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteSessionsByIdentityID(ctx, identityID).Return(nil)
	fx.bus.EXPECT().Publish(ctx, mock.AnythingOfType("service.SessionEvent")).Return(nil).Once()

	err := fx.service.Logout(ctx, usecase.LogoutInput{IdentityID: identityID, AllDevices: true})

	require.NoError(t, err)
}

func TestAccountService_Logout_MissingSessionTolerated(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identityID := uuid.New()

	fx.tokenService.EXPECT().HashToken("gone-refresh").Return("hash:gone-refresh")
	fx.sessionRepo.EXPECT().
		DeleteSessionByHash(ctx, "hash:gone-refresh").
		Return(repository.ErrSessionNotFound)
	fx.bus.EXPECT().Publish(ctx, mock.AnythingOfType("service.SessionEvent")).Return(nil).Once()

	err := fx.service.Logout(ctx, usecase.LogoutInput{IdentityID: identityID, RefreshToken: "gone-refresh"})

	require.NoError(t, err)
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:                uuid.New(),
		Email:             "pending@example.com",
		ConfirmationToken: "confirmation-token",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().
				FindByConfirmationToken(ctx, "confirmation-token").
				Return(identity, nil)
			identities.EXPECT().Update(ctx, identity).Return(nil)

			return fn(factory)
		}).
		Once()

	var published service.SessionEvent
	fx.bus.EXPECT().
		Publish(ctx, mock.AnythingOfType("service.SessionEvent")).
		RunAndReturn(func(_ context.Context, event service.SessionEvent) error {
			published = event

			return nil
		}).
		Once()

	err := fx.service.VerifyEmail(ctx, "confirmation-token")

	require.NoError(t, err)
	assert.NotNil(t, identity.EmailConfirmedAt)
	assert.Empty(t, identity.ConfirmationToken)
	assert.Equal(t, service.SessionIdentityUpdated, published.Kind)
	assert.True(t, published.Force)
}

func TestAccountService_VerifyEmail_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().
				FindByConfirmationToken(ctx, "bogus-token").
				Return(nil, repository.ErrIdentityNotFound)

			return fn(factory)
		}).
		Once()

	err := fx.service.VerifyEmail(ctx, "bogus-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationTokenInvalid))
}

func TestAccountService_VerifyEmail_EmptyToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	err := fx.service.VerifyEmail(context.Background(), "  ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationTokenInvalid))
}

func TestAccountService_ResendVerification_RegeneratesToken(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	identity := &entity.Identity{
		ID:                uuid.New(),
		Email:             "pending@example.com",
		ConfirmationToken: "old-token",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().FindByEmail(ctx, "pending@example.com").Return(identity, nil)
			identities.EXPECT().Update(ctx, identity).Return(nil)

			return fn(factory)
		}).
		Once()

	fx.emailSender.EXPECT().IsConfigured().Return(true)
	fx.emailSender.EXPECT().
		SendVerificationEmail(ctx, "pending@example.com", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ResendVerification(ctx, "Pending@Example.com")

	require.NoError(t, err)
	assert.NotEqual(t, "old-token", identity.ConfirmationToken)
	assert.NotEmpty(t, identity.ConfirmationToken)
	assert.NotNil(t, identity.ConfirmationSentAt)
}

func TestAccountService_ResendVerification_UnknownEmailStaysSilent(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().
				FindByEmail(ctx, "ghost@example.com").
				Return(nil, repository.ErrIdentityNotFound)

			return fn(factory)
		}).
		Once()

	err := fx.service.ResendVerification(ctx, "ghost@example.com")

	require.NoError(t, err)
}

func TestAccountService_ResendVerification_ConfirmedEmailStaysSilent(t *testing.T) {
	fx := createTestAccountService(t, nil)

	ctx := context.Background()
	confirmedAt := time.Now()
	identity := &entity.Identity{
		ID:               uuid.New(),
		Email:            "done@example.com",
		EmailConfirmedAt: &confirmedAt,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identities := mockRepo.NewMockIdentityRepository(t)

			factory.EXPECT().IdentityRepo().Return(identities)
			identities.EXPECT().FindByEmail(ctx, "done@example.com").Return(identity, nil)

			return fn(factory)
		}).
		Once()

	err := fx.service.ResendVerification(ctx, "done@example.com")

	require.NoError(t, err)
	assert.Empty(t, identity.ConfirmationToken)
}
