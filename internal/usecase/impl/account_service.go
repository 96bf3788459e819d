// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"unigate/config"
	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	identityRepo      repository.IdentityRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	oauthVerifier     service.OAuthVerifier
	blacklist         service.TokenBlacklist
	emailSender       service.EmailSender
	bus               service.SessionEventBus
	publisher         service.EventPublisher
	resolver          usecase.ResolverUsecase
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	IdentityRepo  repository.IdentityRepository
	SessionRepo   repository.SessionRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OAuthVerifier service.OAuthVerifier
	Blacklist     service.TokenBlacklist
	EmailSender   service.EmailSender
	Bus           service.SessionEventBus
	Publisher     service.EventPublisher
	Resolver      usecase.ResolverUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		identityRepo:      params.IdentityRepo,
		sessionRepo:       params.SessionRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		oauthVerifier:     params.OAuthVerifier,
		blacklist:         params.Blacklist,
		emailSender:       params.EmailSender,
		bus:               params.Bus,
		publisher:         params.Publisher,
		resolver:          params.Resolver,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new identity and issues its first token pair. The
// profile itself is created later by the resolver, when the signed_in event
// reaches the session listener.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup",
			slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	// Bcrypt work happens before the transaction so the connection is not
	// held across it.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	confirmationToken := newConfirmationToken()
	now := time.Now()
	metadata := input.Metadata

	var identity *entity.Identity
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		identities := repos.IdentityRepo()

		_, findErr := identities.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "signup failed")
		}
		if !errors.Is(findErr, repository.ErrIdentityNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		identity = &entity.Identity{
			ID:                 uuid.New(),
			Email:              email,
			Phone:              metadata.Phone,
			PasswordHash:       passwordHash,
			ConfirmationToken:  confirmationToken,
			ConfirmationSentAt: &now,
			Metadata:           &metadata,
		}

		return errors.Wrap(identities.Create(ctx, identity), "create identity")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction",
			slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.sendVerificationMail(ctx, identity.Email, confirmationToken)

	session, err := srv.issueTokens(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if err := srv.persistSession(ctx, identity.ID, session.RefreshToken); err != nil {
		return nil, err
	}

	srv.publishSessionEvent(ctx, service.SessionSignedIn, identity.ID, session, false)
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    identity.ID.String(),
		Action:     service.AuditActionSignedUp,
		Resource:   "identity",
		ResourceID: identity.ID.String(),
		Metadata:   map[string]any{"provider": entity.ProviderEmail.String()},
	})

	srv.log(ctx).Debug("Signup completed", slog.String("identityID", identity.ID.String()))

	return &usecase.AuthOutput{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Identity:     identity,
	}, nil
}

// Login authenticates an identity by email and password.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Attempting login", slog.String("email", email))

	identity, err := srv.loadIdentityByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Federated-only identities have no password hash to check against.
	if identity.PasswordHash == "" || !srv.hasher.Check(input.Password, identity.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	session, err := srv.issueTokens(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if err := srv.persistSession(ctx, identity.ID, session.RefreshToken); err != nil {
		return nil, err
	}

	srv.recordSignIn(ctx, identity)
	srv.publishSessionEvent(ctx, service.SessionSignedIn, identity.ID, session, false)
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    identity.ID.String(),
		Action:     service.AuditActionSignedIn,
		Resource:   "identity",
		ResourceID: identity.ID.String(),
		Metadata:   map[string]any{"provider": entity.ProviderEmail.String()},
	})

	return &usecase.AuthOutput{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Identity:     identity,
	}, nil
}

// GoogleSignIn authenticates via a Google ID token, creating the identity
// and provider link on first sign-in.
func (srv *accountService) GoogleSignIn(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	if srv.oauthVerifier == nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthUnavailable, "google sign-in is not configured")
	}

	srv.log(ctx).Info("Handling Google sign-in")

	oauthUser, err := srv.oauthVerifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "failed to verify Google ID token")
	}

	var identity *entity.Identity
	var firstSignIn bool
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		identity, firstSignIn, err = srv.findOrCreateFederatedIdentity(ctx, repos.IdentityRepo(), oauthUser)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign-in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google sign-in transaction")
	}

	session, err := srv.issueTokens(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if err := srv.persistSession(ctx, identity.ID, session.RefreshToken); err != nil {
		return nil, err
	}

	srv.recordSignIn(ctx, identity)
	srv.publishSessionEvent(ctx, service.SessionSignedIn, identity.ID, session, false)

	action := service.AuditActionSignedIn
	if firstSignIn {
		action = service.AuditActionSignedUp
	}
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    identity.ID.String(),
		Action:     action,
		Resource:   "identity",
		ResourceID: identity.ID.String(),
		Metadata:   map[string]any{"provider": entity.ProviderGoogle.String()},
	})

	return &usecase.AuthOutput{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Identity:     identity,
	}, nil
}

// findOrCreateFederatedIdentity resolves the Google subject to a local
// identity: by provider link first, then by email (linking the account), and
// finally by creating a fresh identity.
func (srv *accountService) findOrCreateFederatedIdentity(ctx context.Context, identities repository.IdentityRepository, oauthUser *service.OAuthUser) (*entity.Identity, bool, error) {
	federated, err := identities.FindFederated(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		identity, findErr := identities.FindByID(ctx, federated.IdentityID)
		if findErr != nil {
			return nil, false, errors.Wrap(findErr, "failed to load linked identity")
		}

		return identity, false, nil
	}
	if !errors.Is(err, repository.ErrFederatedIdentityNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up provider link")
	}

	email := normalizeEmail(oauthUser.Email)
	identity, err := identities.FindByEmail(ctx, email)
	if err == nil {
		// Existing password account: attach the provider link and trust the
		// provider's email verification.
		if confirmErr := srv.confirmFromProvider(ctx, identities, identity, oauthUser); confirmErr != nil {
			return nil, false, confirmErr
		}

		return identity, false, srv.linkFederated(ctx, identities, identity.ID, oauthUser)
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up identity by email")
	}

	identity = &entity.Identity{
		ID:       uuid.New(),
		Email:    email,
		Metadata: &entity.SignupMetadata{FullName: oauthUser.Name},
	}
	if oauthUser.EmailVerified {
		now := time.Now()
		identity.EmailConfirmedAt = &now
	}
	if err := identities.Create(ctx, identity); err != nil {
		return nil, false, errors.Wrap(err, "create federated identity")
	}

	return identity, true, srv.linkFederated(ctx, identities, identity.ID, oauthUser)
}

func (srv *accountService) linkFederated(ctx context.Context, identities repository.IdentityRepository, identityID uuid.UUID, oauthUser *service.OAuthUser) error {
	federated := &entity.FederatedIdentity{
		ID:             uuid.New(),
		IdentityID:     identityID,
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
	}

	return errors.Wrap(identities.CreateFederated(ctx, federated), "create provider link")
}

func (srv *accountService) confirmFromProvider(ctx context.Context, identities repository.IdentityRepository, identity *entity.Identity, oauthUser *service.OAuthUser) error {
	if identity.EmailConfirmed() || !oauthUser.EmailVerified {
		return nil
	}

	now := time.Now()
	identity.EmailConfirmedAt = &now
	identity.ConfirmationToken = ""

	return errors.Wrap(identities.Update(ctx, identity), "confirm email from provider")
}

// RefreshToken rotates a refresh token into a fresh pair. The old session is
// revoked in the same transaction that records the new one; presenting an
// already-revoked token ends every session for that identity.
func (srv *accountService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting to refresh token pair")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}
	if claims.Type != "refresh" {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token is not a refresh token")
	}

	roles := srv.lookupRoleClaims(ctx, claims.IdentityID)

	var identity *entity.Identity
	var session *entity.SessionToken
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		sessions := repos.SessionRepo()

		stored, err := sessions.FindSessionByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrSessionExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh failed")
			}
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh session not found")
			}

			return errors.Wrap(err, "failed to load refresh session")
		}

		if stored.IdentityID != claims.IdentityID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session does not belong to token subject")
		}

		if stored.Revoked {
			// A revoked token coming back means it leaked after rotation.
			srv.log(ctx).Warn("Refresh token reuse detected, ending all sessions",
				slog.String("identityID", stored.IdentityID.String()))
			if err := sessions.DeleteSessionsByIdentityID(ctx, stored.IdentityID); err != nil {
				return errors.Wrap(err, "failed to end sessions after token reuse")
			}

			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token has been rotated out")
		}

		identity, err = repos.IdentityRepo().FindByID(ctx, claims.IdentityID)
		if err != nil {
			return errors.Wrap(err, "failed to load identity")
		}

		access, refresh, err := srv.tokenService.GenerateTokens(identity.ID, roles)
		if err != nil {
			return errors.Wrap(err, "failed to generate token pair")
		}

		if err := sessions.RevokeSession(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke rotated session")
		}

		next := &entity.RefreshSession{
			ID:         uuid.New(),
			IdentityID: identity.ID,
			TokenHash:  srv.tokenService.HashToken(refresh),
			ExpiresAt:  time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := sessions.CreateSession(ctx, next); err != nil {
			return errors.Wrap(err, "failed to create rotated session")
		}

		session = &entity.SessionToken{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresAt:    time.Now().Add(srv.tokenService.GetAccessTokenDuration()),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute token refresh transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token refresh transaction")
	}

	srv.publishSessionEvent(ctx, service.SessionTokenRefreshed, identity.ID, session, false)

	return &usecase.AuthOutput{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Identity:     identity,
	}, nil
}

// Logout ends the presented refresh session, or every session when
// AllDevices is set, and revokes the access token ahead of its expiry.
func (srv *accountService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting logout",
		slog.String("identityID", input.IdentityID.String()), slog.Bool("allDevices", input.AllDevices))

	if input.AllDevices {
		if err := srv.sessionRepo.DeleteSessionsByIdentityID(ctx, input.IdentityID); err != nil {
			return errors.Wrap(err, "failed to delete sessions")
		}
	} else if input.RefreshToken != "" {
		err := srv.sessionRepo.DeleteSessionByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to delete session")
		}
	}

	srv.revokeAccessToken(ctx, input.AccessToken)
	srv.publishSessionEvent(ctx, service.SessionSignedOut, input.IdentityID, nil, false)
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    input.IdentityID.String(),
		Action:     service.AuditActionSignedOut,
		Resource:   "identity",
		ResourceID: input.IdentityID.String(),
		Metadata:   map[string]any{"all_devices": input.AllDevices},
	})

	srv.log(ctx).Info("Successfully logged out", slog.String("identityID", input.IdentityID.String()))

	return nil
}

// revokeAccessToken blacklists the token for its remaining lifetime. Without
// a configured blacklist the token simply ages out.
func (srv *accountService) revokeAccessToken(ctx context.Context, accessToken string) {
	if srv.blacklist == nil || accessToken == "" {
		return
	}

	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		// An invalid or already-expired token needs no blacklist entry.
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}

	if err := srv.blacklist.Revoke(ctx, accessToken, ttl); err != nil {
		srv.log(ctx).Warn("Failed to blacklist access token", slog.Any("error", err))
	}
}

// VerifyEmail consumes a confirmation token and marks the identity verified.
// The forced identity_updated event makes the listener re-resolve, which
// flips partner onboarding.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "empty verification token")
	}

	var identity *entity.Identity
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		identities := repos.IdentityRepo()

		var findErr error
		identity, findErr = identities.FindByConfirmationToken(ctx, token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrIdentityNotFound) {
				return errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "verification failed")
			}

			return errors.Wrap(findErr, "failed to look up confirmation token")
		}

		now := time.Now()
		identity.EmailConfirmedAt = &now
		identity.ConfirmationToken = ""

		return errors.Wrap(identities.Update(ctx, identity), "confirm email")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute email verification transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	srv.log(ctx).Info("Email verified", slog.String("identityID", identity.ID.String()))
	srv.publishSessionEvent(ctx, service.SessionIdentityUpdated, identity.ID, nil, true)
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    identity.ID.String(),
		Action:     service.AuditActionEmailVerified,
		Resource:   "identity",
		ResourceID: identity.ID.String(),
	})

	return nil
}

// ResendVerification regenerates the confirmation token and resends the
// mail. Unknown and already-confirmed addresses return success so the
// endpoint cannot be used to probe for accounts.
func (srv *accountService) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	var identity *entity.Identity
	token := newConfirmationToken()
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		identities := repos.IdentityRepo()

		found, findErr := identities.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrIdentityNotFound) {
				return nil
			}

			return errors.Wrap(findErr, "failed to look up identity")
		}
		if found.EmailConfirmed() {
			return nil
		}

		now := time.Now()
		found.ConfirmationToken = token
		found.ConfirmationSentAt = &now
		if err := identities.Update(ctx, found); err != nil {
			return errors.Wrap(err, "update confirmation token")
		}
		identity = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute resend verification transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute resend verification transaction")
	}

	if identity == nil {
		srv.log(ctx).Info("Resend requested for unknown or confirmed address", slog.String("email", email))

		return nil
	}

	srv.sendVerificationMail(ctx, identity.Email, token)

	return nil
}

// --- Shared helpers ---

// loadIdentityByEmail reads from the primary in a short transaction so a
// fresh signup is immediately loginable despite replica lag.
func (srv *accountService) loadIdentityByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identity *entity.Identity

	if err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var findErr error
		identity, findErr = repos.IdentityRepo().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrIdentityNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find identity")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login lookup transaction")
	}

	return identity, nil
}

// issueTokens generates a token pair stamped with the profile's role claim
// when one resolves in time.
func (srv *accountService) issueTokens(ctx context.Context, identityID uuid.UUID) (*entity.SessionToken, error) {
	roles := srv.lookupRoleClaims(ctx, identityID)

	access, refresh, err := srv.tokenService.GenerateTokens(identityID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	return &entity.SessionToken{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(srv.tokenService.GetAccessTokenDuration()),
	}, nil
}

// lookupRoleClaims resolves the role claim best-effort. New signups have no
// profile yet; their tokens go out without roles and the auth middleware
// falls back to a live lookup.
func (srv *accountService) lookupRoleClaims(ctx context.Context, identityID uuid.UUID) []string {
	if srv.resolver == nil {
		return nil
	}

	role, err := srv.resolver.LookupRole(ctx, identityID)
	if err != nil {
		srv.log(ctx).Warn("Role lookup failed while issuing tokens",
			slog.String("identityID", identityID.String()), slog.Any("error", err))

		return nil
	}
	if role == "" {
		return nil
	}

	return []string{role.String()}
}

// persistSession stores the refresh session, enforcing the concurrent
// session limit inside one short transaction when a limit is configured.
func (srv *accountService) persistSession(ctx context.Context, identityID uuid.UUID, refreshToken string) error {
	session := &entity.RefreshSession{
		ID:         uuid.New(),
		IdentityID: identityID,
		TokenHash:  srv.tokenService.HashToken(refreshToken),
		ExpiresAt:  time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions > 0 {
		if err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			sessions := repos.SessionRepo()

			active, err := sessions.CountActiveSessionsByIdentityID(ctx, identityID)
			if err != nil {
				return errors.Wrap(err, "count active sessions")
			}
			if active >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "session limit reached")
			}

			return errors.Wrap(sessions.CreateSession(ctx, session), "create refresh session")
		}); err != nil {
			return errors.Wrap(err, "failed to execute session creation transaction")
		}

		return nil
	}

	if err := srv.sessionRepo.CreateSession(ctx, session); err != nil {
		return errors.Wrap(err, "failed to create refresh session")
	}

	return nil
}

// recordSignIn stamps the identity's last sign-in time, best-effort.
func (srv *accountService) recordSignIn(ctx context.Context, identity *entity.Identity) {
	now := time.Now()
	identity.LastSignInAt = &now
	if err := srv.identityRepo.Update(ctx, identity); err != nil {
		srv.log(ctx).Warn("Failed to record sign-in time",
			slog.String("identityID", identity.ID.String()), slog.Any("error", err))
	}
}

// sendVerificationMail delivers the confirmation link, or logs the token in
// environments with no mail transport.
func (srv *accountService) sendVerificationMail(ctx context.Context, email, token string) {
	if !srv.emailSender.IsConfigured() {
		srv.log(ctx).Info("Mail transport not configured, verification token issued",
			slog.String("email", email), slog.String("token", token))

		return
	}

	if err := srv.emailSender.SendVerificationEmail(ctx, email, token); err != nil {
		srv.log(ctx).Warn("Failed to send verification mail",
			slog.String("email", email), slog.Any("error", err))
	}
}

// publishSessionEvent hands an authentication transition to the session
// listener. A full bus is logged, not retried: the listener re-resolves on
// the next event anyway.
func (srv *accountService) publishSessionEvent(ctx context.Context, kind service.SessionEventKind, identityID uuid.UUID, session *entity.SessionToken, force bool) {
	if srv.bus == nil {
		return
	}

	event := service.SessionEvent{
		Kind:       kind,
		IdentityID: identityID,
		Session:    session,
		Force:      force,
		OccurredAt: time.Now(),
	}
	if err := srv.bus.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session event",
			slog.String("kind", string(kind)), slog.Any("error", err))
	}
}

func (srv *accountService) emitAudit(ctx context.Context, event *service.AuditEvent) {
	publishAuditAsync(ctx, srv.publisher, srv.logger, event)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newConfirmationToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
