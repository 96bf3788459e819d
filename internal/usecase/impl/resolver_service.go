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
	"unigate/internal/domain/naming"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRoleLookupTimeout = 3 * time.Second
	auditPublishTimeout      = 5 * time.Second

	defaultTenantSlug = "unigate"
	defaultTenantName = "UniGate"

	unknownCountry = "Unknown"
)

// resolverService implements the ResolverUsecase interface. It owns the
// fetch, repair, and tenant-isolation pipeline that turns an authenticated
// identity into its application profile.
type resolverService struct {
	txManager         repository.TransactionManager
	profileRepo       repository.ProfileRepository
	tenantRepo        repository.TenantRepository
	universityRepo    repository.UniversityRepository
	directory         service.IdentityDirectory
	publisher         service.EventPublisher
	defaultSlug       string
	defaultName       string
	emailFromDomain   string
	sharedSlugs       map[string]struct{}
	roleLookupTimeout time.Duration
	logger            *slog.Logger
}

// ResolverServiceParams holds dependencies for resolverService, injected by Fx.
type ResolverServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	TenantRepo     repository.TenantRepository
	UniversityRepo repository.UniversityRepository
	Directory      service.IdentityDirectory
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewResolverService is the constructor for resolverService.
func NewResolverService(params ResolverServiceParams) usecase.ResolverUsecase {
	srv := &resolverService{
		txManager:         params.TxManager,
		profileRepo:       params.ProfileRepo,
		tenantRepo:        params.TenantRepo,
		universityRepo:    params.UniversityRepo,
		directory:         params.Directory,
		publisher:         params.Publisher,
		defaultSlug:       defaultTenantSlug,
		defaultName:       defaultTenantName,
		roleLookupTimeout: defaultRoleLookupTimeout,
		logger:            params.Logger,
	}

	if params.Config != nil {
		if tenancy := params.Config.Tenancy; tenancy != nil {
			if tenancy.DefaultSlug != "" {
				srv.defaultSlug = tenancy.DefaultSlug
			}
			if tenancy.DefaultName != "" {
				srv.defaultName = tenancy.DefaultName
			}
			srv.emailFromDomain = tenancy.EmailFromDomain
		}
		if resolver := params.Config.Resolver; resolver != nil && resolver.RoleLookupTimeout > 0 {
			srv.roleLookupTimeout = resolver.RoleLookupTimeout
		}

		for _, slug := range params.Config.SharedTenantSlugs() {
			srv.addSharedSlug(slug)
		}
	}
	srv.addSharedSlug(srv.defaultSlug)

	return srv
}

func (srv *resolverService) addSharedSlug(slug string) {
	if slug == "" {
		return
	}
	if srv.sharedSlugs == nil {
		srv.sharedSlugs = make(map[string]struct{})
	}
	srv.sharedSlugs[slug] = struct{}{}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resolverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve fetches the profile for an identity, repairing a missing row once
// and re-fetching once. Every failure except a partner tenant bootstrap
// resolves to (nil, nil) rather than an error.
func (srv *resolverService) Resolve(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	identity := srv.lookupIdentity(ctx, identityID)

	profile, err := srv.profileRepo.FindByID(ctx, identityID)
	if err == nil {
		return srv.finishResolved(ctx, identityID, profile, identity), nil
	}

	if !isRecoverableFetchError(err) {
		srv.log(ctx).Error("Profile fetch failed with an unrecoverable error",
			slog.String("identityID", identityID.String()), slog.Any("error", err))

		return nil, nil
	}

	if identity == nil {
		srv.log(ctx).Warn("Cannot repair a profile without its identity record",
			slog.String("identityID", identityID.String()))

		return nil, nil
	}

	srv.log(ctx).Info("Profile missing, starting repair",
		slog.String("identityID", identityID.String()), slog.Any("fetchError", err))

	if repairErr := srv.repairProfile(ctx, identity); repairErr != nil {
		return nil, errors.Wrap(repairErr, "profile repair failed")
	}

	repaired, err := srv.profileRepo.FindByID(ctx, identityID)
	if err != nil {
		srv.log(ctx).Error("Re-fetch after repair failed, giving up",
			slog.String("identityID", identityID.String()), slog.Any("error", err))

		return nil, nil
	}

	return srv.finishResolved(ctx, identityID, repaired, identity), nil
}

// LookupRole returns the profile's role, bounded by the configured timeout.
func (srv *resolverService) LookupRole(ctx context.Context, identityID uuid.UUID) (entity.Role, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, srv.roleLookupTimeout)
	defer cancel()

	role, err := srv.profileRepo.GetRole(lookupCtx, identityID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Role lookup degraded to an empty result",
				slog.String("identityID", identityID.String()), slog.Any("error", err))

			return "", nil
		}

		return "", errors.Wrap(err, "failed to look up profile role")
	}

	return role, nil
}

// isRecoverableFetchError reports whether a profile fetch failure should
// trigger repair. Only a missing row or a permission-style denial qualifies.
func isRecoverableFetchError(err error) bool {
	return errors.Is(err, repository.ErrProfileNotFound) ||
		errors.Is(err, domainerrors.ErrForbidden)
}

// lookupIdentity reads the identity record best-effort; resolution proceeds
// without metadata when the directory cannot serve it.
func (srv *resolverService) lookupIdentity(ctx context.Context, identityID uuid.UUID) *entity.Identity {
	identity, err := srv.directory.GetIdentity(ctx, identityID)
	if err != nil {
		srv.log(ctx).Warn("Identity lookup failed during resolution",
			slog.String("identityID", identityID.String()), slog.Any("error", err))

		return nil
	}

	return identity
}

// finishResolved runs the mandatory ownership check and the post-processing
// pipeline on a successfully fetched profile.
func (srv *resolverService) finishResolved(ctx context.Context, requestedID uuid.UUID, profile *entity.Profile, identity *entity.Identity) *entity.Profile {
	if !profile.BelongsTo(requestedID) {
		srv.log(ctx).Error("Fetched profile does not belong to the requesting identity",
			slog.String("requestedID", requestedID.String()),
			slog.String("returnedID", profile.ID.String()))
		srv.emitAudit(ctx, &service.AuditEvent{
			ActorID:    requestedID.String(),
			Action:     service.AuditActionIDMismatch,
			Resource:   "profile",
			ResourceID: profile.ID.String(),
			Metadata:   map[string]any{"requested_id": requestedID.String()},
		})

		return nil
	}

	srv.backfillCountry(ctx, profile, identity)
	srv.applyPartnerVerification(ctx, profile, identity)

	return srv.auditTenantIsolation(ctx, profile, identity)
}

// backfillCountry persists the signup-metadata country onto a profile that
// has none. The returned profile always reflects stored state.
func (srv *resolverService) backfillCountry(ctx context.Context, profile *entity.Profile, identity *entity.Identity) {
	if profile.Country != "" || identity == nil || identity.Metadata == nil || identity.Metadata.Country == "" {
		return
	}

	profile.Country = identity.Metadata.Country
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Warn("Country backfill failed",
			slog.String("profileID", profile.ID.String()), slog.Any("error", err))
		profile.Country = ""
	}
}

// applyPartnerVerification completes partner onboarding once the identity's
// email is confirmed. The transition is one-way: an identity that later shows
// no confirmation timestamp never reverts the flags.
func (srv *resolverService) applyPartnerVerification(ctx context.Context, profile *entity.Profile, identity *entity.Identity) {
	if !profile.IsPartner() || identity == nil || !identity.EmailConfirmed() {
		return
	}
	if profile.Onboarded && profile.PartnerEmailVerified {
		return
	}

	profile.Onboarded = true
	profile.PartnerEmailVerified = true
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Warn("Failed to persist partner verification flags",
			slog.String("profileID", profile.ID.String()), slog.Any("error", err))
	}
}

// --- Profile repair ---

// repairProfile creates the missing profile row plus its tenant, role record,
// and (for isolating roles) University. Partner tenant bootstrap failures are
// the only error propagated; everything else is logged and swallowed so the
// caller's re-fetch decides the outcome.
func (srv *resolverService) repairProfile(ctx context.Context, identity *entity.Identity) error {
	meta := identity.Metadata
	if meta == nil {
		meta = &entity.SignupMetadata{}
	}
	role := naming.NormalizeRole(meta.RoleHint())
	log := srv.log(ctx)

	log.Info("Repairing missing profile",
		slog.String("identityID", identity.ID.String()), slog.String("role", role.String()))

	tenant, err := srv.resolveTenantForRole(ctx, identity, meta, role)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTenantIsolationFailed) {
			log.Error("Partner tenant bootstrap failed, aborting repair",
				slog.String("identityID", identity.ID.String()), slog.Any("error", err))
			srv.emitAudit(ctx, &service.AuditEvent{
				ActorID:    identity.ID.String(),
				Action:     service.AuditActionIsolationFailed,
				Resource:   "profile",
				ResourceID: identity.ID.String(),
				Metadata:   map[string]any{"stage": "signup"},
			})

			return err
		}

		log.Error("Tenant resolution failed during repair",
			slog.String("identityID", identity.ID.String()), slog.Any("error", err))

		return nil
	}

	var created *entity.Profile
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		username, err := srv.deriveUsername(ctx, repos.ProfileRepo(), identity, meta)
		if err != nil {
			return err
		}

		referrerID := srv.resolveReferrer(ctx, repos.ProfileRepo(), meta)

		if role.RequiresIsolation() {
			if err := srv.createUniversityForSignup(ctx, repos.UniversityRepo(), tenant, identity, meta); err != nil {
				return err
			}
		}

		profile := &entity.Profile{
			ID:         identity.ID,
			TenantID:   tenant.ID,
			Role:       role,
			FullName:   meta.DisplayName(""),
			Email:      firstNonEmpty(meta.Email, identity.Email),
			Phone:      firstNonEmpty(meta.Phone, identity.Phone),
			Country:    meta.Country,
			Username:   username,
			ReferredBy: referrerID,
		}
		if err := repos.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "create profile")
		}

		if err := srv.createMemberRecord(ctx, repos.MemberRepo(), profile); err != nil {
			return err
		}

		created = profile

		return nil
	})
	if err != nil {
		log.Error("Profile repair transaction failed",
			slog.String("identityID", identity.ID.String()), slog.Any("error", err))

		return nil
	}

	log.Info("Repaired missing profile",
		slog.String("identityID", identity.ID.String()),
		slog.String("username", created.Username),
		slog.String("tenantID", tenant.ID.String()))
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    identity.ID.String(),
		Action:     service.AuditActionProfileRepaired,
		Resource:   "profile",
		ResourceID: created.ID.String(),
		Metadata: map[string]any{
			"role":      role.String(),
			"username":  created.Username,
			"tenant_id": tenant.ID.String(),
		},
	})

	return nil
}

// deriveUsername normalizes the requested username or synthesizes one from
// the identity id, appending the id-derived suffix on collision.
func (srv *resolverService) deriveUsername(ctx context.Context, profiles repository.ProfileRepository, identity *entity.Identity, meta *entity.SignupMetadata) (string, error) {
	candidate := naming.FormatUsername(meta.Username)
	if candidate == "" {
		candidate = naming.SynthesizeUsername(identity.ID)
	}

	taken, err := profiles.UsernameExists(ctx, candidate)
	if err != nil {
		return "", errors.Wrap(err, "check username availability")
	}
	if taken {
		candidate = candidate + "_" + naming.UsernameSuffix(identity.ID)
	}

	return candidate, nil
}

// resolveReferrer links the new profile to its referrer, preferring the
// explicit id over a username lookup. Both paths are best-effort.
func (srv *resolverService) resolveReferrer(ctx context.Context, profiles repository.ProfileRepository, meta *entity.SignupMetadata) *uuid.UUID {
	if meta.ReferrerID != nil {
		referrer, err := profiles.FindByID(ctx, *meta.ReferrerID)
		if err == nil {
			return &referrer.ID
		}
		srv.log(ctx).Debug("Referrer id did not resolve",
			slog.String("referrerID", meta.ReferrerID.String()), slog.Any("error", err))
	}

	if meta.ReferredBy != "" {
		username := naming.FormatUsername(meta.ReferredBy)
		if username == "" {
			return nil
		}
		referrer, err := profiles.FindByUsername(ctx, username)
		if err == nil {
			return &referrer.ID
		}
		srv.log(ctx).Debug("Referrer username did not resolve",
			slog.String("username", username), slog.Any("error", err))
	}

	return nil
}

// createMemberRecord writes the role-specific record for roles that carry one.
func (srv *resolverService) createMemberRecord(ctx context.Context, members repository.MemberRepository, profile *entity.Profile) error {
	switch profile.Role {
	case entity.RoleStudent:
		student := &entity.Student{ProfileID: profile.ID, Status: "active"}

		return errors.Wrap(members.CreateStudent(ctx, student), "create student record")
	case entity.RoleAgent:
		agent := &entity.Agent{ProfileID: profile.ID, VerificationStatus: entity.AgentVerificationPending}

		return errors.Wrap(members.CreateAgent(ctx, agent), "create agent record")
	default:
		return nil
	}
}

// --- Tenant resolution ---

// resolveTenantForRole resolves the tenant a new profile attaches to.
// Metadata hints win for every role; beyond that, isolating roles get a
// brand-new isolated tenant while everyone else shares the default one.
//
// Tenant creation runs before the repair transaction: a failed insert aborts
// an open Postgres transaction, which would break the slug-collision retry.
// An orphaned tenant left behind by a later rollback is an accepted,
// operator-visible anomaly.
func (srv *resolverService) resolveTenantForRole(ctx context.Context, identity *entity.Identity, meta *entity.SignupMetadata, role entity.Role) (*entity.Tenant, error) {
	if tenant := srv.tenantFromHints(ctx, meta); tenant != nil {
		return tenant, nil
	}

	if role.RequiresIsolation() {
		tenant, err := srv.createIsolatedTenant(ctx, isolationSeed(meta, meta.DisplayName(meta.Username)))
		if err != nil {
			return nil, err
		}

		return tenant, nil
	}

	defaults := &entity.Tenant{
		ID:        uuid.New(),
		Slug:      srv.defaultSlug,
		Name:      srv.defaultName,
		EmailFrom: srv.emailFrom(srv.defaultSlug),
		Active:    true,
	}
	tenant, err := srv.tenantRepo.GetOrCreateBySlug(ctx, defaults)
	if err != nil {
		return nil, errors.Wrap(err, "resolve default tenant")
	}

	return tenant, nil
}

// tenantFromHints resolves the metadata tenant reference, id first, then
// slug. Misses and inactive tenants fall through to role-based resolution.
func (srv *resolverService) tenantFromHints(ctx context.Context, meta *entity.SignupMetadata) *entity.Tenant {
	if meta.TenantID != nil {
		tenant, err := srv.tenantRepo.FindByID(ctx, *meta.TenantID)
		if err == nil && tenant.Active {
			return tenant
		}
		srv.log(ctx).Warn("Metadata tenant id did not resolve to an active tenant",
			slog.String("tenantID", meta.TenantID.String()), slog.Any("error", err))
	}

	if meta.TenantSlug != "" {
		tenant, err := srv.tenantRepo.FindBySlug(ctx, meta.TenantSlug)
		if err == nil && tenant.Active {
			return tenant
		}
		srv.log(ctx).Warn("Metadata tenant slug did not resolve to an active tenant",
			slog.String("slug", meta.TenantSlug), slog.Any("error", err))
	}

	return nil
}

// createIsolatedTenant creates a tenant under a generated globally-unique
// slug, retrying exactly once with the maximally-unique fallback slug. A
// second failure surfaces as ErrTenantIsolationFailed.
func (srv *resolverService) createIsolatedTenant(ctx context.Context, seed string) (*entity.Tenant, error) {
	name := strings.TrimSpace(seed)
	if name == "" {
		name = "New Organization"
	}

	slug := naming.NewIsolatedSlug(seed)
	tenant := &entity.Tenant{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		EmailFrom: srv.emailFrom(slug),
		Active:    true,
	}
	err := srv.tenantRepo.Create(ctx, tenant)
	if err == nil {
		return tenant, nil
	}

	srv.log(ctx).Warn("Isolated tenant creation failed, retrying with fallback slug",
		slog.String("slug", slug), slog.Any("error", err))

	fallback := naming.FallbackSlug()
	retry := &entity.Tenant{
		ID:        uuid.New(),
		Slug:      fallback,
		Name:      name,
		EmailFrom: srv.emailFrom(fallback),
		Active:    true,
	}
	if err := srv.tenantRepo.Create(ctx, retry); err != nil {
		return nil, domainerrors.ErrTenantIsolationFailed.WrapMessage("both slug attempts failed")
	}

	return retry, nil
}

func (srv *resolverService) emailFrom(slug string) string {
	if srv.emailFromDomain == "" {
		return ""
	}

	return slug + "@" + srv.emailFromDomain
}

// --- Tenant isolation audit ---

// auditTenantIsolation detects a partner profile sharing a tenant with other
// organizations and migrates it onto a fresh isolated tenant. Failures never
// propagate; the profile degrades to IsolationFailed instead.
func (srv *resolverService) auditTenantIsolation(ctx context.Context, profile *entity.Profile, identity *entity.Identity) *entity.Profile {
	if !profile.IsPartner() || profile.TenantID == uuid.Nil {
		return profile
	}

	log := srv.log(ctx)

	sharedTenant := false
	tenant, err := srv.tenantRepo.FindByID(ctx, profile.TenantID)
	if err != nil {
		// Fail toward isolation: an unreadable tenant is treated as shared.
		log.Warn("Tenant lookup failed during isolation audit",
			slog.String("tenantID", profile.TenantID.String()), slog.Any("error", err))
		sharedTenant = true
	} else if _, shared := srv.sharedSlugs[tenant.Slug]; shared {
		sharedTenant = true
	}

	var otherPartners int64
	if count, err := srv.profileRepo.CountPartnersOnTenant(ctx, profile.TenantID, profile.ID); err != nil {
		log.Warn("Partner count failed during isolation audit",
			slog.String("tenantID", profile.TenantID.String()), slog.Any("error", err))
	} else {
		otherPartners = count
	}

	if !sharedTenant && otherPartners == 0 {
		srv.ensureUniversityExists(ctx, profile, identity)

		return profile
	}

	log.Info("Partner profile requires tenant isolation",
		slog.String("profileID", profile.ID.String()),
		slog.Bool("sharedTenant", sharedTenant),
		slog.Int64("otherPartners", otherPartners))

	return srv.migrateToIsolatedTenant(ctx, profile, identity)
}

// ensureUniversityExists backfills the University record for an already
// isolated partner tenant through the idempotent resolve-or-create call.
func (srv *resolverService) ensureUniversityExists(ctx context.Context, profile *entity.Profile, identity *entity.Identity) {
	university := newUniversityForProfile(profile, identity, profile.TenantID)
	if _, err := srv.universityRepo.GetOrCreateByTenant(ctx, university); err != nil {
		srv.log(ctx).Warn("Failed to ensure university for partner tenant",
			slog.String("tenantID", profile.TenantID.String()), slog.Any("error", err))
	}
}

// migrateToIsolatedTenant moves a partner profile onto a freshly created
// tenant with its own University. The slug ladder runs before the write
// transaction for the same reason as in repair.
func (srv *resolverService) migrateToIsolatedTenant(ctx context.Context, profile *entity.Profile, identity *entity.Identity) *entity.Profile {
	log := srv.log(ctx)

	seed := isolationSeed(identityMetadata(identity), firstNonEmpty(profile.FullName, profile.Username))
	tenant, err := srv.createIsolatedTenant(ctx, seed)
	if err != nil {
		log.Error("Could not provision an isolated tenant",
			slog.String("profileID", profile.ID.String()), slog.Any("error", err))
		srv.flagIsolationFailed(ctx, profile)

		return profile
	}

	previousTenantID := profile.TenantID
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		university := newUniversityForProfile(profile, identity, tenant.ID)
		if _, err := repos.UniversityRepo().GetOrCreateByTenant(ctx, university); err != nil {
			return errors.Wrap(err, "create university for isolated tenant")
		}

		return errors.Wrap(repos.ProfileRepo().UpdateTenant(ctx, profile.ID, tenant.ID),
			"move profile to isolated tenant")
	})
	if err != nil {
		log.Error("Tenant migration failed",
			slog.String("profileID", profile.ID.String()),
			slog.String("newTenantID", tenant.ID.String()),
			slog.Any("error", err))
		srv.flagIsolationFailed(ctx, profile)

		return profile
	}

	profile.TenantID = tenant.ID
	log.Info("Migrated partner profile to isolated tenant",
		slog.String("profileID", profile.ID.String()),
		slog.String("fromTenantID", previousTenantID.String()),
		slog.String("toTenantID", tenant.ID.String()))
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    profile.ID.String(),
		Action:     service.AuditActionTenantIsolated,
		Resource:   "tenant",
		ResourceID: tenant.ID.String(),
		Metadata: map[string]any{
			"profile_id":     profile.ID.String(),
			"from_tenant_id": previousTenantID.String(),
			"slug":           tenant.Slug,
		},
	})

	return profile
}

// flagIsolationFailed annotates the profile so callers surface remediation
// instead of treating it as healthy.
func (srv *resolverService) flagIsolationFailed(ctx context.Context, profile *entity.Profile) {
	profile.IsolationFailed = true
	srv.emitAudit(ctx, &service.AuditEvent{
		ActorID:    profile.ID.String(),
		Action:     service.AuditActionIsolationFailed,
		Resource:   "profile",
		ResourceID: profile.ID.String(),
		Metadata:   map[string]any{"tenant_id": profile.TenantID.String()},
	})
}

// --- University builders ---

// createUniversityForSignup creates the blank University during repair of an
// isolating-role profile. An existing record on the tenant is left alone with
// a warning, since it may indicate tenant reuse.
func (srv *resolverService) createUniversityForSignup(ctx context.Context, universities repository.UniversityRepository, tenant *entity.Tenant, identity *entity.Identity, meta *entity.SignupMetadata) error {
	_, err := universities.FindByTenantID(ctx, tenant.ID)
	if err == nil {
		srv.log(ctx).Warn("Tenant already has a University record",
			slog.String("tenantID", tenant.ID.String()), slog.String("slug", tenant.Slug))

		return nil
	}
	if !errors.Is(err, repository.ErrUniversityNotFound) {
		return errors.Wrap(err, "check for existing university")
	}

	name := meta.UniversityName
	if name == "" {
		name = naming.PlaceholderUniversityName(meta.DisplayName(""))
	}

	university := &entity.University{
		ID:       uuid.New(),
		TenantID: tenant.ID,
		Name:     name,
		Country:  firstNonEmpty(meta.Country, unknownCountry),
		ProfileDetails: &entity.UniversityProfileDetails{
			PrimaryContact: &entity.UniversityContact{
				Name:  meta.DisplayName(""),
				Email: firstNonEmpty(meta.Email, identity.Email),
				Phone: meta.Phone,
			},
		},
	}

	return errors.Wrap(universities.Create(ctx, university), "create university")
}

// newUniversityForProfile builds the University created alongside an isolated
// tenant during audit migration. Contact fields come from the existing
// profile; all descriptive fields stay blank.
func newUniversityForProfile(profile *entity.Profile, identity *entity.Identity, tenantID uuid.UUID) *entity.University {
	meta := identityMetadata(identity)

	name := ""
	if meta != nil {
		name = meta.UniversityName
	}
	if name == "" {
		name = naming.PlaceholderUniversityName(profile.FullName)
	}

	email := profile.Email
	if email == "" && identity != nil {
		email = identity.Email
	}

	return &entity.University{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     name,
		Country:  firstNonEmpty(profile.Country, unknownCountry),
		ProfileDetails: &entity.UniversityProfileDetails{
			PrimaryContact: &entity.UniversityContact{
				Name:  profile.FullName,
				Email: email,
				Phone: profile.Phone,
			},
		},
	}
}

// isolationSeed picks the name an isolated tenant's slug is derived from.
func isolationSeed(meta *entity.SignupMetadata, fallback string) string {
	if meta != nil && meta.UniversityName != "" {
		return meta.UniversityName
	}

	return fallback
}

func identityMetadata(identity *entity.Identity) *entity.SignupMetadata {
	if identity == nil {
		return nil
	}

	return identity.Metadata
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func (srv *resolverService) emitAudit(ctx context.Context, event *service.AuditEvent) {
	publishAuditAsync(ctx, srv.publisher, srv.logger, event)
}
