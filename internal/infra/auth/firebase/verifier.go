// Package firebase verifies federated sign-in tokens through the Firebase
// Admin SDK. Clients authenticate against Firebase on device; the backend
// only ever sees the resulting ID token.
package firebase

import (
	"context"
	"log/slog"

	"unigate/config"
	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// tokenVerifier implements service.OAuthVerifier on top of the Firebase Auth client.
// Unlike a bare JWT decode, VerifyIDToken checks the signature against
// Google's published keys, the audience, and the expiry.
type tokenVerifier struct {
	client *fbauth.Client
	logger *slog.Logger
}

// NewTokenVerifier creates the Firebase-backed verifier. When the firebase
// config section is absent the feature is off and the constructor returns a
// nil verifier; callers treat that as "federated sign-in unavailable".
func NewTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &tokenVerifier{
		client: client,
		logger: logger,
	}, nil
}

// VerifyIDToken verifies a Firebase ID token and maps its claims onto the
// provider-neutral OAuthUser shape.
func (v *tokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.WarnContext(ctx, "Firebase ID token rejected", slog.String("error", err.Error()))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("firebase id token rejected")
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("token carries no email claim")
	}

	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	emailVerified, _ := token.Claims["email_verified"].(bool)

	return &service.OAuthUser{
		ID:            token.UID,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderGoogle,
		AvatarURL:     picture,
		EmailVerified: emailVerified,
	}, nil
}

// Provider returns the provider type this verifier handles.
func (v *tokenVerifier) Provider() entity.ProviderType {
	return entity.ProviderGoogle
}
