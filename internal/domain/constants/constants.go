// Package constants holds shared constant values used across layers.
package constants

// Deployment environments.
const (
	// EnvDevelop is the local development environment.
	EnvDevelop = "develop"
	// EnvStaging is the pre-production environment.
	EnvStaging = "staging"
	// EnvProduction is the production environment.
	EnvProduction = "production"
)

// Pub/Sub provider selection for the audit event publisher.
const (
	// PubSubProviderNoop discards events; the default when unconfigured.
	PubSubProviderNoop = "noop"
	// PubSubProviderLocal posts events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
