// Package constants holds shared domain constants.
package constants

const (
	// EnvDevelop marks a local development deployment. Push-auth checks and
	// other production-only guards are skipped in this environment.
	EnvDevelop = "develop"

	// PubSubProviderMemory selects the in-process change notifier.
	PubSubProviderMemory = "memory"
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
