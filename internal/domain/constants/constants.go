package constants

// Environments
const (
	EnvDevelop    = "development"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Account cleanup reasons
const (
	CleanupReasonProfileInsertFailed = "profile_insert_failed"
)
