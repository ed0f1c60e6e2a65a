package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvRequestTimeout  = "REQUEST_TIMEOUT"

	EnvLookupTimeout = "LOOKUP_TIMEOUT"
	EnvEnrichTimeout = "ENRICH_TIMEOUT"

	EnvRepresentBaseURL      = "REPRESENT_BASE_URL"
	EnvOpenParliamentBaseURL = "OPENPARLIAMENT_BASE_URL"
	EnvWhoIsMyRepBaseURL     = "WHOISMYREP_BASE_URL"
	EnvFiveCallsBaseURL      = "FIVECALLS_BASE_URL"

	EnvCALastResortFallback = "LOOKUP_CA_LAST_RESORT"

	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"
)
