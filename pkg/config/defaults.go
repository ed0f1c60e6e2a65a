package config

import "time"

const (
	DefaultPort     = "8000"
	DefaultLogLevel = "info"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 30 * time.Second

	// Primary and fallback lookups get the longer timeout; the best-effort
	// enrichment call gets the shorter one.
	DefaultLookupTimeout = 10 * time.Second
	DefaultEnrichTimeout = 5 * time.Second

	DefaultRepresentBaseURL      = "https://represent.opennorth.ca"
	DefaultOpenParliamentBaseURL = "https://api.openparliament.ca"
	DefaultWhoIsMyRepBaseURL     = "https://whoismyrepresentative.com"
	DefaultFiveCallsBaseURL      = "https://api.5calls.org"

	// The unfiltered OpenParliament fallback trades accuracy for
	// availability, so it ships disabled.
	DefaultCALastResortFallback = false

	DefaultCORSAllowedOrigins = "http://localhost:5173,http://localhost:3000"

	DefaultKafkaTopic = "lookup-events"
)
