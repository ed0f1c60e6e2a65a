package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"zip2mp/pkg/logger"
)

type Config struct {
	Port     string
	LogLevel string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration

	LookupTimeout time.Duration
	EnrichTimeout time.Duration

	RepresentBaseURL      string
	OpenParliamentBaseURL string
	WhoIsMyRepBaseURL     string
	FiveCallsBaseURL      string

	CALastResortFallback bool

	CORSAllowedOrigins []string

	KafkaBrokers []string
	KafkaTopic   string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		RequestTimeout:  getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		LookupTimeout: getEnvDuration(EnvLookupTimeout, DefaultLookupTimeout),
		EnrichTimeout: getEnvDuration(EnvEnrichTimeout, DefaultEnrichTimeout),

		RepresentBaseURL:      getEnvStr(EnvRepresentBaseURL, DefaultRepresentBaseURL),
		OpenParliamentBaseURL: getEnvStr(EnvOpenParliamentBaseURL, DefaultOpenParliamentBaseURL),
		WhoIsMyRepBaseURL:     getEnvStr(EnvWhoIsMyRepBaseURL, DefaultWhoIsMyRepBaseURL),
		FiveCallsBaseURL:      getEnvStr(EnvFiveCallsBaseURL, DefaultFiveCallsBaseURL),

		CALastResortFallback: getEnvBool(EnvCALastResortFallback, DefaultCALastResortFallback),

		CORSAllowedOrigins: getEnvSlice(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),

		KafkaBrokers: getEnvSlice(EnvKafkaBrokers, ""),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	for name, d := range map[string]time.Duration{
		"ReadTimeout":     cfg.ReadTimeout,
		"WriteTimeout":    cfg.WriteTimeout,
		"IdleTimeout":     cfg.IdleTimeout,
		"ShutdownTimeout": cfg.ShutdownTimeout,
		"RequestTimeout":  cfg.RequestTimeout,
		"LookupTimeout":   cfg.LookupTimeout,
		"EnrichTimeout":   cfg.EnrichTimeout,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got: %s", name, d))
		}
	}

	for name, base := range map[string]string{
		"RepresentBaseURL":      cfg.RepresentBaseURL,
		"OpenParliamentBaseURL": cfg.OpenParliamentBaseURL,
		"WhoIsMyRepBaseURL":     cfg.WhoIsMyRepBaseURL,
		"FiveCallsBaseURL":      cfg.FiveCallsBaseURL,
	} {
		if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("%s must be an absolute URL, got: %s", name, base))
		}
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		problems = append(problems, "KafkaTopic cannot be empty when KafkaBrokers is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"lookup_timeout", cfg.LookupTimeout,
		"enrich_timeout", cfg.EnrichTimeout,
		"represent_base_url", cfg.RepresentBaseURL,
		"openparliament_base_url", cfg.OpenParliamentBaseURL,
		"whoismyrep_base_url", cfg.WhoIsMyRepBaseURL,
		"fivecalls_base_url", cfg.FiveCallsBaseURL,
		"ca_last_resort_fallback", cfg.CALastResortFallback,
		"cors_allowed_origins", cfg.CORSAllowedOrigins,
		"kafka_enabled", len(cfg.KafkaBrokers) > 0,
	)
}

func getEnvStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	raw := getEnvStr(key, fallback)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
