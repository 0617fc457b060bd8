// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported values for AUTH_PROVIDER.
const (
	AuthProviderOIDC   = "oidc"
	AuthProviderKratos = "kratos"
	AuthProviderJWT    = "jwt"
)

// DefaultEmailClaim is the namespaced custom claim that carries the caller's email.
const DefaultEmailClaim = "https://app-contract-mgmt/email"

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// AuthProvider selects how bearer credentials are verified: oidc, kratos or jwt.
	AuthProvider string `mapstructure:"AUTH_PROVIDER"`
	// AuthIssuerURL is the OIDC issuer (e.g. https://tenant.us.auth0.com/). Required for oidc; checked as iss for jwt.
	AuthIssuerURL string `mapstructure:"AUTH_ISSUER_URL"`
	// AuthAudience is the expected aud claim (API identifier).
	AuthAudience string `mapstructure:"AUTH_AUDIENCE"`
	// AuthEmailClaim is the custom claim tried before the standard email claim.
	AuthEmailClaim string `mapstructure:"AUTH_EMAIL_CLAIM"`
	// AuthJWTPublicKey is the PEM-encoded public key or path to file; required for jwt.
	AuthJWTPublicKey string `mapstructure:"AUTH_JWT_PUBLIC_KEY"`
	// KratosPublicURL is the Ory Kratos public API base URL; required for kratos.
	KratosPublicURL string `mapstructure:"KRATOS_PUBLIC_URL"`

	// InviteTTL is how long a new invitation stays usable (e.g. "168h").
	InviteTTL string `mapstructure:"INVITE_TTL"`
	// InviteLookupRatePerMin caps invitation lookups/accepts per caller per minute. 0 disables the limit.
	InviteLookupRatePerMin int `mapstructure:"INVITE_LOOKUP_RATE_PER_MIN"`
	// RedisAddr enables the shared Redis rate limiter when set; otherwise limits are per process.
	RedisAddr string `mapstructure:"REDIS_ADDR"`
	// RedisPassword is the optional Redis password.
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// OTLPEndpoint is the OpenTelemetry collector endpoint. Empty means no export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext to the collector even for https endpoints.
	OTLPInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`

	// TelemetryKafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	TelemetryKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// TelemetryKafkaTopic is the Kafka topic for domain events.
	TelemetryKafkaTopic string `mapstructure:"TELEMETRY_KAFKA_TOPIC"`

	// Worker-only: Loki URL for the event worker to push logs (e.g. http://localhost:3100).
	LokiURL string `mapstructure:"LOKI_URL"`
	// KafkaGroupID is the consumer group ID for the event worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("APP_ENV", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTH_PROVIDER", AuthProviderOIDC)
	v.SetDefault("AUTH_ISSUER_URL", "")
	v.SetDefault("AUTH_AUDIENCE", "")
	v.SetDefault("AUTH_EMAIL_CLAIM", DefaultEmailClaim)
	v.SetDefault("AUTH_JWT_PUBLIC_KEY", "")
	v.SetDefault("KRATOS_PUBLIC_URL", "")
	v.SetDefault("INVITE_TTL", "168h") // 7d
	v.SetDefault("INVITE_LOOKUP_RATE_PER_MIN", 30)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("TELEMETRY_KAFKA_TOPIC", "contract-mgmt-events")
	v.SetDefault("LOKI_URL", "")
	v.SetDefault("KAFKA_GROUP_ID", "contract-mgmt-event-worker")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}

	cfg.AuthProvider = strings.ToLower(strings.TrimSpace(cfg.AuthProvider))

	if d, err := time.ParseDuration(cfg.InviteTTL); err != nil || d <= 0 {
		return nil, errors.New("config: INVITE_TTL must be a positive duration")
	}
	if cfg.InviteLookupRatePerMin < 0 {
		return nil, errors.New("config: INVITE_LOOKUP_RATE_PER_MIN must not be negative")
	}

	return &cfg, nil
}

// ValidateAuth checks that the settings required by the selected AUTH_PROVIDER are present.
// Only the API server calls it; migrate and worker do not authenticate callers.
func (c *Config) ValidateAuth() error {
	switch c.AuthProvider {
	case AuthProviderOIDC:
		if c.AuthIssuerURL == "" || c.AuthAudience == "" {
			return errors.New("config: AUTH_ISSUER_URL and AUTH_AUDIENCE must be set for AUTH_PROVIDER=oidc")
		}
	case AuthProviderKratos:
		if c.KratosPublicURL == "" {
			return errors.New("config: KRATOS_PUBLIC_URL must be set for AUTH_PROVIDER=kratos")
		}
	case AuthProviderJWT:
		if c.AuthJWTPublicKey == "" {
			return errors.New("config: AUTH_JWT_PUBLIC_KEY must be set for AUTH_PROVIDER=jwt")
		}
	default:
		return errors.New("config: AUTH_PROVIDER must be one of oidc, kratos, jwt")
	}
	return nil
}

// InvitationTTL parses InviteTTL as a time.Duration. Returns 168h if unset or invalid.
func (c *Config) InvitationTTL() time.Duration {
	d, err := time.ParseDuration(c.InviteTTL)
	if err != nil || d <= 0 {
		return 168 * time.Hour
	}
	return d
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c != nil && strings.EqualFold(c.Env, "production")
}

// TelemetryKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if event export is enabled (non-empty list) and to create the producer.
func (c *Config) TelemetryKafkaBrokersList() []string {
	if c == nil || c.TelemetryKafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.TelemetryKafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
