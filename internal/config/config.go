package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// PlaceholderRecipient is used when no recipient address is configured.
const PlaceholderRecipient = "tu-email@ejemplo.com"

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig    `mapstructure:"server" yaml:"server"`
	Log         LogConfig       `mapstructure:"log" yaml:"log"`
	Environment string          `mapstructure:"environment" yaml:"environment"`
	Email       EmailConfig     `mapstructure:"email" yaml:"email"`
	Redis       RedisConfig     `mapstructure:"redis" yaml:"redis"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	// TrustedProxies lists the addresses or CIDR ranges of reverse proxies
	// whose X-Forwarded-For and X-Real-IP headers are believed.
	TrustedProxies []string `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address becomes a
// single-host prefix.
func (c ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// EmailConfig holds email delivery configuration
type EmailConfig struct {
	// Provider is the delivery backend: "resend", "gmail" or "log".
	Provider string `mapstructure:"provider" yaml:"provider"`
	// SenderName is the display name of the From header.
	SenderName string `mapstructure:"sender_name" yaml:"sender_name"`
	// SenderAddress must be verified with the provider.
	SenderAddress string `mapstructure:"sender_address" yaml:"sender_address"`
	// Recipient receives every submission.
	Recipient string            `mapstructure:"recipient" yaml:"recipient"`
	Resend    ResendEmailConfig `mapstructure:"resend" yaml:"resend"`
	Gmail     GmailEmailConfig  `mapstructure:"gmail" yaml:"gmail"`
}

// RecipientOrPlaceholder returns the configured recipient, or the placeholder
// address when none is set.
func (c EmailConfig) RecipientOrPlaceholder() string {
	if strings.TrimSpace(c.Recipient) == "" {
		return PlaceholderRecipient
	}
	return c.Recipient
}

// ResendEmailConfig holds Resend API configuration
type ResendEmailConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	// BaseURL overrides the API endpoint, mostly useful against a local mock.
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// GmailEmailConfig holds Gmail API configuration
type GmailEmailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json" yaml:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID     string `mapstructure:"client_id" yaml:"client_id"`
	ClientSecret string `mapstructure:"client_secret" yaml:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token" yaml:"refresh_token"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig holds rate limiting configuration for the submission endpoint
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	Limit   int           `mapstructure:"limit" yaml:"limit"`
	Window  time.Duration `mapstructure:"window" yaml:"window"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/contactrelay")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CONTACTRELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Variables understood by the previous serverless deployment.
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"email.resend.api_key": {"CONTACTRELAY_EMAIL_RESEND_API_KEY", "RESEND_API_KEY"},
		"email.recipient":      {"CONTACTRELAY_EMAIL_RECIPIENT", "RECIPIENT_EMAIL"},
		"environment":          {"CONTACTRELAY_ENVIRONMENT", "NODE_ENV"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Email.Provider {
	case "resend", "gmail", "log":
	default:
		return fmt.Errorf("unknown email provider %q", c.Email.Provider)
	}
	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return err
	}
	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit.limit and rate_limit.window must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.trusted_proxies", []string{})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("environment", "production")

	// Email defaults
	v.SetDefault("email.provider", "resend")
	v.SetDefault("email.sender_name", "Formulario Web")
	v.SetDefault("email.sender_address", "onboarding@resend.dev")
	v.SetDefault("email.recipient", "")
	v.SetDefault("email.resend.api_key", "")
	v.SetDefault("email.resend.base_url", "")
	v.SetDefault("email.resend.timeout", "10s")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limiting defaults
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.limit", 5)
	v.SetDefault("rate_limit.window", "10m")
}

const redactedValue = "[REDACTED]"

// Redacted returns a copy of c with credentials masked, suitable for display.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return redactedValue
	}
	c.Email.Resend.APIKey = mask(c.Email.Resend.APIKey)
	c.Email.Gmail.CredentialsJSON = mask(c.Email.Gmail.CredentialsJSON)
	c.Email.Gmail.ClientSecret = mask(c.Email.Gmail.ClientSecret)
	c.Email.Gmail.RefreshToken = mask(c.Email.Gmail.RefreshToken)
	c.Redis.Password = mask(c.Redis.Password)
	return c
}
