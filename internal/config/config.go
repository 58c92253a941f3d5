package config

import (
	"os"
	"strconv"
	"strings"
)

// Defaults baked into the deployment. The verification base URL points at the
// deployed click handler and is overridden by FUNCTION_BASE_URL or
// VERIFICATION_BASE_URL; the logo URL is the last fallback in the brand
// resolution chain.
const (
	DefaultVerificationBaseURL = "https://handle-verification-click-5czh4imcxq-uc.a.run.app"
	DefaultLogoURL             = "https://firebasestorage.googleapis.com/v0/b/finsync-8ea36.firebasestorage.app/o/icon-dark.png?alt=media&token=1f1862ab-cee1-4972-950c-b11549096d29"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	UseSecretsManager bool   // resolve the provider key through Secrets Manager first
	ResendSecretName  string // secret id holding the API key
	ResendAPIKey      string // plain-env fallback when the binding is unavailable
	ResendBaseURL     string

	VerificationBaseURL string

	FromOnboarding string
	FromAlerts     string
	FromInfo       string

	LogoURL string
	Year    string

	TriggerJWTPublicKeyPath string // empty disables trigger webhook auth

	AssetBucket    string // bucket holding brand assets referenced as s3:// URIs
	SNSRegion      string
	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users         string
	Notifications string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:         getEnv("DYNAMO_TABLE_USERS", "users"),
			Notifications: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),
		},

		UseSecretsManager: getEnvBool("USE_SECRETS_MANAGER", true),
		ResendSecretName:  getEnv("RESEND_SECRET_NAME", "RESEND_API_KEY"),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		ResendBaseURL:     getEnv("RESEND_BASE_URL", "https://api.resend.com"),

		VerificationBaseURL: getEnv("FUNCTION_BASE_URL", getEnv("VERIFICATION_BASE_URL", DefaultVerificationBaseURL)),

		FromOnboarding: getEnv("FROM_ONBOARDING", "Onboarding <onboarding@finsyncdigitalservice.com>"),
		FromAlerts:     getEnv("FROM_ALERTS", "Finsync <alerts@finsyncdigitalservice.com>"),
		FromInfo:       getEnv("FROM_INFO", "Finsync <info@finsyncdigitalservice.com>"),

		LogoURL: getEnv("FINSYNC_LOGO_URL", ""),
		Year:    getEnv("FINSYNC_YEAR", "2025"),

		TriggerJWTPublicKeyPath: getEnv("TRIGGER_JWT_PUBLIC_KEY_PATH", ""),

		AssetBucket:    getEnv("ASSET_BUCKET", "finsync-assets"),
		SNSRegion:      getEnv("SNS_REGION", "us-east-1"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
