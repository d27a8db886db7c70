// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App           AppConfig
	Storage       StorageConfig
	AWS           AWSConfig
	Redis         RedisConfig
	Collaborators CollaboratorsConfig
	Flow          FlowConfig
	Payments      PaymentsConfig
}

// Load reads the environment. A .env file is picked up by cmd/api before
// this runs.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		return nil, fmt.Errorf("parsing config: STORAGE_DRIVER must be %s or %s, got %q", StorageDynamoDB, StorageMemory, cfg.Storage.Driver)
	}
	return &cfg, nil
}

type AppConfig struct {
	Port      string `envconfig:"PORT" default:"8080"`
	Env       string `envconfig:"APP_ENV" default:"development"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "dev")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "prod")
}

type StorageConfig struct {
	Driver        string `envconfig:"STORAGE_DRIVER" default:"dynamodb"`
	QuotesTable   string `envconfig:"QUOTES_TABLE" default:"quote_requests"`
	PaymentsTable string `envconfig:"QUOTE_PAYMENTS_TABLE" default:"quote_payments"`
}

// AWSConfig: local DynamoDB does not validate credentials, but the SDK
// requires them, hence the defaults.
type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

// RedisConfig: an empty URL keeps session drafts in process memory.
type RedisConfig struct {
	URL      string        `envconfig:"REDIS_URL"`
	DraftTTL time.Duration `envconfig:"SESSION_DRAFT_TTL" default:"24h"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type CollaboratorsConfig struct {
	BaseURL string        `envconfig:"COLLABORATORS_BASE_URL"`
	Timeout time.Duration `envconfig:"COLLABORATORS_TIMEOUT" default:"10s"`
	Mock    Flag          `envconfig:"COLLABORATORS_MOCK" default:"true"`
}

type FlowConfig struct {
	CustomerLookupEnabled Flag          `envconfig:"CUSTOMER_LOOKUP_ENABLED" default:"false"`
	DefaultInsuranceType  string        `envconfig:"DEFAULT_INSURANCE_TYPE" default:"MOTOR"`
	DefaultAgentID        string        `envconfig:"DEFAULT_AGENT_ID" default:"agent-portal"`
	DefaultAgentName      string        `envconfig:"DEFAULT_AGENT_NAME" default:"Agent Portal"`
	ApprovalMockDelay     time.Duration `envconfig:"APPROVAL_MOCK_DELAY" default:"5s"`
	ApprovalMockOutcome   string        `envconfig:"APPROVAL_MOCK_OUTCOME" default:"granted"`
}

type PaymentsConfig struct {
	AccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock        Flag   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	LegacyMock  Flag   `envconfig:"MERCADOPAGO_MOCK" default:"false"`
	Currency    string `envconfig:"PAYMENT_CURRENCY" default:"BHD"`
	BackURL     string `envconfig:"PAYMENT_BACK_URL"`
}

func (p PaymentsConfig) MockEnabled() bool {
	return bool(p.Mock) || bool(p.LegacyMock)
}

// Flag is a boolean that also accepts "yes", "on" and "mock".
type Flag bool

func (f *Flag) Decode(value string) error {
	*f = Flag(ParseFlag(value))
	return nil
}

func ParseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
