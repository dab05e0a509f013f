package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is loaded from config.yaml when present; environment variables always win.
type Config struct {
	App    App    `yaml:"app"`
	HTTP   HTTP   `yaml:"http"`
	AWS    AWS    `yaml:"aws"`
	Tables Tables `yaml:"tables"`
	Redis  Redis  `yaml:"redis"`
	Kafka  Kafka  `yaml:"kafka"`
	Email  Email  `yaml:"email"`
	Auth   Auth   `yaml:"auth"`
	OTP    OTP    `yaml:"otp"`
}

type App struct {
	Name    string `yaml:"name" env:"APP_NAME" env-default:"wascrap-api"`
	Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
}

type HTTP struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type AWS struct {
	Region           string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID      string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey  string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint" env:"DYNAMODB_ENDPOINT"`
}

type Tables struct {
	Bookings         string `yaml:"bookings" env:"BOOKINGS_TABLE" env-default:"bookings"`
	ScrapBuyers      string `yaml:"scrap_buyers" env:"SCRAP_BUYERS_TABLE" env-default:"scrap_buyers"`
	Accounts         string `yaml:"accounts" env:"ACCOUNTS_TABLE" env-default:"accounts"`
	Notifications    string `yaml:"notifications" env:"NOTIFICATIONS_TABLE" env-default:"notifications"`
	PartnerInquiries string `yaml:"partner_inquiries" env:"PARTNER_INQUIRIES_TABLE" env-default:"partner_inquiries"`
	ScrapSellers     string `yaml:"scrap_sellers" env:"SCRAP_SELLERS_TABLE" env-default:"scrap_sellers"`
}

// Redis is optional. Without an address OTPs live in process memory and
// request idempotency is disabled.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Kafka is optional. Without brokers domain events are dropped.
type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"wascrap-events"`
}

type Email struct {
	ResendAPIKey   string `yaml:"resend_api_key" env:"RESEND_API_KEY"`
	From           string `yaml:"from" env:"EMAIL_FROM" env-default:"WaScrap <noreply@wascrap.com>"`
	AdminAddress   string `yaml:"admin_address" env:"EMAIL_ADMIN_ADDRESS" env-default:"admin@wascrap.com"`
	SupportAddress string `yaml:"support_address" env:"EMAIL_SUPPORT_ADDRESS" env-default:"support@wascrap.com"`
	Mock           bool   `yaml:"mock" env:"EMAIL_MOCK" env-default:"false"`
}

type Auth struct {
	JWTSecret   string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL    time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"12h"`
	AdminEmails []string      `yaml:"admin_emails" env:"ADMIN_EMAILS" env-separator:","`
}

type OTP struct {
	TTL         time.Duration `yaml:"ttl" env:"OTP_TTL" env-default:"10m"`
	MaxAttempts int           `yaml:"max_attempts" env:"OTP_MAX_ATTEMPTS" env-default:"5"`
}

const defaultConfigPath = "config.yaml"

// New reads config.yaml (path overridable with CONFIG_PATH) and the environment.
func New() (*Config, error) {
	path := defaultConfigPath
	if v := strings.TrimSpace(os.Getenv("CONFIG_PATH")); v != "" {
		path = v
	}
	return Load(path)
}

func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		// fallback to env vars if file not found
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TOKEN_TTL must be > 0"))
	}
	if c.OTP.TTL <= 0 {
		errs = append(errs, errors.New("OTP_TTL must be > 0"))
	}
	if c.OTP.MaxAttempts <= 0 {
		errs = append(errs, errors.New("OTP_MAX_ATTEMPTS must be > 0"))
	}
	return errors.Join(errs...)
}

// EmailMockEnabled is true when no provider key is configured or mock mode is forced.
func (c *Config) EmailMockEnabled() bool {
	return c.Email.Mock || strings.TrimSpace(c.Email.ResendAPIKey) == ""
}

// IsAdminEmail reports whether accounts registered with email get the admin role.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.Auth.AdminEmails {
		if strings.ToLower(strings.TrimSpace(e)) == email && email != "" {
			return true
		}
	}
	return false
}
