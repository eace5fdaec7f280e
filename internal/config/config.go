package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Content source backends.
const (
	SourceCMS     = "cms"
	SourceSurreal = "surreal"
	SourceFile    = "file"
)

// Provider exposes read-only access to configuration. Handlers and services
// depend on this interface rather than on the concrete Config.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string

	GetContentSource() string
	GetCMSProjectID() string
	GetCMSDataset() string
	GetCMSAPIVersion() string
	GetCMSToken() string
	GetCMSBaseURL() string
	GetCMSTimeout() time.Duration

	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string

	GetContentFile() string
	GetContentWatch() bool

	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetContactRecipient() string
	GetContactRateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string `env:"SERVER_ADDR" envDefault:":8080"`
	AppBaseURL    string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev-session-secret-change-me"`

	ContentSource string `env:"CONTENT_SOURCE" envDefault:"cms"`

	CMSProjectID  string        `env:"CMS_PROJECT_ID"`
	CMSDataset    string        `env:"CMS_DATASET" envDefault:"production"`
	CMSAPIVersion string        `env:"CMS_API_VERSION" envDefault:"2024-01-01"`
	CMSToken      string        `env:"CMS_TOKEN"`
	CMSBaseURL    string        `env:"CMS_BASE_URL"`
	CMSTimeout    time.Duration `env:"CMS_TIMEOUT" envDefault:"5s"`

	DBUrl  string `env:"SURREAL_URL"`
	DBNs   string `env:"SURREAL_NS"`
	DBDb   string `env:"SURREAL_DB"`
	DBUser string `env:"SURREAL_USER"`
	DBPass string `env:"SURREAL_PASS"`

	ContentFile  string `env:"CONTENT_FILE" envDefault:"content/site.yaml"`
	ContentWatch bool   `env:"CONTENT_WATCH" envDefault:"false"`

	EmailProvider    string  `env:"EMAIL_PROVIDER" envDefault:"log"`
	EmailAPIKey      string  `env:"EMAIL_API_KEY"`
	EmailSender      string  `env:"EMAIL_SENDER"`
	ContactRecipient string  `env:"CONTACT_RECIPIENT"`
	ContactRateLimit float64 `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
}

// New loads configuration from a .env file (if present) and the environment.
// It exits the process when the configuration cannot be used.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Parse reads the environment into a Config without validating it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected content source has what it needs.
func (c *Config) Validate() error {
	switch c.ContentSource {
	case SourceCMS:
		if c.CMSProjectID == "" && c.CMSBaseURL == "" {
			return fmt.Errorf("CONTENT_SOURCE=cms requires CMS_PROJECT_ID or CMS_BASE_URL")
		}
	case SourceSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			return fmt.Errorf("CONTENT_SOURCE=surreal requires SURREAL_URL, SURREAL_NS and SURREAL_DB")
		}
	case SourceFile:
		if c.ContentFile == "" {
			return fmt.Errorf("CONTENT_SOURCE=file requires CONTENT_FILE")
		}
	default:
		return fmt.Errorf("unknown content source: %q", c.ContentSource)
	}
	return nil
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }

func (c *Config) GetContentSource() string { return c.ContentSource }
func (c *Config) GetCMSProjectID() string { return c.CMSProjectID }
func (c *Config) GetCMSDataset() string { return c.CMSDataset }
func (c *Config) GetCMSAPIVersion() string { return c.CMSAPIVersion }
func (c *Config) GetCMSToken() string { return c.CMSToken }
func (c *Config) GetCMSTimeout() time.Duration { return c.CMSTimeout }

// GetCMSBaseURL returns the configured API host, deriving it from the project
// id when no explicit base URL is set. Unauthenticated reads go through the CDN.
func (c *Config) GetCMSBaseURL() string {
	if c.CMSBaseURL != "" {
		return c.CMSBaseURL
	}
	if c.CMSToken == "" {
		return fmt.Sprintf("https://%s.apicdn.sanity.io", c.CMSProjectID)
	}
	return fmt.Sprintf("https://%s.api.sanity.io", c.CMSProjectID)
}

func (c *Config) GetDBURL() string { return c.DBUrl }
func (c *Config) GetDBNs() string { return c.DBNs }
func (c *Config) GetDBDb() string { return c.DBDb }
func (c *Config) GetDBUser() string { return c.DBUser }
func (c *Config) GetDBPass() string { return c.DBPass }

func (c *Config) GetContentFile() string { return c.ContentFile }
func (c *Config) GetContentWatch() bool { return c.ContentWatch }

func (c *Config) GetEmailProvider() string { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string { return c.EmailSender }
func (c *Config) GetContactRecipient() string { return c.ContactRecipient }
func (c *Config) GetContactRateLimit() float64 { return c.ContactRateLimit }
