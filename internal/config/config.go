package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Auth    AuthConfig
	Barcode BarcodeConfig
	Mail    MailConfig
	Sheets  SheetsConfig
	Export  ExportConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// AuthConfig holds settings for session token issuing.
type AuthConfig struct {
	SessionSecret string
}

// BarcodeConfig contains settings for the BWIPP rendering service.
type BarcodeConfig struct {
	BaseURL string
}

// MailConfig contains credentials for the MailerSend API.
type MailConfig struct {
	APIKey    string
	BaseURL   string
	FromEmail string
	FromName  string
}

// SheetsConfig contains configuration for the bookkeeping spreadsheet export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ExportConfig holds scheduler-related settings for the daily sales export.
type ExportConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "inventoryman"),
		},
		Auth: AuthConfig{
			SessionSecret: os.Getenv("SESSION_SECRET"),
		},
		Barcode: BarcodeConfig{
			BaseURL: getenvWithDefault("BWIP_BASE_URL", "https://bwipjs-api.metafloor.com"),
		},
		Mail: MailConfig{
			APIKey:    os.Getenv("MAILERSEND_API_KEY"),
			BaseURL:   getenvWithDefault("MAILERSEND_BASE_URL", "https://api.mailersend.com"),
			FromEmail: os.Getenv("MAILERSEND_FROM_EMAIL"),
			FromName:  getenvWithDefault("MAILERSEND_FROM_NAME", "The Cycle Hub"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
		},
		Export: ExportConfig{
			CronSchedule: getenvWithDefault("EXPORT_CRON_SCHEDULE", "0 21 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}

	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Auth.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be provided")
	}

	if c.Barcode.BaseURL == "" {
		return errors.New("BWIP_BASE_URL must not be empty")
	}

	if c.Mail.APIKey != "" && c.Mail.FromEmail == "" {
		return errors.New("MAILERSEND_FROM_EMAIL must be provided when MAILERSEND_API_KEY is set")
	}

	// The spreadsheet export is optional; when it is configured the schedule
	// fields become mandatory.
	if c.SheetsExportEnabled() {
		if c.Export.CronSchedule == "" {
			return errors.New("EXPORT_CRON_SCHEDULE must be provided")
		}
		if c.Export.Timezone == "" {
			return errors.New("TIMEZONE must be provided")
		}
	}

	return nil
}

// SheetsExportEnabled reports whether the daily spreadsheet export is configured.
func (c *Config) SheetsExportEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

// MailEnabled reports whether outbound invoice mail is configured.
func (c *Config) MailEnabled() bool {
	return c.Mail.APIKey != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
