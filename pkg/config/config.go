package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the settings of both binaries (API and dashboard). Values are read
// with Viper from the environment and, optionally, from a .env / config.env file.
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Web      WebConfig
	API      APIClientConfig
	SMTP     SMTPConfig
	Twilio   TwilioConfig
	FollowUp FollowUpConfig
	Admin    AdminConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig PostgreSQL settings.
// When DatabaseURL is set it is used verbatim (e.g. DATABASE_URL from Render/Neon).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DATABASE_URL if defined, otherwise the DSN built from the parts.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return normalizeDatabaseURL(c.DatabaseURL)
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding the credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// normalizeDatabaseURL strips quotes and a leading "psql " left over from copy-pasting
// the connection string out of a provider console.
func normalizeDatabaseURL(raw string) string {
	s := strings.Trim(strings.TrimSpace(raw), `"'`)
	if strings.HasPrefix(s, "psql ") {
		s = strings.Trim(strings.TrimSpace(strings.TrimPrefix(s, "psql ")), `"'`)
	}
	return s
}

// JWTConfig token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig listen address of the REST API.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// WebConfig listen address of the dashboard and its session cookie.
type WebConfig struct {
	Host          string
	Port          int
	CookieSecure  bool
	SessionExpiry time.Duration
	FetchTimeout  time.Duration // deadline of the API calls made for one page
}

// Addr returns host:port.
func (c WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIClientConfig how the dashboard reaches the REST API.
type APIClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SMTPConfig login notification mail. Empty User disables it.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Enabled reports whether credentials are present.
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

// TwilioConfig follow-up SMS. Empty AccountSID disables sending.
type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

// Enabled reports whether credentials are present.
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.PhoneNumber != ""
}

// FollowUpConfig schedule of the follow-up reminder job.
type FollowUpConfig struct {
	Cron string // robfig/cron spec; empty disables the job
}

// AdminConfig credentials used by cmd/seed_admin.
type AdminConfig struct {
	Username string
	Password string
	Email    string
}

// DefaultAPIURL base URL of the REST API when API_URL is not set.
const DefaultAPIURL = "http://localhost:8000"

// Load reads the configuration from environment variables (and optionally from a file).
// Environment variables take precedence. Expected names: APP_ENV, DB_HOST, JWT_SECRET, API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "progarden-crm"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "progarden_crm"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24*7),
			Issuer:     getString(v, "JWT_ISSUER", "progarden-crm"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Web: WebConfig{
			Host:          getString(v, "WEB_HOST", "0.0.0.0"),
			Port:          getInt(v, "WEB_PORT", 3000),
			CookieSecure:  getBool(v, "WEB_COOKIE_SECURE", false),
			SessionExpiry: time.Duration(getInt(v, "WEB_SESSION_HOURS", 24*7)) * time.Hour,
			FetchTimeout:  time.Duration(getInt(v, "WEB_FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		API: APIClientConfig{
			BaseURL: strings.TrimRight(getString(v, "API_URL", DefaultAPIURL), "/"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
		},
		Twilio: TwilioConfig{
			AccountSID:  getString(v, "TWILIO_ACCOUNT_SID", ""),
			AuthToken:   getString(v, "TWILIO_AUTH_TOKEN", ""),
			PhoneNumber: getString(v, "TWILIO_PHONE_NUMBER", ""),
		},
		FollowUp: FollowUpConfig{
			Cron: getString(v, "FOLLOWUP_CRON", "0 9 * * *"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Password: getString(v, "ADMIN_PASSWORD", ""),
			Email:    getString(v, "ADMIN_EMAIL", ""),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
