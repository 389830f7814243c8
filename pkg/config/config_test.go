package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 3000, cfg.Web.Port)
	assert.Equal(t, 10*time.Second, cfg.Web.FetchTimeout)
	assert.Equal(t, 60*24*7, cfg.JWT.Expiration)
	assert.Equal(t, "0 9 * * *", cfg.FollowUp.Cron)
	assert.False(t, cfg.SMTP.Enabled())
	assert.False(t, cfg.Twilio.Enabled())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_URL", "https://api.progarden.ng/")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_PORT", "not-a-number")
	v.Set("SMTP_USER", "alerts@progarden.ng")
	v.Set("SMTP_PASSWORD", "secret")

	cfg := fromViper(v)

	assert.Equal(t, "https://api.progarden.ng", cfg.API.BaseURL, "trailing slash must be trimmed")
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port, "invalid ints fall back to the default")
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "crm", Password: "p@ss word", DBName: "crm", SSLMode: "disable"}
	assert.Equal(t, "postgres://crm:p%40ss%20word@db:5432/crm?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = `psql 'postgresql://u:p@host/db?sslmode=require'`
	assert.Equal(t, "postgresql://u:p@host/db?sslmode=require", c.ConnectionString())
}
