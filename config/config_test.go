package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransport(t *testing.T) {
	cfg := &Config{
		SMTPHost:       "smtp.example.com",
		SMTPUsername:   "user",
		SMTPPassword:   "secret",
		ContactEmailTo: "ops@example.com",
	}
	require.NoError(t, cfg.ValidateTransport())

	cfg.SMTPPassword = ""
	cfg.ContactEmailTo = ""
	err := cfg.ValidateTransport()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PASSWORD")
	assert.Contains(t, err.Error(), "CONTACT_EMAIL_TO")
	// Credential values never end up in the error text
	assert.NotContains(t, err.Error(), "secret")
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "120")
	assert.Equal(t, 120, getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60))

	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "not-a-number")
	assert.Equal(t, 60, getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60))

	assert.Equal(t, 5, getEnvInt("RATE_LIMIT_UNSET_KEY", 5))
}
