package config_test

import (
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadSMTP(t *testing.T) {
	t.Run("SMTP env keys populate the provider map", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "mail.example.com")
		t.Setenv("SMTP_PORT", "2525")
		t.Setenv("SMTP_USERNAME", "mailer")
		t.Setenv("SMTP_PASSWORD", "hunter2")
		t.Setenv("SMTP_FROM", "noreply@example.com")

		cfg := config.Load()

		smtp, ok := cfg.SMTP["smtp"]
		assert.True(t, ok)
		assert.Equal(t, "mail.example.com", smtp.Host)
		assert.Equal(t, 2525, smtp.Port)
		assert.Equal(t, "mailer", smtp.Username)
		assert.Equal(t, "hunter2", smtp.Password)
		assert.Equal(t, "noreply@example.com", smtp.From)
	})

	t.Run("without SMTP_HOST the map stays empty", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")

		cfg := config.Load()
		assert.Empty(t, cfg.SMTP)
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.NotEmpty(t, cfg.Database.Host)
	assert.NotEmpty(t, cfg.Server.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.ExpiryPeriod)
}
