// config_test.go - Tests for configuration loading

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values fall through to defaults
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "surveyDB", cfg.DBName)
	assert.Equal(t, "5000", cfg.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.example.com:27017")
	t.Setenv("DB_NAME", "otherDB")
	t.Setenv("ACCESS_TOKEN_SECRET", "tok")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("PORT", "9000")

	cfg := Load()
	assert.Equal(t, "mongodb://db.example.com:27017", cfg.MongoURI)
	assert.Equal(t, "otherDB", cfg.DBName)
	assert.Equal(t, "tok", cfg.AccessTokenSecret)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, "9000", cfg.Port)
}

func TestSecretsHaveNoDefault(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg := Load()
	assert.Empty(t, cfg.AccessTokenSecret)
	assert.Empty(t, cfg.StripeSecretKey)
}
