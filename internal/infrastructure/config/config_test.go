package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/shared/errors"
)

func TestLoad_MissingJWTSecretFailsFast(t *testing.T) {
	t.Setenv("DESKLINE_AUTH_JWT_SECRET", "")

	cfg, err := Load("test")
	require.Error(t, err)
	assert.Nil(t, cfg)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConfiguration, appErr.Type)
}

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("DESKLINE_AUTH_JWT_SECRET", "unit-test-secret")
	t.Setenv("DESKLINE_DATABASE_DRIVER", "sqlite")
	t.Setenv("DESKLINE_DATABASE_DATABASE", ":memory:")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, 3600, cfg.Auth.JWT.AccessExpSeconds)
	assert.Equal(t, 60, cfg.Auth.Token.ResetExpiresMinutes)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.GetDSN())
	assert.Same(t, cfg, Get())
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.JWT.Secret = "s"
	cfg.Auth.JWT.AccessExpSeconds = 60
	cfg.Database.Driver = "oracle"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestLoadForMigrations_DoesNotRequireJWTSecret(t *testing.T) {
	t.Setenv("DESKLINE_AUTH_JWT_SECRET", "")
	t.Setenv("DESKLINE_DATABASE_DRIVER", "postgres")

	cfg, err := LoadForMigrations("production")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "production", cfg.Server.Mode)
}
