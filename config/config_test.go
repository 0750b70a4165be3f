package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Session)
	assert.Equal(t, "sf_session", cfg.Session.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Hour, cfg.Session.CleanupEvery)

	require.NotNil(t, cfg.Phone)
	assert.Equal(t, "PE", cfg.Phone.Locale)

	require.NotNil(t, cfg.Site)
	assert.Equal(t, "CHIC SHOP", cfg.Site.Name)
	assert.Equal(t, "Aplicación", cfg.Site.DefaultTitle)
	assert.Equal(t, "/", cfg.Site.LandingPath)

	require.NotNil(t, cfg.LocalStore)
	assert.Equal(t, "storefront.db", cfg.LocalStore.Path)

	assert.Nil(t, cfg.Storage)
	assert.Nil(t, cfg.Cognito)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{CookieName: "custom", TTL: time.Hour, CleanupEvery: time.Minute},
		Phone:   &PhoneConfig{Locale: "AR"},
		Storage: &StorageConfig{BucketURL: "mem://", SignedURLTTL: time.Minute, MaxUploadBytes: 10},
		Cognito: &CognitoConfig{AdminGroup: "staff"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.Session.CookieName)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.CleanupEvery)
	assert.Equal(t, "AR", cfg.Phone.Locale)
	assert.Equal(t, time.Minute, cfg.Storage.SignedURLTTL)
	assert.Equal(t, int64(10), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "staff", cfg.Cognito.AdminGroup)
}

func TestApplyDefaults_CognitoAdminGroup(t *testing.T) {
	cfg := &Config{Cognito: &CognitoConfig{}}
	applyDefaults(cfg)

	assert.Equal(t, "admin", cfg.Cognito.AdminGroup)
}
