package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":          "parish-match",
		"APP_ENV":           "test",
		"HTTP_PORT":         "8080",
		"AUTH_TOKEN_SECRET": "0123456789abcdef0123",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "parish-match", cfg.App.AppName)
	assert.Equal(t, "localhost", cfg.Database.DBHost)
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Matching.RecommendedLimit)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_MissingRequiredListsAll(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"APP_NAME": "x"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "AUTH_TOKEN_SECRET")
}

func TestFromEnv_Overrides(t *testing.T) {
	env := baseEnv()
	env["LOG_JSON"] = "true"
	env["REDIS_ADDR"] = "cache:6379"
	env["CACHE_TTL"] = "5m"
	env["MATCH_RECOMMENDED_LIMIT"] = "25"
	env["DB_MAX_CONNS"] = "12"

	cfg, err := FromEnv(envMap(env))
	require.NoError(t, err)

	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 25, cfg.Matching.RecommendedLimit)
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["CACHE_TTL"] = "soon"
	_, err := FromEnv(envMap(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_TTL")
}

func TestFromEnv_ValidationRejectsOutOfRange(t *testing.T) {
	env := baseEnv()
	env["MATCH_RECOMMENDED_LIMIT"] = "500"
	_, err := FromEnv(envMap(env))
	require.Error(t, err)

	env = baseEnv()
	env["APP_ENV"] = "moon"
	_, err = FromEnv(envMap(env))
	require.Error(t, err)

	env = baseEnv()
	env["AUTH_TOKEN_SECRET"] = "short"
	_, err = FromEnv(envMap(env))
	require.Error(t, err)
}

func TestFromEnv_RejectsNonExpiringCache(t *testing.T) {
	env := baseEnv()
	env["CACHE_TTL"] = "0s"
	_, err := FromEnv(envMap(env))
	require.Error(t, err)
}
